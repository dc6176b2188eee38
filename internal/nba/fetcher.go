package nba

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FetcherConfig controls the retry budget and the pacing of requests against
// the source. The source has no documented concurrency allowance, so fetches
// are sequential and deliberately slow.
type FetcherConfig struct {
	Passes       int           // full sweeps over the unfound set
	RequestDelay time.Duration // pause after every individual request
	PassCooldown time.Duration // pause between sweeps
}

// DefaultFetcherConfig returns the pacing used in production.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Passes:       3,
		RequestDelay: 2 * time.Second,
		PassCooldown: 10 * time.Second,
	}
}

// Fetcher retrieves a batch of raw game records, sweeping the unfound set up
// to a fixed number of passes.
type Fetcher struct {
	client *Client
	cfg    FetcherConfig
	log    *zap.Logger
}

// NewFetcher creates a fetcher over the given client.
func NewFetcher(client *Client, cfg FetcherConfig, log *zap.Logger) *Fetcher {
	if cfg.Passes <= 0 {
		cfg.Passes = DefaultFetcherConfig().Passes
	}
	return &Fetcher{client: client, cfg: cfg, log: log}
}

// FetchAll fetches every identifier in ids. Identifiers that fail a pass stay
// in the unfound set and are retried on the next pass; after the retry budget
// is exhausted the remaining identifiers are returned alongside the records
// that did succeed. Per-identifier failures are logged, never fatal.
func (f *Fetcher) FetchAll(ctx context.Context, ids []int64) ([]*RawGame, []int64, error) {
	unfound := make(map[int64]struct{}, len(ids))
	order := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := unfound[id]; ok {
			continue
		}
		unfound[id] = struct{}{}
		order = append(order, id)
	}

	var games []*RawGame
	for pass := 1; pass <= f.cfg.Passes && len(unfound) > 0; pass++ {
		f.log.Info("fetch pass starting",
			zap.Int("pass", pass),
			zap.Int("remaining", len(unfound)))

		for _, id := range order {
			if _, ok := unfound[id]; !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return games, remaining(order, unfound), err
			}

			game, err := f.client.FetchGame(ctx, id)
			if err != nil {
				f.log.Warn("game fetch failed", zap.Int64("game_id", id), zap.Error(err))
			} else {
				games = append(games, game)
				delete(unfound, id)
				f.log.Debug("game fetched", zap.Int64("game_id", id))
			}

			if err := sleep(ctx, f.cfg.RequestDelay); err != nil {
				return games, remaining(order, unfound), err
			}
		}

		if len(unfound) > 0 && pass < f.cfg.Passes {
			if err := sleep(ctx, f.cfg.PassCooldown); err != nil {
				return games, remaining(order, unfound), err
			}
		}
	}

	return games, remaining(order, unfound), nil
}

// remaining lists the still-unfound identifiers in request order.
func remaining(order []int64, unfound map[int64]struct{}) []int64 {
	var out []int64
	for _, id := range order {
		if _, ok := unfound[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
