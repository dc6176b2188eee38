// Package pipeline orchestrates one ingest run: resolve the scheduled game
// identifiers, fetch the raw games, extract the entity row-sets and merge
// them into the store entity by entity.
package pipeline

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/extract"
	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/store"
)

// Status is the terminal state of a run.
type Status string

const (
	// StatusDone means every fetched game was loaded.
	StatusDone Status = "done"
	// StatusPartialFailure means identifiers stayed unresolved after the
	// retry budget, or an entity merge failed. Nothing is loaded for
	// unresolved identifiers; a merge failure stops the run at that entity.
	StatusPartialFailure Status = "partial_failure"
)

// Result summarizes one run.
type Result struct {
	Status     Status       `json:"status"`
	Window     store.Window `json:"window"`
	Requested  int          `json:"requested"`
	Fetched    int          `json:"fetched"`
	Unresolved []int64      `json:"unresolved,omitempty"`
	// FailedEntity names the merge that aborted the run, if any.
	FailedEntity string `json:"failedEntity,omitempty"`
	// FailedBatch carries the raw games that were fetched but not loaded,
	// so a caller can persist them for replay. It stays out of the JSON
	// shape; a batch can run to megabytes.
	FailedBatch []*nba.RawGame `json:"-"`
	Elapsed     time.Duration  `json:"elapsed"`
}

// ScheduleSource resolves the game identifiers for a window.
type ScheduleSource interface {
	GameIDs(ctx context.Context, w store.Window) ([]int64, error)
}

// GameSource fetches raw games, returning whatever identifiers stayed
// unresolved after its retry budget.
type GameSource interface {
	FetchAll(ctx context.Context, ids []int64) ([]*nba.RawGame, []int64, error)
}

// MasterSource loads the player master table used for enrichment.
type MasterSource interface {
	LoadAll(ctx context.Context) (map[int64]store.PlayerMasterRow, error)
}

// EntitySink persists the five entity row-sets. Each merge is its own
// transaction; a failure leaves earlier entities committed.
type EntitySink interface {
	MergePlayers(ctx context.Context, rows []store.PlayerRow) error
	MergeTeams(ctx context.Context, rows []store.TeamRow) error
	MergeGames(ctx context.Context, rows []store.GameRow) error
	MergeTeamStats(ctx context.Context, rows []store.TeamStatRow) error
	MergePlayerStats(ctx context.Context, rows []store.PlayerStatRow) error
}

// Runner wires the pipeline stages together.
type Runner struct {
	schedule ScheduleSource
	source   GameSource
	master   MasterSource
	sink     EntitySink
	log      *zap.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(schedule ScheduleSource, source GameSource, master MasterSource, sink EntitySink, log *zap.Logger) *Runner {
	return &Runner{
		schedule: schedule,
		source:   source,
		master:   master,
		sink:     sink,
		log:      log,
	}
}

// Run executes one ingest for the window. Unresolved identifiers and merge
// failures surface in the Result, not as an error; the error return is
// reserved for faults that stop the run from producing a result at all.
func (r *Runner) Run(ctx context.Context, window store.Window) (Result, error) {
	started := time.Now()
	res := Result{Status: StatusDone, Window: window}

	ids, err := r.schedule.GameIDs(ctx, window)
	if err != nil {
		return res, errors.Wrap(err, "resolving scheduled games")
	}
	res.Requested = len(ids)
	if len(ids) == 0 {
		r.log.Info("no games scheduled", zap.String("window", string(window)))
		res.Elapsed = time.Since(started)
		return res, nil
	}

	r.log.Info("run state change",
		zap.String("state", "fetching"),
		zap.Int("games", len(ids)))

	games, unresolved, err := r.source.FetchAll(ctx, ids)
	if err != nil {
		return res, errors.Wrap(err, "fetching games")
	}
	res.Fetched = len(games)

	if len(unresolved) > 0 {
		// Loading a partial batch would record the window as ingested
		// while silently missing games, so nothing is loaded.
		r.log.Warn("identifiers unresolved after retry budget",
			zap.Int64s("game_ids", unresolved))
		res.Status = StatusPartialFailure
		res.Unresolved = unresolved
		res.FailedBatch = games
		res.Elapsed = time.Since(started)
		return res, nil
	}

	r.log.Info("run state change",
		zap.String("state", "extracting_and_loading"),
		zap.Int("fetched", len(games)))

	if err := r.load(ctx, games, &res); err != nil {
		r.log.Error("entity merge failed",
			zap.String("entity", res.FailedEntity),
			zap.Error(err))
		res.Status = StatusPartialFailure
		res.FailedBatch = games
	}

	res.Elapsed = time.Since(started)
	r.log.Info("run finished",
		zap.String("status", string(res.Status)),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// load merges the five entities in dependency order. Players and teams go
// first so the later row-sets never reference an identity that is not yet
// present.
func (r *Runner) load(ctx context.Context, games []*nba.RawGame, res *Result) error {
	master, err := r.master.LoadAll(ctx)
	if err != nil {
		res.FailedEntity = "players"
		return err
	}

	players := extract.Players(games, master)
	if len(players.MasterMisses) > 0 {
		r.log.Info("players without a master record",
			zap.Int64s("person_ids", players.MasterMisses))
	}

	if err := r.sink.MergePlayers(ctx, players.Rows); err != nil {
		res.FailedEntity = "players"
		return err
	}
	if err := r.sink.MergeTeams(ctx, extract.Teams(games)); err != nil {
		res.FailedEntity = "teams"
		return err
	}
	if err := r.sink.MergeGames(ctx, extract.Games(games)); err != nil {
		res.FailedEntity = "games"
		return err
	}
	teamStats, skipped := extract.TeamStats(games)
	if len(skipped) > 0 {
		r.log.Warn("team statistics skipped for non-numeric game ids",
			zap.Strings("game_ids", skipped))
	}
	if err := r.sink.MergeTeamStats(ctx, teamStats); err != nil {
		res.FailedEntity = "team_statistics"
		return err
	}
	if err := r.sink.MergePlayerStats(ctx, extract.PlayerStats(games)); err != nil {
		res.FailedEntity = "player_statistics"
		return err
	}
	return nil
}
