package pipeline

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/store"
)

// ErrRunInProgress is returned when a run is requested while another is
// still going. The source tolerates exactly one slow client, so runs never
// overlap.
var ErrRunInProgress = errors.New("ingest run already in progress")

// Notifier publishes a finished run to interested consumers.
type Notifier interface {
	PublishRun(ctx context.Context, res Result) error
}

// Service serializes pipeline runs and remembers the latest outcome. Both
// the daily schedule and the HTTP trigger go through it.
type Service struct {
	runner   *Runner
	notifier Notifier
	log      *zap.Logger

	mu      sync.Mutex
	running bool
	last    *Result
	lastErr error
}

// NewService creates a run service. notifier may be nil.
func NewService(runner *Runner, notifier Notifier, log *zap.Logger) *Service {
	return &Service{runner: runner, notifier: notifier, log: log}
}

// Run executes one ingest, refusing to overlap a run already in flight.
func (s *Service) Run(ctx context.Context, window store.Window) (Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{}, ErrRunInProgress
	}
	s.running = true
	s.mu.Unlock()

	res, err := s.runner.Run(ctx, window)

	s.mu.Lock()
	s.running = false
	s.last = &res
	s.lastErr = err
	s.mu.Unlock()

	if err == nil && s.notifier != nil {
		if perr := s.notifier.PublishRun(ctx, res); perr != nil {
			s.log.Warn("run notification failed", zap.Error(perr))
		}
	}
	return res, err
}

// TriggerAsync starts a run in the background. It fails fast when a run is
// already in flight so the caller can report the conflict.
func (s *Service) TriggerAsync(window store.Window) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunInProgress
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		res, err := s.runner.Run(context.Background(), window)

		s.mu.Lock()
		s.running = false
		s.last = &res
		s.lastErr = err
		s.mu.Unlock()

		if err != nil {
			s.log.Error("ingest run failed", zap.Error(err))
			return
		}
		if s.notifier != nil {
			if perr := s.notifier.PublishRun(context.Background(), res); perr != nil {
				s.log.Warn("run notification failed", zap.Error(perr))
			}
		}
	}()
	return nil
}

// Status reports whether a run is in flight and the latest finished result.
func (s *Service) Status() (running bool, last *Result, lastErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running, s.last, s.lastErr
}
