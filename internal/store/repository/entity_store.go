package repository

import (
	"context"

	"github.com/fortuna/courtside/internal/store"
)

// EntityStore exposes the five entity merges behind one value, so callers
// hold a single dependency instead of an executor plus the spec table.
type EntityStore struct {
	exec *Executor
}

// NewEntityStore creates an entity store over the executor.
func NewEntityStore(exec *Executor) *EntityStore {
	return &EntityStore{exec: exec}
}

func (s *EntityStore) MergePlayers(ctx context.Context, rows []store.PlayerRow) error {
	return Merge(ctx, s.exec, Players, rows)
}

func (s *EntityStore) MergeTeams(ctx context.Context, rows []store.TeamRow) error {
	return Merge(ctx, s.exec, Teams, rows)
}

func (s *EntityStore) MergeGames(ctx context.Context, rows []store.GameRow) error {
	return Merge(ctx, s.exec, Games, rows)
}

func (s *EntityStore) MergeTeamStats(ctx context.Context, rows []store.TeamStatRow) error {
	return Merge(ctx, s.exec, TeamStatistics, rows)
}

func (s *EntityStore) MergePlayerStats(ctx context.Context, rows []store.PlayerStatRow) error {
	return Merge(ctx, s.exec, PlayerStatistics, rows)
}
