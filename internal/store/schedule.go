package store

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Window names a schedule time window used to resolve the set of game
// identifiers a pipeline run should ingest.
type Window string

const (
	WindowYesterday     Window = "yesterday"
	WindowToday         Window = "today"
	WindowTomorrow      Window = "tomorrow"
	WindowLastThreeDays Window = "last_three_days"
)

// ParseWindow validates a window name.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowYesterday, WindowToday, WindowTomorrow, WindowLastThreeDays:
		return Window(s), nil
	}
	return "", errors.Newf("unknown schedule window %q", s)
}

// ScheduleRepository resolves game identifiers from the league schedule
// table. The identifiers come back as an opaque, unordered list.
type ScheduleRepository struct {
	db *Database
}

// NewScheduleRepository creates a schedule repository.
func NewScheduleRepository(db *Database) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GameIDs returns the game identifiers scheduled inside the given window.
func (r *ScheduleRepository) GameIDs(ctx context.Context, w Window) ([]int64, error) {
	var query string
	switch w {
	case WindowYesterday:
		query = `
			SELECT game_id FROM league_schedule
			WHERE game_date_est::date < CURRENT_DATE
		`
	case WindowToday:
		query = `
			SELECT game_id FROM league_schedule
			WHERE game_date_est::date <= CURRENT_DATE
		`
	case WindowTomorrow:
		query = `
			SELECT game_id FROM league_schedule
			WHERE game_date_est::date <= CURRENT_DATE + INTERVAL '1 day'
		`
	case WindowLastThreeDays:
		query = `
			SELECT game_id FROM league_schedule
			WHERE game_date_est::date BETWEEN CURRENT_DATE - INTERVAL '3 days'
				AND CURRENT_DATE - INTERVAL '1 day'
		`
	default:
		return nil, errors.Newf("unknown schedule window %q", w)
	}

	var ids []int64
	if err := r.db.DB().SelectContext(ctx, &ids, query); err != nil {
		return nil, errors.Wrapf(err, "querying %s game ids", w)
	}
	return ids, nil
}
