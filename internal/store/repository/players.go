package repository

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/fortuna/courtside/internal/store"
)

// PlayerMasterRepository reads the pre-existing player master table used to
// enrich roster players with biography fields.
type PlayerMasterRepository struct {
	db *store.Database
}

// NewPlayerMasterRepository creates a player master repository.
func NewPlayerMasterRepository(db *store.Database) *PlayerMasterRepository {
	return &PlayerMasterRepository{db: db}
}

// LoadAll returns the full master table keyed by person identifier. The table
// is small enough to hold in memory for the duration of a run, and a single
// load avoids a round trip per roster player.
func (r *PlayerMasterRepository) LoadAll(ctx context.Context) (map[int64]store.PlayerMasterRow, error) {
	const query = `
		SELECT person_id, first_name, last_name, birthdate, school, country,
			height, weight, position, draft_year, draft_round, draft_number,
			dleague_flag
		FROM common_player_info
	`

	var rows []store.PlayerMasterRow
	if err := r.db.DB().SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "loading player master table")
	}

	master := make(map[int64]store.PlayerMasterRow, len(rows))
	for _, row := range rows {
		master[row.PersonID] = row
	}
	return master, nil
}
