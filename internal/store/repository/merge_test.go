package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSpecColumnsKeysFirst(t *testing.T) {
	spec := MergeSpec{
		Table:        "widgets",
		KeyColumns:   []string{"a", "b"},
		ValueColumns: []string{"c", "d"},
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, spec.Columns())
}

func TestCreateScratchSQL(t *testing.T) {
	spec := MergeSpec{Table: "games", KeyColumns: []string{"game_id"}}
	assert.Equal(t,
		"CREATE TEMP TABLE staging_games (LIKE games INCLUDING DEFAULTS) ON COMMIT DROP",
		spec.createScratchSQL())
}

func TestStageSQLUsesNamedParameters(t *testing.T) {
	spec := MergeSpec{
		Table:        "teams",
		KeyColumns:   []string{"team_id"},
		ValueColumns: []string{"name"},
	}
	assert.Equal(t,
		"INSERT INTO staging_teams (team_id, name) VALUES (:team_id, :name)",
		spec.stageSQL())
}

func TestMergeSQLUpdatesValueColumnsOnConflict(t *testing.T) {
	spec := MergeSpec{
		Table:        "games",
		KeyColumns:   []string{"game_id"},
		ValueColumns: []string{"home_score", "away_score"},
	}
	assert.Equal(t,
		"INSERT INTO games (game_id, home_score, away_score) "+
			"SELECT game_id, home_score, away_score FROM staging_games "+
			"ON CONFLICT (game_id) DO UPDATE SET "+
			"home_score = EXCLUDED.home_score, away_score = EXCLUDED.away_score",
		spec.mergeSQL())
}

func TestMergeSQLInsertOnly(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO teams (team_id) SELECT team_id FROM staging_teams "+
			"ON CONFLICT (team_id) DO NOTHING",
		Teams.mergeSQL())
}

func TestMergeSQLCompositeKey(t *testing.T) {
	got := TeamStatistics.mergeSQL()
	assert.Contains(t, got, "ON CONFLICT (team_id, game_id) DO UPDATE SET")
	assert.Contains(t, got, "win = EXCLUDED.win")
	assert.NotContains(t, got, "team_id = EXCLUDED.team_id")
}

func TestEntitySpecColumnCounts(t *testing.T) {
	assert.Len(t, Players.Columns(), 15)
	assert.Len(t, Teams.Columns(), 1)
	assert.Len(t, Games.Columns(), 9)
	assert.Len(t, TeamStatistics.Columns(), 40)
	assert.Len(t, PlayerStatistics.Columns(), 23)
	assert.Equal(t, 3000, PlayerStatistics.BatchSize)
}
