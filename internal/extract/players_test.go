package extract

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/store"
)

func ns(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func masterRow(id int64) store.PlayerMasterRow {
	return store.PlayerMasterRow{
		PersonID:    id,
		FirstName:   ns("Luka"),
		LastName:    ns("Dončić"),
		School:      ns("Real Madrid"),
		Country:     ns("Slovenia"),
		Height:      ns("6-7"),
		Weight:      sql.NullFloat64{Float64: 230, Valid: true},
		Position:    ns("Forward-Guard"),
		DraftYear:   ns("2018"),
		DraftRound:  ns("1"),
		DraftNumber: ns("3"),
		DLeagueFlag: ns("N"),
	}
}

func rosterGame(id string, homePlayers, awayPlayers []nba.RawPlayer) *nba.RawGame {
	g := rawGame(id, 10, 1, 20, 0)
	g.HomeTeam.Players = homePlayers
	g.AwayTeam.Players = awayPlayers
	return g
}

func TestPlayersMasterRecordWins(t *testing.T) {
	games := []*nba.RawGame{rosterGame("0022500020",
		[]nba.RawPlayer{{PersonID: 77, FirstName: "L", FamilyName: "D"}}, nil)}
	master := map[int64]store.PlayerMasterRow{77: masterRow(77)}

	res := Players(games, master)
	require.Len(t, res.Rows, 1)
	row := res.Rows[0]

	assert.Equal(t, []int64{77}, res.MasterHits)
	assert.Empty(t, res.MasterMisses)
	assert.Equal(t, "Luka", row.FirstName.String)
	assert.Equal(t, "Doncic", row.LastName.String)
	assert.Equal(t, int64(79), row.Height.Int64)
	assert.Equal(t, 230.0, row.BodyWeight.Float64)
	assert.True(t, row.Guard.Valid)
	assert.True(t, row.Guard.Bool)
	assert.True(t, row.Forward.Bool)
	assert.False(t, row.Center.Bool)
	assert.Equal(t, int64(2018), row.DraftYear.Int64)
	assert.Equal(t, int64(3), row.DraftNumber.Int64)
	require.True(t, row.DLeague.Valid)
	assert.False(t, row.DLeague.Bool)
}

func TestPlayersUndraftedSentinel(t *testing.T) {
	m := masterRow(88)
	m.DraftYear = ns("Undrafted")
	m.DraftRound = ns("Undrafted")
	m.DraftNumber = ns("Undrafted")

	games := []*nba.RawGame{rosterGame("0022500021",
		[]nba.RawPlayer{{PersonID: 88}}, nil)}
	res := Players(games, map[int64]store.PlayerMasterRow{88: m})

	require.Len(t, res.Rows, 1)
	assert.Equal(t, int64(-1), res.Rows[0].DraftYear.Int64)
	assert.Equal(t, int64(-1), res.Rows[0].DraftRound.Int64)
	assert.Equal(t, int64(-1), res.Rows[0].DraftNumber.Int64)
}

func TestPlayersRosterFallback(t *testing.T) {
	games := []*nba.RawGame{rosterGame("0022500022", nil,
		[]nba.RawPlayer{{PersonID: 99, FirstName: "Bogdan", FamilyName: "Bogdanović", Position: strp("G")}})}

	res := Players(games, nil)
	require.Len(t, res.Rows, 1)
	row := res.Rows[0]

	assert.Equal(t, []int64{99}, res.MasterMisses)
	assert.Equal(t, "Bogdan", row.FirstName.String)
	assert.Equal(t, "Bogdanovic", row.LastName.String)
	assert.False(t, row.BirthDate.Valid)
	assert.False(t, row.School.Valid)
	assert.False(t, row.Height.Valid)
	assert.False(t, row.BodyWeight.Valid)
	assert.False(t, row.DraftYear.Valid)
	assert.False(t, row.DLeague.Valid)
	// "G" names no full position word, so the flags resolve false, not null.
	require.True(t, row.Guard.Valid)
	assert.False(t, row.Guard.Bool)
}

func TestPlayersMissingPositionLeavesFlagsNull(t *testing.T) {
	games := []*nba.RawGame{rosterGame("0022500023",
		[]nba.RawPlayer{{PersonID: 55, FirstName: "A", FamilyName: "B"}}, nil)}

	res := Players(games, nil)
	require.Len(t, res.Rows, 1)
	assert.False(t, res.Rows[0].Guard.Valid)
	assert.False(t, res.Rows[0].Forward.Valid)
	assert.False(t, res.Rows[0].Center.Valid)
}

func TestPlayersFirstOccurrenceWins(t *testing.T) {
	// The same person appears in two games and twice in one roster; only the
	// first occurrence produces a row.
	p := nba.RawPlayer{PersonID: 11, FirstName: "Only", FamilyName: "Once"}
	games := []*nba.RawGame{
		rosterGame("0022500024", []nba.RawPlayer{p, p}, []nba.RawPlayer{{PersonID: 12}}),
		rosterGame("0022500025", []nba.RawPlayer{{PersonID: 13}}, []nba.RawPlayer{p}),
	}

	res := Players(games, nil)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, int64(11), res.Rows[0].PersonID)
	assert.Equal(t, int64(12), res.Rows[1].PersonID)
	assert.Equal(t, int64(13), res.Rows[2].PersonID)
}

func TestPlayersTenPlayerScenario(t *testing.T) {
	// Five per side, two with master records. Home roster precedes away.
	var home, away []nba.RawPlayer
	for i := int64(1); i <= 5; i++ {
		home = append(home, nba.RawPlayer{PersonID: i, FirstName: "H", FamilyName: "P"})
		away = append(away, nba.RawPlayer{PersonID: 100 + i, FirstName: "A", FamilyName: "P"})
	}
	master := map[int64]store.PlayerMasterRow{
		3:   masterRow(3),
		104: masterRow(104),
	}

	res := Players([]*nba.RawGame{rosterGame("0022500026", home, away)}, master)
	require.Len(t, res.Rows, 10)
	assert.ElementsMatch(t, []int64{3, 104}, res.MasterHits)
	assert.Len(t, res.MasterMisses, 8)
	for _, row := range res.Rows {
		if row.PersonID == 3 || row.PersonID == 104 {
			assert.True(t, row.DLeague.Valid)
		} else {
			assert.False(t, row.DLeague.Valid)
		}
	}
}

func TestPlayersDLeagueFlag(t *testing.T) {
	m := masterRow(42)
	m.DLeagueFlag = ns("Y")
	games := []*nba.RawGame{rosterGame("0022500027",
		[]nba.RawPlayer{{PersonID: 42}}, nil)}

	res := Players(games, map[int64]store.PlayerMasterRow{42: m})
	require.Len(t, res.Rows, 1)
	require.True(t, res.Rows[0].DLeague.Valid)
	assert.True(t, res.Rows[0].DLeague.Bool)
}
