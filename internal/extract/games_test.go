package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/courtside/internal/nba"
)

func strp(s string) *string   { return &s }
func i64p(v int64) *int64     { return &v }
func f64p(v float64) *float64 { return &v }

func rawGame(id string, homeID, homeScore, awayID, awayScore int64) *nba.RawGame {
	return &nba.RawGame{
		GameID:   id,
		GameEt:   "2025-01-15T19:30:00-05:00",
		HomeTeam: nba.RawTeam{TeamID: homeID, Score: homeScore},
		AwayTeam: nba.RawTeam{TeamID: awayID, Score: awayScore},
	}
}

func TestGamesWinner(t *testing.T) {
	rows := Games([]*nba.RawGame{
		rawGame("0022500001", 10, 110, 20, 100),
		rawGame("0022500002", 10, 95, 20, 100),
	})
	require.Len(t, rows, 2)
	assert.Equal(t, int64(10), rows[0].Winner)
	assert.Equal(t, int64(20), rows[1].Winner)
}

func TestGamesTieGoesToHomeTeam(t *testing.T) {
	rows := Games([]*nba.RawGame{rawGame("0022500003", 10, 100, 20, 100)})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(10), rows[0].Winner)
}

func TestGamesZeroAttendanceIsNull(t *testing.T) {
	empty := rawGame("0022500004", 10, 1, 20, 0)
	full := rawGame("0022500005", 10, 1, 20, 0)
	full.Attendance = 18997

	rows := Games([]*nba.RawGame{empty, full})
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Attendance.Valid)
	assert.True(t, rows[1].Attendance.Valid)
	assert.Equal(t, int64(18997), rows[1].Attendance.Int64)
}

func TestGamesParsesEasternTipoff(t *testing.T) {
	rows := Games([]*nba.RawGame{rawGame("0022500006", 10, 1, 20, 0)})
	require.True(t, rows[0].GameDate.Valid)
	assert.Equal(t, 2025, rows[0].GameDate.Time.Year())
	assert.Equal(t, time.January, rows[0].GameDate.Time.Month())
	assert.Equal(t, 15, rows[0].GameDate.Time.Day())
}

func TestGameDurationPrefersHomeBoxScore(t *testing.T) {
	game := rawGame("0022500007", 10, 1, 20, 0)
	game.HomeTeam.Statistics = &nba.TeamBoxScore{Minutes: strp("48:00")}
	game.Duration = strp("53:00")

	rows := Games([]*nba.RawGame{game})
	require.True(t, rows[0].GameDuration.Valid)
	assert.Equal(t, 48.0, rows[0].GameDuration.Float64)
}

func TestGameDurationFallsBackToGameField(t *testing.T) {
	game := rawGame("0022500008", 10, 1, 20, 0)
	game.Duration = strp("PT53M00.00S")

	rows := Games([]*nba.RawGame{game})
	require.True(t, rows[0].GameDuration.Valid)
	assert.Equal(t, 53.0, rows[0].GameDuration.Float64)
}

func TestGameDurationScalesAggregateMinutes(t *testing.T) {
	// 240 team minutes is five players' worth of a 48-minute game.
	game := rawGame("0022500009", 10, 1, 20, 0)
	game.HomeTeam.Statistics = &nba.TeamBoxScore{Minutes: strp("240:00")}

	rows := Games([]*nba.RawGame{game})
	require.True(t, rows[0].GameDuration.Valid)
	assert.Equal(t, 48.0, rows[0].GameDuration.Float64)
}

func TestGameDurationMissingStaysNull(t *testing.T) {
	rows := Games([]*nba.RawGame{rawGame("0022500010", 10, 1, 20, 0)})
	assert.False(t, rows[0].GameDuration.Valid)
}

func TestTeamsDeduplicatesAcrossBatch(t *testing.T) {
	rows := Teams([]*nba.RawGame{
		rawGame("0022500011", 10, 1, 20, 0),
		rawGame("0022500012", 20, 1, 30, 0),
	})
	require.Len(t, rows, 3)
	assert.Equal(t, int64(10), rows[0].TeamID)
	assert.Equal(t, int64(20), rows[1].TeamID)
	assert.Equal(t, int64(30), rows[2].TeamID)
}
