package extract

import (
	"database/sql"

	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/store"
)

// Games builds one row per game in the batch.
func Games(games []*nba.RawGame) []store.GameRow {
	rows := make([]store.GameRow, 0, len(games))
	for _, game := range games {
		home := &game.HomeTeam
		away := &game.AwayTeam

		// A tied final score records the home team as the winner.
		winner := home.TeamID
		if away.Score > home.Score {
			winner = away.TeamID
		}

		// Zero attendance means the source had no figure, not an empty
		// arena.
		var attendance sql.NullInt64
		if game.Attendance != 0 {
			attendance = sql.NullInt64{Int64: game.Attendance, Valid: true}
		}

		rows = append(rows, store.GameRow{
			GameID:       game.GameID,
			GameDate:     parseGameTime(game.GameEt),
			GameDuration: nullFloat(gameDuration(game)),
			HomeTeamID:   home.TeamID,
			AwayTeamID:   away.TeamID,
			HomeScore:    home.Score,
			AwayScore:    away.Score,
			Winner:       winner,
			Attendance:   attendance,
		})
	}
	return rows
}

// gameDuration resolves the game's length in minutes. The home team's box
// score minutes are preferred; the game-level duration is the fallback. Values
// of 120 and above are five-player aggregates and are divided back down to
// wall-clock minutes.
func gameDuration(game *nba.RawGame) *float64 {
	var raw *string
	if game.HomeTeam.Statistics != nil {
		raw = game.HomeTeam.Statistics.Minutes
	}
	if raw == nil || *raw == "" {
		raw = game.Duration
	}

	minutes := normalize.ParseDurationMinutes(raw)
	if minutes != nil && *minutes >= 120 {
		scaled := *minutes / 5
		return &scaled
	}
	return minutes
}
