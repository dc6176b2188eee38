package extract

import (
	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/store"
)

// PlayerStats builds one row per roster player per game, home roster first.
// Unlike the player entity there is no dedup: a person appearing in several
// games of the batch gets a row for each.
func PlayerStats(games []*nba.RawGame) []store.PlayerStatRow {
	var rows []store.PlayerStatRow
	for _, game := range games {
		for _, side := range []nba.Side{nba.Home, nba.Away} {
			team := game.Team(side)
			for _, player := range team.Players {
				rows = append(rows, playerStatRow(game.GameID, team.TeamID, player))
			}
		}
	}
	return rows
}

func playerStatRow(gameID string, teamID int64, player nba.RawPlayer) store.PlayerStatRow {
	row := store.PlayerStatRow{
		PersonID: player.PersonID,
		GameID:   gameID,
		TeamID:   teamID,
	}

	stats := player.Statistics
	if stats == nil {
		return row
	}

	row.NumMinutes = nullFloat(normalize.ParsePlayerMinutes(stats.Minutes))
	row.Assists = nullInt(stats.Assists)
	row.Blocks = nullInt(stats.Blocks)
	row.FieldGoalsAttempted = nullInt(stats.FieldGoalsAttempted)
	row.FieldGoalsMade = nullInt(stats.FieldGoalsMade)
	row.FieldGoalsPercentage = nullFloat(stats.FieldGoalsPercentage)
	row.FoulsPersonal = nullInt(stats.FoulsPersonal)
	row.FreeThrowsAttempted = nullInt(stats.FreeThrowsAttempted)
	row.FreeThrowsMade = nullInt(stats.FreeThrowsMade)
	row.FreeThrowsPercentage = nullFloat(stats.FreeThrowsPercentage)
	row.PlusMinusPoints = nullInt(stats.PlusMinusPoints)
	row.Points = nullInt(stats.Points)
	row.ReboundsDefensive = nullInt(stats.ReboundsDefensive)
	row.ReboundsOffensive = nullInt(stats.ReboundsOffensive)
	row.ReboundsTotal = nullInt(stats.ReboundsTotal)
	row.Steals = nullInt(stats.Steals)
	row.ThreePointersAttempted = nullInt(stats.ThreePointersAttempted)
	row.ThreePointersMade = nullInt(stats.ThreePointersMade)
	row.ThreePointersPercentage = nullFloat(stats.ThreePointersPercentage)
	row.Turnovers = nullInt(stats.Turnovers)

	return row
}
