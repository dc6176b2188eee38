package extract

import (
	"database/sql"
	"strconv"

	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/store"
)

// TeamStats builds two rows per game, home side first. The team_statistics
// table keys on a numeric game identifier, so games whose identifier does not
// parse as an integer produce no rows; their identifiers come back in skipped
// for the caller to report.
func TeamStats(games []*nba.RawGame) (rows []store.TeamStatRow, skipped []string) {
	rows = make([]store.TeamStatRow, 0, 2*len(games))
	for _, game := range games {
		gameID, err := strconv.ParseInt(game.GameID, 10, 64)
		if err != nil {
			skipped = append(skipped, game.GameID)
			continue
		}
		rows = append(rows,
			teamStatRow(game, gameID, nba.Home),
			teamStatRow(game, gameID, nba.Away),
		)
	}
	return rows, skipped
}

func teamStatRow(game *nba.RawGame, gameID int64, side nba.Side) store.TeamStatRow {
	team := game.Team(side)

	var home int64
	if side == nba.Home {
		home = 1
	}

	row := store.TeamStatRow{
		TeamID:            team.TeamID,
		GameID:            gameID,
		Home:              home,
		Win:               winFlag(game, side),
		TimeoutsRemaining: nullInt(team.TimeoutsRemaining),
		SeasonWins:        nullInt(team.TeamWins),
		SeasonLosses:      nullInt(team.TeamLosses),
	}

	// Overtime periods carry numbers above four and have no column.
	quarters := [4]sql.NullInt64{}
	for _, p := range team.Periods {
		if p.Period >= 1 && p.Period <= 4 {
			quarters[p.Period-1] = sql.NullInt64{Int64: p.Score, Valid: true}
		}
	}
	row.Q1Points, row.Q2Points, row.Q3Points, row.Q4Points =
		quarters[0], quarters[1], quarters[2], quarters[3]

	if stats := team.Statistics; stats != nil {
		row.NumMinutes = nullFloat(normalize.ParseDurationMinutes(stats.Minutes))
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
	}

	if postgame := game.PostgameFor(side); postgame != nil {
		row.BenchPoints = nullInt(postgame.BenchPoints)
		row.BiggestLead = nullInt(postgame.BiggestLead)
		row.BiggestScoringRun = nullInt(postgame.BiggestScoringRun)
		row.LeadChanges = nullInt(postgame.LeadChanges)
		row.PointsFastBreak = nullInt(postgame.PointsFastBreak)
		row.PointsFromTurnovers = nullInt(postgame.PointsFromTurnovers)
		row.PointsInThePaint = nullInt(postgame.PointsInThePaint)
		row.PointsSecondChance = nullInt(postgame.PointsSecondChance)
		row.TimesTied = nullInt(postgame.TimesTied)
	}

	return row
}

// winFlag compares the side's score against its opponent's. A tie leaves the
// flag null for both sides.
func winFlag(game *nba.RawGame, side nba.Side) sql.NullInt64 {
	own := game.Team(side).Score
	opp := game.AwayTeam.Score
	if side == nba.Away {
		opp = game.HomeTeam.Score
	}
	switch {
	case own > opp:
		return sql.NullInt64{Int64: 1, Valid: true}
	case own < opp:
		return sql.NullInt64{Int64: 0, Valid: true}
	default:
		return sql.NullInt64{}
	}
}
