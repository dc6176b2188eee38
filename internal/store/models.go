package store

import "database/sql"

// PlayerRow is one row of the players table. Biography fields are null when
// the player has no master record; see extract.Players.
type PlayerRow struct {
	PersonID    int64           `db:"person_id"`
	FirstName   sql.NullString  `db:"first_name"`
	LastName    sql.NullString  `db:"last_name"`
	BirthDate   sql.NullTime    `db:"birth_date"`
	School      sql.NullString  `db:"school"`
	Country     sql.NullString  `db:"country"`
	Height      sql.NullInt64   `db:"height"`
	BodyWeight  sql.NullFloat64 `db:"body_weight"`
	Guard       sql.NullBool    `db:"guard"`
	Forward     sql.NullBool    `db:"forward"`
	Center      sql.NullBool    `db:"center"`
	DraftYear   sql.NullInt64   `db:"draft_year"`
	DraftRound  sql.NullInt64   `db:"draft_round"`
	DraftNumber sql.NullInt64   `db:"draft_number"`
	DLeague     sql.NullBool    `db:"dleague"`
}

// TeamRow is one row of the teams table. Teams carry no mutable attributes.
type TeamRow struct {
	TeamID int64 `db:"team_id"`
}

// GameRow is one row of the games table. The game identifier stays text to
// preserve the source's formatting.
type GameRow struct {
	GameID       string          `db:"game_id"`
	GameDate     sql.NullTime    `db:"game_date"`
	GameDuration sql.NullFloat64 `db:"game_duration"`
	HomeTeamID   int64           `db:"home_team_id"`
	AwayTeamID   int64           `db:"away_team_id"`
	HomeScore    int64           `db:"home_score"`
	AwayScore    int64           `db:"away_score"`
	Winner       int64           `db:"winner"`
	Attendance   sql.NullInt64   `db:"attendance"`
}

// TeamStatRow is one row of team_statistics: one team's box score for one
// game, two rows per game. Win is null on a tie.
type TeamStatRow struct {
	TeamID                  int64           `db:"team_id"`
	GameID                  int64           `db:"game_id"`
	Home                    int64           `db:"home"`
	Win                     sql.NullInt64   `db:"win"`
	Assists                 sql.NullInt64   `db:"assists"`
	Blocks                  sql.NullInt64   `db:"blocks"`
	FieldGoalsAttempted     sql.NullInt64   `db:"field_goals_attempted"`
	FieldGoalsMade          sql.NullInt64   `db:"field_goals_made"`
	FieldGoalsPercentage    sql.NullFloat64 `db:"field_goals_percentage"`
	FoulsPersonal           sql.NullInt64   `db:"fouls_personal"`
	FreeThrowsAttempted     sql.NullInt64   `db:"free_throws_attempted"`
	FreeThrowsMade          sql.NullInt64   `db:"free_throws_made"`
	FreeThrowsPercentage    sql.NullFloat64 `db:"free_throws_percentage"`
	NumMinutes              sql.NullFloat64 `db:"num_minutes"`
	PlusMinusPoints         sql.NullInt64   `db:"plus_minus_points"`
	Points                  sql.NullInt64   `db:"points"`
	ReboundsDefensive       sql.NullInt64   `db:"rebounds_defensive"`
	ReboundsOffensive       sql.NullInt64   `db:"rebounds_offensive"`
	ReboundsTotal           sql.NullInt64   `db:"rebounds_total"`
	Steals                  sql.NullInt64   `db:"steals"`
	ThreePointersAttempted  sql.NullInt64   `db:"three_pointers_attempted"`
	ThreePointersMade       sql.NullInt64   `db:"three_pointers_made"`
	ThreePointersPercentage sql.NullFloat64 `db:"three_pointers_percentage"`
	Turnovers               sql.NullInt64   `db:"turnovers"`
	Q1Points                sql.NullInt64   `db:"q1_points"`
	Q2Points                sql.NullInt64   `db:"q2_points"`
	Q3Points                sql.NullInt64   `db:"q3_points"`
	Q4Points                sql.NullInt64   `db:"q4_points"`
	BenchPoints             sql.NullInt64   `db:"bench_points"`
	BiggestLead             sql.NullInt64   `db:"biggest_lead"`
	BiggestScoringRun       sql.NullInt64   `db:"biggest_scoring_run"`
	LeadChanges             sql.NullInt64   `db:"lead_changes"`
	PointsFastBreak         sql.NullInt64   `db:"points_fast_break"`
	PointsFromTurnovers     sql.NullInt64   `db:"points_from_turnovers"`
	PointsInThePaint        sql.NullInt64   `db:"points_in_the_paint"`
	PointsSecondChance      sql.NullInt64   `db:"points_second_chance"`
	TimesTied               sql.NullInt64   `db:"times_tied"`
	TimeoutsRemaining       sql.NullInt64   `db:"timeouts_remaining"`
	SeasonWins              sql.NullInt64   `db:"season_wins"`
	SeasonLosses            sql.NullInt64   `db:"season_losses"`
}

// PlayerStatRow is one row of player_statistics: one roster player's box
// score for one game. The game identifier stays text, matching the games
// table; box-score fields absent from the source stay null rather than zero.
type PlayerStatRow struct {
	PersonID                int64           `db:"person_id"`
	GameID                  string          `db:"game_id"`
	TeamID                  int64           `db:"team_id"`
	Assists                 sql.NullInt64   `db:"assists"`
	Blocks                  sql.NullInt64   `db:"blocks"`
	FieldGoalsAttempted     sql.NullInt64   `db:"field_goals_attempted"`
	FieldGoalsMade          sql.NullInt64   `db:"field_goals_made"`
	FieldGoalsPercentage    sql.NullFloat64 `db:"field_goals_percentage"`
	FoulsPersonal           sql.NullInt64   `db:"fouls_personal"`
	FreeThrowsAttempted     sql.NullInt64   `db:"free_throws_attempted"`
	FreeThrowsMade          sql.NullInt64   `db:"free_throws_made"`
	FreeThrowsPercentage    sql.NullFloat64 `db:"free_throws_percentage"`
	NumMinutes              sql.NullFloat64 `db:"num_minutes"`
	PlusMinusPoints         sql.NullInt64   `db:"plus_minus_points"`
	Points                  sql.NullInt64   `db:"points"`
	ReboundsDefensive       sql.NullInt64   `db:"rebounds_defensive"`
	ReboundsOffensive       sql.NullInt64   `db:"rebounds_offensive"`
	ReboundsTotal           sql.NullInt64   `db:"rebounds_total"`
	Steals                  sql.NullInt64   `db:"steals"`
	ThreePointersAttempted  sql.NullInt64   `db:"three_pointers_attempted"`
	ThreePointersMade       sql.NullInt64   `db:"three_pointers_made"`
	ThreePointersPercentage sql.NullFloat64 `db:"three_pointers_percentage"`
	Turnovers               sql.NullInt64   `db:"turnovers"`
}

// PlayerMasterRow is one row of common_player_info, the pre-existing player
// master table. Draft fields stay text here ("Undrafted" is a legal value);
// height stays in its feet-inches encoding.
type PlayerMasterRow struct {
	PersonID    int64           `db:"person_id"`
	FirstName   sql.NullString  `db:"first_name"`
	LastName    sql.NullString  `db:"last_name"`
	BirthDate   sql.NullTime    `db:"birthdate"`
	School      sql.NullString  `db:"school"`
	Country     sql.NullString  `db:"country"`
	Height      sql.NullString  `db:"height"`
	Weight      sql.NullFloat64 `db:"weight"`
	Position    sql.NullString  `db:"position"`
	DraftYear   sql.NullString  `db:"draft_year"`
	DraftRound  sql.NullString  `db:"draft_round"`
	DraftNumber sql.NullString  `db:"draft_number"`
	DLeagueFlag sql.NullString  `db:"dleague_flag"`
}
