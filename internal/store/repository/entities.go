package repository

// The five entity merge specs. Column lists mirror the db tags on the row
// structs in internal/store and the table definitions under migrations/.
var (
	// Players are keyed on the league person identifier. Biography fields
	// are overwritten on re-ingest so a later master record wins.
	Players = MergeSpec{
		Table:      "players",
		KeyColumns: []string{"person_id"},
		ValueColumns: []string{
			"first_name", "last_name", "birth_date", "school", "country",
			"height", "body_weight", "guard", "forward", "center",
			"draft_year", "draft_round", "draft_number", "dleague",
		},
	}

	// Teams carry nothing but their identifier, so a key match is a no-op.
	Teams = MergeSpec{
		Table:      "teams",
		KeyColumns: []string{"team_id"},
		InsertOnly: true,
	}

	Games = MergeSpec{
		Table:      "games",
		KeyColumns: []string{"game_id"},
		ValueColumns: []string{
			"game_date", "game_duration", "home_team_id", "away_team_id",
			"home_score", "away_score", "winner", "attendance",
		},
	}

	TeamStatistics = MergeSpec{
		Table:      "team_statistics",
		KeyColumns: []string{"team_id", "game_id"},
		ValueColumns: []string{
			"home", "win",
			"assists", "blocks",
			"field_goals_attempted", "field_goals_made", "field_goals_percentage",
			"fouls_personal",
			"free_throws_attempted", "free_throws_made", "free_throws_percentage",
			"num_minutes", "plus_minus_points", "points",
			"rebounds_defensive", "rebounds_offensive", "rebounds_total",
			"steals",
			"three_pointers_attempted", "three_pointers_made", "three_pointers_percentage",
			"turnovers",
			"q1_points", "q2_points", "q3_points", "q4_points",
			"bench_points", "biggest_lead", "biggest_scoring_run", "lead_changes",
			"points_fast_break", "points_from_turnovers", "points_in_the_paint",
			"points_second_chance", "times_tied", "timeouts_remaining",
			"season_wins", "season_losses",
		},
	}

	// Player statistics are by far the widest row-set per run, so they get
	// a larger staging batch.
	PlayerStatistics = MergeSpec{
		Table:      "player_statistics",
		KeyColumns: []string{"person_id", "game_id"},
		ValueColumns: []string{
			"team_id",
			"assists", "blocks",
			"field_goals_attempted", "field_goals_made", "field_goals_percentage",
			"fouls_personal",
			"free_throws_attempted", "free_throws_made", "free_throws_percentage",
			"num_minutes", "plus_minus_points", "points",
			"rebounds_defensive", "rebounds_offensive", "rebounds_total",
			"steals",
			"three_pointers_attempted", "three_pointers_made", "three_pointers_percentage",
			"turnovers",
		},
		BatchSize: 3000,
	}
)
