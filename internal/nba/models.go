package nba

// The structures below mirror the game object embedded in the source's
// server-rendered pages. Fields the source sometimes omits are pointers so
// that "absent" survives into the extractors as nil instead of a zero.

// nextData is the envelope wrapping the embedded JSON document. Only the
// path down to the game object matters.
type nextData struct {
	Props struct {
		PageProps struct {
			Game *RawGame `json:"game"`
		} `json:"pageProps"`
	} `json:"props"`
}

// RawGame is one game as scraped, before extraction into entity rows. It is
// never persisted verbatim.
type RawGame struct {
	GameID         string          `json:"gameId"`
	GameEt         string          `json:"gameEt"`
	Duration       *string         `json:"duration"`
	Attendance     int64           `json:"attendance"`
	HomeTeam       RawTeam         `json:"homeTeam"`
	AwayTeam       RawTeam         `json:"awayTeam"`
	PostgameCharts *PostgameCharts `json:"postgameCharts"`
}

// RawTeam is one side of a game: identity, score, roster and statistics.
type RawTeam struct {
	TeamID            int64         `json:"teamId"`
	Score             int64         `json:"score"`
	TimeoutsRemaining *int64        `json:"timeoutsRemaining"`
	TeamWins          *int64        `json:"teamWins"`
	TeamLosses        *int64        `json:"teamLosses"`
	Periods           []RawPeriod   `json:"periods"`
	Statistics        *TeamBoxScore `json:"statistics"`
	Players           []RawPlayer   `json:"players"`
}

// RawPeriod is one scoring period. Overtime periods carry numbers above 4.
type RawPeriod struct {
	Period int   `json:"period"`
	Score  int64 `json:"score"`
}

// RawPlayer is one roster entry. The scraped roster does not carry biography
// fields; those come from the player master table when available.
type RawPlayer struct {
	PersonID   int64           `json:"personId"`
	FirstName  string          `json:"firstName"`
	FamilyName string          `json:"familyName"`
	Position   *string         `json:"position"`
	Statistics *PlayerBoxScore `json:"statistics"`
}

// TeamBoxScore holds a team's aggregate counters for one game.
type TeamBoxScore struct {
	Minutes                 *string  `json:"minutes"`
	Assists                 *int64   `json:"assists"`
	Blocks                  *int64   `json:"blocks"`
	FieldGoalsAttempted     *int64   `json:"fieldGoalsAttempted"`
	FieldGoalsMade          *int64   `json:"fieldGoalsMade"`
	FieldGoalsPercentage    *float64 `json:"fieldGoalsPercentage"`
	FoulsPersonal           *int64   `json:"foulsPersonal"`
	FreeThrowsAttempted     *int64   `json:"freeThrowsAttempted"`
	FreeThrowsMade          *int64   `json:"freeThrowsMade"`
	FreeThrowsPercentage    *float64 `json:"freeThrowsPercentage"`
	PlusMinusPoints         *int64   `json:"plusMinusPoints"`
	Points                  *int64   `json:"points"`
	ReboundsDefensive       *int64   `json:"reboundsDefensive"`
	ReboundsOffensive       *int64   `json:"reboundsOffensive"`
	ReboundsTotal           *int64   `json:"reboundsTotal"`
	Steals                  *int64   `json:"steals"`
	ThreePointersAttempted  *int64   `json:"threePointersAttempted"`
	ThreePointersMade       *int64   `json:"threePointersMade"`
	ThreePointersPercentage *float64 `json:"threePointersPercentage"`
	Turnovers               *int64   `json:"turnovers"`
}

// PlayerBoxScore holds one roster player's counters for one game.
type PlayerBoxScore struct {
	Minutes                 *string  `json:"minutes"`
	Assists                 *int64   `json:"assists"`
	Blocks                  *int64   `json:"blocks"`
	FieldGoalsAttempted     *int64   `json:"fieldGoalsAttempted"`
	FieldGoalsMade          *int64   `json:"fieldGoalsMade"`
	FieldGoalsPercentage    *float64 `json:"fieldGoalsPercentage"`
	FoulsPersonal           *int64   `json:"foulsPersonal"`
	FreeThrowsAttempted     *int64   `json:"freeThrowsAttempted"`
	FreeThrowsMade          *int64   `json:"freeThrowsMade"`
	FreeThrowsPercentage    *float64 `json:"freeThrowsPercentage"`
	PlusMinusPoints         *int64   `json:"plusMinusPoints"`
	Points                  *int64   `json:"points"`
	ReboundsDefensive       *int64   `json:"reboundsDefensive"`
	ReboundsOffensive       *int64   `json:"reboundsOffensive"`
	ReboundsTotal           *int64   `json:"reboundsTotal"`
	Steals                  *int64   `json:"steals"`
	ThreePointersAttempted  *int64   `json:"threePointersAttempted"`
	ThreePointersMade       *int64   `json:"threePointersMade"`
	ThreePointersPercentage *float64 `json:"threePointersPercentage"`
	Turnovers               *int64   `json:"turnovers"`
}

// PostgameCharts carries the derived counters published after the final
// buzzer (bench points, runs, lead changes and so on).
type PostgameCharts struct {
	HomeTeam *PostgameTeam `json:"homeTeam"`
	AwayTeam *PostgameTeam `json:"awayTeam"`
}

// PostgameTeam wraps one team's postgame statistics block.
type PostgameTeam struct {
	Statistics *PostgameStats `json:"statistics"`
}

// PostgameStats is the derived counter block for one team.
type PostgameStats struct {
	BenchPoints         *int64 `json:"benchPoints"`
	BiggestLead         *int64 `json:"biggestLead"`
	BiggestScoringRun   *int64 `json:"biggestScoringRun"`
	LeadChanges         *int64 `json:"leadChanges"`
	PointsFastBreak     *int64 `json:"pointsFastBreak"`
	PointsFromTurnovers *int64 `json:"pointsFromTurnovers"`
	PointsInThePaint    *int64 `json:"pointsInThePaint"`
	PointsSecondChance  *int64 `json:"pointsSecondChance"`
	TimesTied           *int64 `json:"timesTied"`
}

// Side selects one of the two teams in a raw game.
type Side int

const (
	Home Side = iota
	Away
)

// Team returns the chosen side's team record.
func (g *RawGame) Team(s Side) *RawTeam {
	if s == Home {
		return &g.HomeTeam
	}
	return &g.AwayTeam
}

// PostgameFor returns the chosen side's postgame statistics, or nil when the
// source did not publish them.
func (g *RawGame) PostgameFor(s Side) *PostgameStats {
	if g.PostgameCharts == nil {
		return nil
	}
	team := g.PostgameCharts.HomeTeam
	if s == Away {
		team = g.PostgameCharts.AwayTeam
	}
	if team == nil {
		return nil
	}
	return team.Statistics
}
