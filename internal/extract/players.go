package extract

import (
	"database/sql"
	"strings"

	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/normalize"
	"github.com/fortuna/courtside/internal/store"
)

// PlayersResult is the player row-set plus the enrichment outcome per person:
// which roster players had a master record and which fell back to roster
// fields only.
type PlayersResult struct {
	Rows         []store.PlayerRow
	MasterHits   []int64
	MasterMisses []int64
}

// Players builds one row per distinct roster player across the batch. Both
// rosters of every game contribute; the first occurrence of a person wins and
// later ones are skipped. A player with a master record gets the full
// biography; one without gets roster names and position only, with the rest
// null.
func Players(games []*nba.RawGame, master map[int64]store.PlayerMasterRow) PlayersResult {
	var res PlayersResult
	seen := make(map[int64]struct{})

	for _, game := range games {
		roster := make([]nba.RawPlayer, 0, len(game.HomeTeam.Players)+len(game.AwayTeam.Players))
		roster = append(roster, game.HomeTeam.Players...)
		roster = append(roster, game.AwayTeam.Players...)

		for _, player := range roster {
			if _, ok := seen[player.PersonID]; ok {
				continue
			}
			seen[player.PersonID] = struct{}{}

			if record, ok := master[player.PersonID]; ok {
				res.Rows = append(res.Rows, playerFromMaster(player.PersonID, record))
				res.MasterHits = append(res.MasterHits, player.PersonID)
			} else {
				res.Rows = append(res.Rows, playerFromRoster(player))
				res.MasterMisses = append(res.MasterMisses, player.PersonID)
			}
		}
	}
	return res
}

func playerFromMaster(personID int64, m store.PlayerMasterRow) store.PlayerRow {
	guard, forward, center := positionFlags(nullStringPtr(m.Position))

	// The master flag is "Y"/"N"; absent counts as not in the development
	// league rather than unknown.
	flag := normalize.Sanitize(nullStringPtr(m.DLeagueFlag))
	dleague := flag != nil && *flag == "Y"

	return store.PlayerRow{
		PersonID:    personID,
		FirstName:   nullString(normalize.StripDiacritics(nullStringPtr(m.FirstName))),
		LastName:    nullString(normalize.StripDiacritics(nullStringPtr(m.LastName))),
		BirthDate:   m.BirthDate,
		School:      nullString(nullStringPtr(m.School)),
		Country:     nullString(nullStringPtr(m.Country)),
		Height:      nullInt(normalize.ParseHeight(nullStringPtr(m.Height))),
		BodyWeight:  nullFloat(nullFloatPtr(m.Weight)),
		Guard:       guard,
		Forward:     forward,
		Center:      center,
		DraftYear:   nullInt(normalize.DraftField(nullStringPtr(m.DraftYear))),
		DraftRound:  nullInt(normalize.DraftField(nullStringPtr(m.DraftRound))),
		DraftNumber: nullInt(normalize.DraftField(nullStringPtr(m.DraftNumber))),
		DLeague:     sql.NullBool{Bool: dleague, Valid: true},
	}
}

func playerFromRoster(p nba.RawPlayer) store.PlayerRow {
	guard, forward, center := positionFlags(p.Position)
	return store.PlayerRow{
		PersonID:  p.PersonID,
		FirstName: nullString(normalize.StripDiacritics(&p.FirstName)),
		LastName:  nullString(normalize.StripDiacritics(&p.FamilyName)),
		Guard:     guard,
		Forward:   forward,
		Center:    center,
	}
}

// positionFlags derives the three position booleans from a free-text position.
// An absent position leaves all three unknown.
func positionFlags(position *string) (guard, forward, center sql.NullBool) {
	position = normalize.Sanitize(position)
	if position == nil {
		return sql.NullBool{}, sql.NullBool{}, sql.NullBool{}
	}
	p := strings.ToLower(*position)
	guard = sql.NullBool{Bool: strings.Contains(p, "guard"), Valid: true}
	forward = sql.NullBool{Bool: strings.Contains(p, "forward"), Valid: true}
	center = sql.NullBool{Bool: strings.Contains(p, "center"), Valid: true}
	return guard, forward, center
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullFloatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}
