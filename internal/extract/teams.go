package extract

import (
	"github.com/fortuna/courtside/internal/nba"
	"github.com/fortuna/courtside/internal/store"
)

// Teams builds one row per distinct team appearing on either side of any game
// in the batch, in first-seen order.
func Teams(games []*nba.RawGame) []store.TeamRow {
	var rows []store.TeamRow
	seen := make(map[int64]struct{})

	for _, game := range games {
		for _, side := range []nba.Side{nba.Home, nba.Away} {
			id := game.Team(side).TeamID
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			rows = append(rows, store.TeamRow{TeamID: id})
		}
	}
	return rows
}
