// Package extract turns raw scraped game records into the entity row-sets the
// store persists. Extraction is pure: no I/O, no mutation of its inputs.
package extract

import (
	"database/sql"
	"time"

	"github.com/fortuna/courtside/internal/normalize"
)

func nullString(s *string) sql.NullString {
	s = normalize.Sanitize(s)
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	v = normalize.SanitizeFloat(v)
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// gameTimeLayouts covers the timestamp shapes the source has been seen to
// emit for gameEt.
var gameTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseGameTime(s string) sql.NullTime {
	for _, layout := range gameTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}
