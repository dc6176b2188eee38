// Package normalize holds the pure scalar cleanups applied to scraped and
// master-table values before they become database rows. No I/O happens here.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Undrafted is the sentinel stored for draft year/round/number when the
// source reports a player as undrafted.
const Undrafted int64 = -1

// Sanitize maps absent or blank strings to nil and passes everything else
// through untouched.
func Sanitize(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// SanitizeFloat maps absent values and NaN to nil.
func SanitizeFloat(f *float64) *float64 {
	if f == nil || math.IsNaN(*f) {
		return nil
	}
	return f
}

// StripDiacritics sanitizes the input, then decomposes it and drops combining
// marks, so "Dončić" becomes "Doncic".
func StripDiacritics(s *string) *string {
	s = Sanitize(s)
	if s == nil {
		return nil
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, *s)
	if err != nil {
		return s
	}
	return &out
}

// DraftField resolves a draft year/round/number value. "Undrafted" in any
// case maps to the -1 sentinel, numeric text maps to its integer value, and
// anything else maps to nil.
func DraftField(s *string) *int64 {
	s = Sanitize(s)
	if s == nil {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(*s), "undrafted") {
		v := Undrafted
		return &v
	}
	n, err := strconv.ParseInt(strings.TrimSpace(*s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseHeight converts a "feet-inches" height string to total inches.
// Anything that does not match the dash-separated shape returns nil.
func ParseHeight(s *string) *int64 {
	s = Sanitize(s)
	if s == nil {
		return nil
	}
	parts := strings.Split(strings.TrimSpace(*s), "-")
	if len(parts) != 2 {
		return nil
	}
	feet, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || feet < 0 {
		return nil
	}
	inches, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || inches < 0 {
		return nil
	}
	total := feet*12 + inches
	return &total
}

// ParseDurationMinutes is the coarse duration parser used for game and team
// durations. "M:SS" yields the minutes part with seconds discarded, and an
// ISO-style "PT<minutes>M..." fragment yields the minutes field. Any other
// shape returns nil.
func ParseDurationMinutes(s *string) *float64 {
	if s == nil || *s == "" {
		return nil
	}
	text := *s
	if strings.Contains(text, ":") {
		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return nil
		}
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil
		}
		return &v
	}
	if strings.HasPrefix(text, "PT") {
		tIdx := strings.Index(text, "T")
		mIdx := strings.Index(text, "M")
		if tIdx < 0 || mIdx <= tIdx+1 {
			return nil
		}
		v, err := strconv.ParseFloat(text[tIdx+1:mIdx], 64)
		if err != nil {
			return nil
		}
		return &v
	}
	return nil
}

// ParsePlayerMinutes is the fine duration parser used for per-player minutes.
// "M:SS" folds the seconds into a two-decimal fraction, so "36:05" yields
// 36.05. Malformed or absent input returns nil; the caller cannot tell the
// two apart, which matches the upstream behavior.
func ParsePlayerMinutes(s *string) *float64 {
	if s == nil || *s == "" {
		return nil
	}
	parts := strings.Split(*s, ":")
	minutes, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil
	}
	var seconds int64
	if len(parts) > 1 {
		seconds, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil
		}
	}
	v := float64(minutes) + float64(seconds)/100
	return &v
}
