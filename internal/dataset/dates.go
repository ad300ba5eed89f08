package dataset

import (
	"strconv"
	"strings"
	"time"
)

// flexibleLayouts cover values that are already directly parseable: datetime
// cells that excelize formats with a time component, and ISO timestamps.
var flexibleLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"01-02-06 15:04",
	"1/2/06 15:04",
}

// fallbackLayouts are the last-resort formats tried after the dash and slash
// rules. DD/MM/YYYY deliberately outranks MM/DD/YYYY.
var fallbackLayouts = []string{
	"02/01/2006",
	"01/02/2006",
	"20060102",
}

// ParseDate normalizes the heterogeneous date representations found in the
// 銷貨日期 column. Formats are tried in fixed priority order and the first
// success wins; a value resolved by an earlier rule is never reinterpreted by
// a later one:
//
//  1. directly parseable datetime strings
//  2. ROC calendar "YYY.MM.DD" (year offset +1911)
//  3. "YYYY-MM-DD"
//  4. "YYYY/MM/DD"
//  5. "DD/MM/YYYY", "MM/DD/YYYY", "YYYYMMDD"
//
// Values failing every rule return ok=false: the row is kept, only date-keyed
// views exclude it.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Truncate(24 * time.Hour), true
		}
	}

	if t, ok := parseROCDate(s); ok {
		return t, true
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-1-2", s); err == nil {
		return t, true
	}

	if t, err := time.Parse("2006/01/02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006/1/2", s); err == nil {
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseROCDate handles the legacy regional calendar format "YYY.MM.DD" where
// the year is offset from the Gregorian year by the ROC epoch (1911), so
// "112.01.15" is 2023-01-15.
func parseROCDate(s string) (time.Time, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}
	year += 1911

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (month 13 becomes January
	// of the next year); reject anything that did not round-trip.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
