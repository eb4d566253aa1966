package model

import (
	"fmt"
	"math"
	"time"
)

// ParseISODate parses an ISO calendar date, accepting either a bare
// YYYY-MM-DD date or a full RFC 3339 timestamp. Bare dates are anchored at
// midnight UTC.
func ParseISODate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid ISO date %q", value)
}

// WholeDays returns the floor of the whole-day difference from start to end.
// The result is negative when end precedes start.
func WholeDays(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}
