package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD; an empty string means today.
func ParseDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// ParseTripLength converts the free-text trip length into a day count of at
// least one.
func ParseTripLength(raw string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTripLength, raw)
	}
	return days, nil
}

// ReturnDate is the departure date shifted by the trip length.
func ReturnDate(departure time.Time, days int) time.Time {
	return departure.AddDate(0, 0, days)
}
