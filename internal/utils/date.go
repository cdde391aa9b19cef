package utils

import (
	"fmt"
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD) as
// midnight local time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as a standard date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Midnight truncates a time to midnight in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole calendar days from now until the
// given date, comparing at midnight. Negative when the date is in the past.
func DaysUntil(date, now time.Time) int {
	return int(Midnight(date).Sub(Midnight(now)).Hours() / 24)
}
