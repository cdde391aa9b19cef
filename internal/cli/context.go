package cli

import (
	"fmt"
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
	"github.com/packlight/packlight-cli/internal/models"
	"github.com/packlight/packlight-cli/internal/reminder"
	"github.com/packlight/packlight-cli/internal/repository"
	"github.com/packlight/packlight-cli/internal/storage"
	"github.com/packlight/packlight-cli/internal/views"
)

type Context struct {
	Store     storage.Provider
	Repo      *repository.TripRepository
	Reminders *reminder.Scheduler
}

// FormatTrip renders a one-line trip summary for list output.
func FormatTrip(trip models.Trip, now time.Time) string {
	progress := views.TripProgress(trip)
	line := fmt.Sprintf("%s  %s  %d/%d packed", trip.StartDate, trip.Destination, progress.Packed, progress.Total)
	if views.IsUpcoming(trip, now) {
		line += "  [upcoming]"
	}
	return line
}

// FormatItem renders a one-line item summary.
func FormatItem(item models.Item) string {
	mark := " "
	if item.Packed {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s (%s)", mark, item.Name, item.Category)
	if item.ReminderDate != nil {
		line += fmt.Sprintf("  reminder: %s", *item.ReminderDate)
	}
	return line
}

// FormatCountdown renders a countdown for display.
func FormatCountdown(c *views.Countdown) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%d days %d hours %d min until trip", c.Days, c.Hours, c.Minutes)
}

// FormatDisplayDate reformats a stored date for display (e.g. "Mar 4, 2026").
func FormatDisplayDate(dateStr string) string {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Jan 2, 2006")
}
