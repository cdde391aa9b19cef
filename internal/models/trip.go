package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
)

// Trip is the top-level aggregate: a planned journey owning its packing list.
type Trip struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD format
	Items       []Item `json:"items"`
}

// Item is a single packing-list entry belonging to a trip.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ReminderDate *string `json:"reminderDate,omitempty"` // YYYY-MM-DD format
	Packed       bool    `json:"packed"`
}

func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Destination) == "" {
		return fmt.Errorf("%w: destination cannot be empty", ErrInvalidInput)
	}
	if _, err := time.Parse(constants.DateFormat, t.StartDate); err != nil {
		return fmt.Errorf("%w: invalid start date (expected YYYY-MM-DD): %v", ErrInvalidInput, err)
	}
	return nil
}

// Start returns the trip's start date at midnight local time.
func (t *Trip) Start() (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, t.StartDate, time.Local)
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("%w: item category cannot be empty", ErrInvalidInput)
	}
	if i.ReminderDate != nil {
		if _, err := time.Parse(constants.DateFormat, *i.ReminderDate); err != nil {
			return fmt.Errorf("%w: invalid reminder date (expected YYYY-MM-DD): %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// Reminder returns the item's reminder date at midnight local time, if set.
func (i *Item) Reminder() (time.Time, bool) {
	if i.ReminderDate == nil || *i.ReminderDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(constants.DateFormat, *i.ReminderDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
