// Package views computes display state from already-loaded trip data. All
// functions are pure and side-effect free.
package views

import (
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
	"github.com/packlight/packlight-cli/internal/models"
	"github.com/packlight/packlight-cli/internal/utils"
)

// Progress summarizes how much of a trip's packing list is done.
type Progress struct {
	Packed  int
	Total   int
	Percent float64
}

// Countdown is the remaining time until a trip starts, broken down for
// display at minute granularity.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
}

// TripProgress counts packed items. Percent is 0 for an empty list.
func TripProgress(trip models.Trip) Progress {
	p := Progress{Total: len(trip.Items)}
	for _, item := range trip.Items {
		if item.Packed {
			p.Packed++
		}
	}
	if p.Total > 0 {
		p.Percent = 100 * float64(p.Packed) / float64(p.Total)
	}
	return p
}

// IsUpcoming reports whether the trip starts within the next seven calendar
// days. Trips starting today count; past trips never do.
func IsUpcoming(trip models.Trip, now time.Time) bool {
	start, err := trip.Start()
	if err != nil {
		return false
	}
	days := utils.DaysUntil(start, now)
	return days >= 0 && days <= int(constants.UpcomingWindow/(24*time.Hour))
}

// TripCountdown returns the days/hours/minutes until the trip starts, or nil
// when the start date has already passed. The breakdown satisfies
// days*24*60 + hours*60 + minutes == total whole minutes remaining.
func TripCountdown(trip models.Trip, now time.Time) *Countdown {
	start, err := trip.Start()
	if err != nil {
		return nil
	}
	if !start.After(now) {
		return nil
	}

	totalMinutes := int(start.Sub(now).Minutes())
	return &Countdown{
		Days:    totalMinutes / (24 * 60),
		Hours:   (totalMinutes / 60) % 24,
		Minutes: totalMinutes % 60,
	}
}
