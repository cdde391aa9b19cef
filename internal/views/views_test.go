package views

import (
	"testing"
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
	"github.com/packlight/packlight-cli/internal/models"
)

func tripStarting(days int, now time.Time) models.Trip {
	return models.Trip{
		ID:          "t1",
		Destination: "Paris",
		StartDate:   now.AddDate(0, 0, days).Format(constants.DateFormat),
	}
}

func TestTripProgress(t *testing.T) {
	cases := []struct {
		name    string
		items   []models.Item
		packed  int
		total   int
		percent float64
	}{
		{"empty list", nil, 0, 0, 0},
		{"none packed", []models.Item{{ID: "a"}, {ID: "b"}}, 0, 2, 0},
		{"half packed", []models.Item{{ID: "a", Packed: true}, {ID: "b"}}, 1, 2, 50},
		{"all packed", []models.Item{{ID: "a", Packed: true}, {ID: "b", Packed: true}}, 2, 2, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := TripProgress(models.Trip{Items: tc.items})
			if p.Packed != tc.packed || p.Total != tc.total || p.Percent != tc.percent {
				t.Errorf("got %+v, want packed=%d total=%d percent=%v",
					p, tc.packed, tc.total, tc.percent)
			}
		})
	}
}

func TestIsUpcoming(t *testing.T) {
	now := time.Now()

	if !IsUpcoming(tripStarting(3, now), now) {
		t.Error("trip starting in 3 days must be upcoming")
	}
	if !IsUpcoming(tripStarting(0, now), now) {
		t.Error("trip starting today must be upcoming all day")
	}
	if IsUpcoming(tripStarting(8, now), now) {
		t.Error("trip starting in 8 days must not be upcoming")
	}
	if IsUpcoming(tripStarting(-1, now), now) {
		t.Error("past trip must not be upcoming")
	}
	if IsUpcoming(models.Trip{StartDate: "garbage"}, now) {
		t.Error("unparseable start date must not be upcoming")
	}
}

func TestIsUpcoming_WindowBoundary(t *testing.T) {
	// Fix now at midnight so the boundary lands exactly on the window edge.
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	if !IsUpcoming(models.Trip{StartDate: "2026-03-17"}, now) {
		t.Error("trip exactly 7 days out must be upcoming")
	}
	if IsUpcoming(models.Trip{StartDate: "2026-03-18"}, now) {
		t.Error("trip 8 days out must not be upcoming")
	}
	if !IsUpcoming(models.Trip{StartDate: "2026-03-10"}, now) {
		t.Error("trip starting today must be upcoming")
	}
}

func TestTripCountdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local)

	c := TripCountdown(models.Trip{StartDate: "2026-03-12"}, now)
	if c == nil {
		t.Fatal("expected countdown for a future trip")
	}
	// Midnight on the 12th is 1 day, 2 hours, 30 minutes away.
	if c.Days != 1 || c.Hours != 2 || c.Minutes != 30 {
		t.Errorf("got %+v, want 1d 2h 30m", c)
	}
}

func TestTripCountdown_PastOrStarted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	if c := TripCountdown(models.Trip{StartDate: "2026-03-09"}, now); c != nil {
		t.Errorf("expected nil countdown for a past trip, got %+v", c)
	}
	if c := TripCountdown(models.Trip{StartDate: "2026-03-10"}, now); c != nil {
		t.Errorf("expected nil countdown once the start has passed, got %+v", c)
	}
	if c := TripCountdown(models.Trip{StartDate: "bad"}, now); c != nil {
		t.Errorf("expected nil countdown for unparseable date, got %+v", c)
	}
}

func TestTripCountdown_BreakdownIdentity(t *testing.T) {
	now := time.Date(2026, 3, 1, 7, 45, 0, 0, time.Local)

	for days := 1; days <= 10; days++ {
		trip := tripStarting(days, now)
		c := TripCountdown(trip, now)
		if c == nil {
			t.Fatalf("expected countdown for trip %d days out", days)
		}
		start, _ := trip.Start()
		total := int(start.Sub(now).Minutes())
		if got := c.Days*24*60 + c.Hours*60 + c.Minutes; got != total {
			t.Errorf("day %d: breakdown sums to %d minutes, want %d", days, got, total)
		}
	}
}
