// Package reminder translates trip state into scheduling requests for the
// external notification mechanism. It never fires notifications itself; it
// only computes when and what, and tracks the issued handles so stale
// schedules can be cancelled.
package reminder

import (
	"fmt"
	"time"

	"github.com/packlight/packlight-cli/internal/constants"
	"github.com/packlight/packlight-cli/internal/logger"
	"github.com/packlight/packlight-cli/internal/models"
)

// Handle identifies a pending schedule request issued to the external
// scheduler.
type Handle int64

// External is the notification scheduling mechanism. Fire times in the past
// must never be passed to Schedule; the Scheduler filters to future-only.
type External interface {
	Schedule(fireAt time.Time, title, body string) (Handle, error)
	Cancel(Handle)
}

// Scheduler recomputes and reissues schedule requests whenever the trip
// collection changes, cancelling everything it issued previously.
type Scheduler struct {
	external External
	handles  []Handle
	now      func() time.Time
}

func New(external External) *Scheduler {
	return &Scheduler{
		external: external,
		now:      time.Now,
	}
}

// Refresh cancels all pending schedule requests and issues a fresh set from
// the given trip collection: a "starting tomorrow" notice one day before each
// future trip, and a packing reminder for each unpacked item with a future
// reminder date.
func (s *Scheduler) Refresh(trips []models.Trip) {
	s.cancelAll()

	now := s.now()
	for _, trip := range trips {
		start, err := trip.Start()
		if err != nil {
			logger.Warn("Skipping trip with unparseable start date", "trip", trip.ID)
			continue
		}

		dayBefore := start.Add(-constants.TripReminderLead)
		if dayBefore.After(now) {
			s.schedule(dayBefore, constants.TripStartTitle,
				fmt.Sprintf(constants.TripStartBody, trip.Destination))
		}

		for _, item := range trip.Items {
			if item.Packed {
				continue
			}
			fireAt, ok := item.Reminder()
			if !ok || !fireAt.After(now) {
				continue
			}
			s.schedule(fireAt, constants.ItemTitle,
				fmt.Sprintf(constants.ItemBody, item.Name, trip.Destination))
		}
	}

	logger.Debug("Refreshed reminder schedules", "pending", len(s.handles))
}

// Close cancels all pending schedule requests. Called on process teardown so
// stale notifications never fire for deleted trips or items.
func (s *Scheduler) Close() {
	s.cancelAll()
}

// Pending returns the number of schedule requests currently tracked.
func (s *Scheduler) Pending() int {
	return len(s.handles)
}

func (s *Scheduler) schedule(fireAt time.Time, title, body string) {
	h, err := s.external.Schedule(fireAt, title, body)
	if err != nil {
		logger.Warn("Failed to schedule notification", "title", title, "error", err)
		return
	}
	s.handles = append(s.handles, h)
}

func (s *Scheduler) cancelAll() {
	for _, h := range s.handles {
		s.external.Cancel(h)
	}
	s.handles = nil
}
