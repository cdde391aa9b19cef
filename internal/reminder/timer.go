package reminder

import (
	"sync"
	"time"

	"github.com/packlight/packlight-cli/internal/logger"
	"github.com/packlight/packlight-cli/internal/notifier"
)

// TimerExternal is the production External implementation: it arms in-process
// timers that deliver through the desktop notifier when they fire. Useful for
// long-running invocations (e.g. remind watch); short-lived commands simply
// tear it down with the rest of the process.
type TimerExternal struct {
	mu       sync.Mutex
	notifier *notifier.Notifier
	next     Handle
	timers   map[Handle]*time.Timer
}

func NewTimerExternal(n *notifier.Notifier) *TimerExternal {
	return &TimerExternal{
		notifier: n,
		timers:   make(map[Handle]*time.Timer),
	}
}

func (t *TimerExternal) Schedule(fireAt time.Time, title, body string) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	t.timers[h] = time.AfterFunc(time.Until(fireAt), func() {
		if err := t.notifier.Notify(title, body); err != nil {
			logger.Warn("Failed to deliver notification", "title", title, "error", err)
		}
		t.mu.Lock()
		delete(t.timers, h)
		t.mu.Unlock()
	})
	return h, nil
}

func (t *TimerExternal) Cancel(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[h]; ok {
		timer.Stop()
		delete(t.timers, h)
	}
}
