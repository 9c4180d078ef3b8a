package worker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// NotificationExpirer removes notifications after a fixed TTL. Each id owns
// one timer; cancelling or rescheduling an id stops its previous timer, so a
// notification is expired at most once per Schedule.
type NotificationExpirer struct {
	clock  clock.Clock
	ttl    time.Duration
	expire func(id string)
	log    *slog.Logger

	mu      sync.Mutex
	timers  map[string]*clock.Timer
	stopped bool
}

func NewNotificationExpirer(clk clock.Clock, ttl time.Duration, expire func(id string), log *slog.Logger) *NotificationExpirer {
	return &NotificationExpirer{
		clock:  clk,
		ttl:    ttl,
		expire: expire,
		log:    log,
		timers: make(map[string]*clock.Timer),
	}
}

// Schedule arms the expiry timer for id. It returns false once the expirer
// has been stopped.
func (e *NotificationExpirer) Schedule(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return false
	}
	if prev, ok := e.timers[id]; ok {
		prev.Stop()
	}

	var t *clock.Timer
	t = e.clock.AfterFunc(e.ttl, func() {
		e.mu.Lock()
		current, ok := e.timers[id]
		if !ok || current != t {
			e.mu.Unlock()
			return
		}
		delete(e.timers, id)
		e.mu.Unlock()

		e.log.Debug("notification expired", "notification_id", id)
		e.expire(id)
	})
	e.timers[id] = t
	return true
}

// Cancel stops the timer for id. It reports whether a timer was pending.
func (e *NotificationExpirer) Cancel(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(e.timers, id)
	return true
}

func (e *NotificationExpirer) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.timers)
}

// Stop cancels every pending timer and rejects further scheduling.
func (e *NotificationExpirer) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, t := range e.timers {
		t.Stop()
		delete(e.timers, id)
	}
	e.stopped = true
	e.log.Info("notification expirer stopped")
}
