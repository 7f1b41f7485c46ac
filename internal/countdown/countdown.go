// Package countdown provides a cancellable countdown bound to a reflection
// session's lifetime. Remaining time is recomputed from the wall clock on
// every tick, so a paused host resumes at the right count instead of
// replaying missed seconds.
package countdown

import (
	"sync"
	"time"
)

// Timer counts down a fixed number of units and then fires onDone once.
// Stop releases the timer; after Stop no callback fires.
type Timer struct {
	unit     time.Duration
	deadline time.Time
	now      func() time.Time

	onTick func(remaining int)
	onDone func()

	stopOnce sync.Once
	done     chan struct{}
}

// Start launches a countdown of `seconds` units of length `unit` (one second
// in production; tests compress it). onTick receives the remaining whole
// units after each tick; onDone fires exactly once when the count reaches
// zero. Callbacks run on the timer goroutine and are strictly serialized.
func Start(seconds int, unit time.Duration, now func() time.Time, onTick func(remaining int), onDone func()) *Timer {
	if unit <= 0 {
		unit = time.Second
	}
	if now == nil {
		now = time.Now
	}
	t := &Timer{
		unit:     unit,
		deadline: now().Add(time.Duration(seconds) * unit),
		now:      now,
		onTick:   onTick,
		onDone:   onDone,
		done:     make(chan struct{}),
	}
	go t.run()
	return t
}

// Stop cancels the countdown. Idempotent and safe to call from a callback's
// critical section: it only signals, it does not wait for the goroutine.
func (t *Timer) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
}

// Remaining returns the whole units left before the deadline, never negative.
func (t *Timer) Remaining() int {
	left := t.deadline.Sub(t.now())
	if left <= 0 {
		return 0
	}
	// Round up so a freshly started N-unit countdown reports N.
	return int((left + t.unit - 1) / t.unit)
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.unit)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			remaining := t.Remaining()
			// A Stop racing the tick wins: no callback after cancellation.
			select {
			case <-t.done:
				return
			default:
			}
			if remaining <= 0 {
				if t.onDone != nil {
					t.onDone()
				}
				t.Stop()
				return
			}
			if t.onTick != nil {
				t.onTick(remaining)
			}
		}
	}
}
