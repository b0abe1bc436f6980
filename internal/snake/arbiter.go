package snake

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// turnLatch applies the turn rules to a stream of keys within one window:
// the first key that names a non-reversing heading wins, and everything after
// it is ignored.
type turnLatch struct {
	current core.Heading // heading the snake moved with this tick
	next    core.Heading
	latched bool
}

func newTurnLatch(current core.Heading) turnLatch {
	return turnLatch{current: current, next: current}
}

// Offer feeds one key to the latch and reports whether it was accepted.
func (l *turnLatch) Offer(k core.Key) bool {
	if l.latched {
		return false
	}
	h, ok := k.Heading()
	if !ok || h == l.current.Opposite() {
		return false
	}
	l.next = h
	l.latched = true
	return true
}

// Arbiter collects keys for one tick window and resolves the next heading.
type Arbiter struct {
	clock Clock
}

// NewArbiter returns an arbiter timed by clock.
func NewArbiter(clock Clock) *Arbiter {
	return &Arbiter{clock: clock}
}

// Resolve reads keys until deadline and returns the heading for the next
// tick. Keys arriving after a change was accepted are drained and dropped,
// so they do not leak into the following window. A nil or closed channel
// just waits out the window.
func (a *Arbiter) Resolve(ctx context.Context, keys <-chan core.Key, current core.Heading, deadline time.Time) core.Heading {
	latch := newTurnLatch(current)
	timer := a.clock.After(deadline.Sub(a.clock.Now()))

	for {
		select {
		case <-ctx.Done():
			return latch.next
		case <-timer:
			return latch.next
		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			latch.Offer(k)
		}
	}
}
