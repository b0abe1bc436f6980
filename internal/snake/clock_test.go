package snake

import (
	"sync"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// instantClock fires every timer immediately.
type instantClock struct {
	now time.Time
}

func (c instantClock) Now() time.Time {
	return c.now
}

func (c instantClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now.Add(d)
	return ch
}

// manualClock hands out one shared timer channel; every timer fires when the
// test sends on fire. Requested durations are recorded.
type manualClock struct {
	now  time.Time
	fire chan time.Time

	mu        sync.Mutex
	durations []time.Duration
}

func newManualClock() *manualClock {
	return &manualClock{now: epoch, fire: make(chan time.Time)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.durations = append(c.durations, d)
	c.mu.Unlock()
	return c.fire
}

func (c *manualClock) requested() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.durations...)
}

// seqRand replays a fixed sequence of draws, clamped into range.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return min(max(v, 0), n-1)
}
