package clock

import (
	"sync"
	"time"
)

// Clock supplies monotonic time to the simulation. Frame deltas, attack
// cooldowns and reload duration are all measured against it.
type Clock interface {
	Now() time.Time
}

// Monotonic reads the system clock; time.Now carries a monotonic reading.
type Monotonic struct{}

func (Monotonic) Now() time.Time { return time.Now() }

// Manual is a controllable clock for tests and replays.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameTimer derives the per-tick delta from successive clock readings.
// Deltas are clamped to [0, max] so a stall (suspended terminal, debugger)
// cannot tunnel the integration. Reset forgets the previous reading; the
// first frame after it has a zero delta.
type FrameTimer struct {
	max  time.Duration
	last time.Time
}

func NewFrameTimer(max time.Duration) *FrameTimer {
	return &FrameTimer{max: max}
}

// Next records now and returns the clamped delta since the previous call.
func (f *FrameTimer) Next(now time.Time) time.Duration {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		return 0
	}
	if f.max > 0 && dt > f.max {
		return f.max
	}
	return dt
}

func (f *FrameTimer) Reset() { f.last = time.Time{} }
