package beat

import (
	"time"

	"github.com/lixenwraith/beat-judge/parameter"
)

// Boundary is an immutable snapshot of the most recent beat transition
type Boundary struct {
	Index     int64     // Raw beat counter, never resets
	Timestamp time.Time // Control-thread time the transition was observed
}

// InBar returns the 0-based beat position inside the bar
func (b Boundary) InBar(barLength int) int {
	return wrap(b.Index, barLength)
}

// Tick reports a detected beat transition
type Tick struct {
	Boundary Boundary
	InBar    int
}

// Tracker detects beat counter transitions and owns the per-beat judge latch
// Not thread-safe: owned by the control thread
type Tracker struct {
	barLength int
	last      int64
	boundary  Boundary
	latched   bool
}

// NewTracker creates a tracker whose first boundary is beat 0 at start
func NewTracker(barLength int, start time.Time) *Tracker {
	if barLength <= 0 {
		barLength = parameter.BarLength
	}
	return &Tracker{
		barLength: barLength,
		boundary:  Boundary{Index: 0, Timestamp: start},
	}
}

// Observe compares the polled counter with the last seen value
// On change records a new boundary at now, reopens the latch and returns the tick
func (t *Tracker) Observe(counter int64, now time.Time) (Tick, bool) {
	if counter == t.last {
		return Tick{}, false
	}
	t.last = counter
	t.boundary = Boundary{Index: counter, Timestamp: now}
	t.latched = false
	return Tick{Boundary: t.boundary, InBar: t.boundary.InBar(t.barLength)}, true
}

// Boundary returns the most recent beat boundary
func (t *Tracker) Boundary() Boundary {
	return t.boundary
}

// BarLength returns the configured beats per bar
func (t *Tracker) BarLength() int {
	return t.barLength
}

// TryLatch closes the latch for the current beat
// Returns false if an input was already judged since the last boundary
func (t *Tracker) TryLatch() bool {
	if t.latched {
		return false
	}
	t.latched = true
	return true
}

// Latched reports whether the current beat has already been judged
func (t *Tracker) Latched() bool {
	return t.latched
}

func wrap(i int64, n int) int {
	m := int(i % int64(n))
	if m < 0 {
		m += n
	}
	return m
}
