package beat

import "sync/atomic"

// Source reports the monotonically increasing beat counter of an external clock
// Implementations must be safe to read from the control thread while another
// context advances them
type Source interface {
	CurrentBeat() int64
}

// Cell is the single-integer handoff between the audio context and the control thread
// Thread-Safety:
//   - Advance/Store: single writer (audio callback), lock-free, no allocation
//   - CurrentBeat: any reader
//
// The zero value is ready to use and reports beat 0
type Cell struct {
	beat atomic.Int64
}

// Advance increments the counter and returns the new beat
func (c *Cell) Advance() int64 {
	return c.beat.Add(1)
}

// Store overwrites the counter, for sources that report absolute beat numbers
func (c *Cell) Store(beat int64) {
	c.beat.Store(beat)
}

// CurrentBeat implements Source
func (c *Cell) CurrentBeat() int64 {
	return c.beat.Load()
}
