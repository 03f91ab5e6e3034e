package input

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Source buffers translated key presses between terminal polling and the judge tick
// Thread-Safety:
//   - HandleEvent/Push: any goroutine, never blocks
//   - Drain: single consumer (control loop)
//
// Overflow: newest presses are dropped and counted
type Source struct {
	table   *KeyTable
	pending chan core.RawInput
	dropped atomic.Uint64
}

// NewSource creates a source holding up to capacity undrained presses
func NewSource(capacity int, table *KeyTable) *Source {
	if capacity <= 0 {
		capacity = parameter.InputQueueSize
	}
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Source{
		table:   table,
		pending: make(chan core.RawInput, capacity),
	}
}

// HandleEvent translates a terminal event; returns false when the user asked to quit
// Presses are stamped with the event's own time, not the time they are drained
func (s *Source) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	if s.table.IsQuit(kev.Key(), kev.Rune()) {
		return false
	}
	if k, ok := s.table.Translate(kev.Key(), kev.Rune()); ok {
		s.Push(k, kev.When())
	}
	return true
}

// Push queues one press
func (s *Source) Push(k core.Key, at time.Time) {
	select {
	case s.pending <- core.RawInput{Key: k, Timestamp: at}:
	default:
		s.dropped.Add(1)
	}
}

// Drain appends all queued presses to buf in arrival order
func (s *Source) Drain(buf []core.RawInput) []core.RawInput {
	for {
		select {
		case in := <-s.pending:
			buf = append(buf, in)
		default:
			return buf
		}
	}
}

// Dropped returns the number of presses lost to overflow
func (s *Source) Dropped() uint64 {
	return s.dropped.Load()
}
