package event

import (
	"sync/atomic"

	"github.com/lixenwraith/beat-judge/parameter"
)

// Event is a published judge event
type Event struct {
	Type    EventType
	Payload any
	Tick    int64 // Judge tick the event was published on
}

// Queue is a lock-free MPSC ring buffer for judge events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (control loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using CAS on the tail, then publishes the slot
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		next := tail + 1

		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		q.published[idx].Store(true) // MUST be after write

		// Drop the oldest unread event on overflow
		head := q.head.Load()
		if next-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// Consume returns pending events in FIFO order and advances head
// Stops early at a slot whose writer has not finished
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()

		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > parameter.EventQueueSize {
			avail = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		result := make([]Event, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(result))) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
