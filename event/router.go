package event

import "sync"

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during DispatchAll
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// SubscriptionID identifies one subscription for Unsubscribe
type SubscriptionID uint64

type subscription struct {
	id SubscriptionID
	fn func(Event)
}

// Router fans events out to subscribers
//
// Architecture:
//   - Single-threaded dispatch from the control loop
//   - Multiple subscribers per event type, invoked in subscription order
//   - Subscriber lists are copy-on-write: a handler may unsubscribe itself
//     or others mid-dispatch without affecting the event in flight
type Router struct {
	mu    sync.Mutex
	subs  map[EventType][]subscription
	next  SubscriptionID
	queue *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		subs:  make(map[EventType][]subscription),
		queue: queue,
	}
}

// Queue returns the queue the router drains
func (r *Router) Queue() *Queue {
	return r.queue
}

// Subscribe registers fn for the given types and returns its handle
func (r *Router) Subscribe(fn func(Event), types ...EventType) SubscriptionID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	id := r.next
	for _, t := range types {
		old := r.subs[t]
		list := make([]subscription, len(old), len(old)+1)
		copy(list, old)
		r.subs[t] = append(list, subscription{id: id, fn: fn})
	}
	return id
}

// Register subscribes a handler for its declared event types
func (r *Router) Register(h Handler) SubscriptionID {
	return r.Subscribe(h.HandleEvent, h.EventTypes()...)
}

// Unsubscribe removes every registration made under id
// Returns false if id was unknown or already removed
func (r *Router) Unsubscribe(id SubscriptionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for t, old := range r.subs {
		list := make([]subscription, 0, len(old))
		for _, s := range old {
			if s.id == id {
				found = true
				continue
			}
			list = append(list, s)
		}
		if len(list) == 0 {
			delete(r.subs, t)
		} else if len(list) != len(old) {
			r.subs[t] = list
		}
	}
	return found
}

// Publish queues an event for the next DispatchAll
func (r *Router) Publish(ev Event) {
	r.queue.Push(ev)
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		r.mu.Lock()
		list := r.subs[ev.Type]
		r.mu.Unlock()

		for _, s := range list {
			s.fn(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of subscribers for the given type
func (r *Router) HandlerCount(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs[t])
}
