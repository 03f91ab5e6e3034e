package event

import "testing"

type recorder struct {
	types []EventType
	got   []Event
}

func (r *recorder) HandleEvent(ev Event)    { r.got = append(r.got, ev) }
func (r *recorder) EventTypes() []EventType { return r.types }

func TestRouterDispatchOrder(t *testing.T) {
	r := NewRouter(NewQueue())

	var order []string
	r.Subscribe(func(Event) { order = append(order, "first") }, EventHitJudged)
	r.Subscribe(func(Event) { order = append(order, "second") }, EventHitJudged)

	r.Publish(Event{Type: EventHitJudged})
	if n := r.DispatchAll(); n != 1 {
		t.Errorf("Expected 1 event dispatched, got %d", n)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected subscription order, got %v", order)
	}
}

func TestRouterRegisterHandler(t *testing.T) {
	r := NewRouter(NewQueue())
	h := &recorder{types: []EventType{EventComboResolved, EventComboFailed}}
	r.Register(h)

	r.Publish(Event{Type: EventComboResolved, Tick: 1})
	r.Publish(Event{Type: EventBeatTick, Tick: 2})
	r.Publish(Event{Type: EventComboFailed, Tick: 3})
	r.DispatchAll()

	if len(h.got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(h.got))
	}
	if h.got[0].Tick != 1 || h.got[1].Tick != 3 {
		t.Errorf("Expected ticks 1 and 3, got %d and %d", h.got[0].Tick, h.got[1].Tick)
	}
}

func TestRouterUnsubscribe(t *testing.T) {
	r := NewRouter(NewQueue())

	calls := 0
	id := r.Subscribe(func(Event) { calls++ }, EventBeatTick, EventHitJudged)
	if r.HandlerCount(EventBeatTick) != 1 || r.HandlerCount(EventHitJudged) != 1 {
		t.Fatal("Expected subscription on both types")
	}

	if !r.Unsubscribe(id) {
		t.Error("Expected unsubscribe to succeed")
	}
	if r.Unsubscribe(id) {
		t.Error("Expected second unsubscribe to report unknown id")
	}
	if r.HandlerCount(EventBeatTick) != 0 || r.HandlerCount(EventHitJudged) != 0 {
		t.Error("Expected no handlers after unsubscribe")
	}

	r.Publish(Event{Type: EventBeatTick})
	r.DispatchAll()
	if calls != 0 {
		t.Errorf("Expected no calls after unsubscribe, got %d", calls)
	}
}

func TestRouterUnsubscribeDuringDispatch(t *testing.T) {
	r := NewRouter(NewQueue())

	var second SubscriptionID
	firstCalls, secondCalls := 0, 0
	r.Subscribe(func(Event) {
		firstCalls++
		r.Unsubscribe(second)
	}, EventBeatTick)
	second = r.Subscribe(func(Event) { secondCalls++ }, EventBeatTick)

	r.Publish(Event{Type: EventBeatTick})
	r.Publish(Event{Type: EventBeatTick})
	r.DispatchAll()

	if firstCalls != 2 {
		t.Errorf("Expected first handler called twice, got %d", firstCalls)
	}
	// In-flight event still reaches the snapshot taken before removal
	if secondCalls != 1 {
		t.Errorf("Expected second handler called once, got %d", secondCalls)
	}
}

func TestRouterPublishFromHandler(t *testing.T) {
	r := NewRouter(NewQueue())

	resets := 0
	r.Subscribe(func(Event) {
		r.Publish(Event{Type: EventComboMultiplierReset})
	}, EventComboFailed)
	r.Subscribe(func(Event) { resets++ }, EventComboMultiplierReset)

	r.Publish(Event{Type: EventComboFailed})
	r.DispatchAll()
	if resets != 0 {
		t.Errorf("Expected follow-up event deferred to next dispatch, got %d", resets)
	}
	r.DispatchAll()
	if resets != 1 {
		t.Errorf("Expected 1 reset, got %d", resets)
	}
}
