package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/beat-judge/parameter"
)

// TestQueueBasic tests push and consume ordering
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	q.Push(Event{Type: EventBeatTick, Payload: "a", Tick: 1})
	q.Push(Event{Type: EventHitJudged, Payload: "b", Tick: 1})
	q.Push(Event{Type: EventComboFailed, Payload: "c", Tick: 2})

	if q.Len() != 3 {
		t.Errorf("Expected len 3, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	want := []EventType{EventBeatTick, EventHitJudged, EventComboFailed}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], ev.Type)
		}
	}

	if again := q.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

// TestQueueOverflow tests that the oldest events are dropped
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventBeatTick, Tick: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", events[0].Tick)
	}
	if events[len(events)-1].Tick != int64(total-1) {
		t.Errorf("Expected newest tick %d, got %d", total-1, events[len(events)-1].Tick)
	}
}

// TestQueueConcurrentPush tests multiple producers
func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	producers := 8
	perProducer := 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(Event{Type: EventHitJudged, Payload: id*100 + j})
			}
		}(p)
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Fatalf("Expected %d events, got %d", producers*perProducer, len(events))
	}

	seen := make(map[int]bool)
	for _, ev := range events {
		v := ev.Payload.(int)
		if seen[v] {
			t.Errorf("Duplicate payload %d", v)
		}
		seen[v] = true
	}
}
