package beat

import (
	"testing"
	"time"
)

func TestTrackerInitialBoundary(t *testing.T) {
	start := time.Unix(100, 0)
	tr := NewTracker(4, start)

	b := tr.Boundary()
	if b.Index != 0 || !b.Timestamp.Equal(start) {
		t.Errorf("Expected initial boundary {0, %v}, got %+v", start, b)
	}
	if tr.Latched() {
		t.Error("Expected latch open before any input")
	}
}

func TestTrackerObserveTransition(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTracker(4, start)

	if _, ok := tr.Observe(0, start.Add(time.Millisecond)); ok {
		t.Error("Expected no tick when counter unchanged")
	}

	now := start.Add(500 * time.Millisecond)
	tick, ok := tr.Observe(1, now)
	if !ok {
		t.Fatal("Expected tick on counter change")
	}
	if tick.InBar != 1 {
		t.Errorf("Expected bar index 1, got %d", tick.InBar)
	}
	if !tr.Boundary().Timestamp.Equal(now) {
		t.Errorf("Expected boundary timestamp %v, got %v", now, tr.Boundary().Timestamp)
	}

	if _, ok := tr.Observe(1, now.Add(time.Millisecond)); ok {
		t.Error("Expected no second tick for the same beat")
	}
}

func TestTrackerBarIndexWraps(t *testing.T) {
	tr := NewTracker(4, time.Unix(0, 0))
	want := []int{1, 2, 3, 0, 1, 2, 3, 0}
	for i, w := range want {
		tick, ok := tr.Observe(int64(i+1), time.Unix(int64(i+1), 0))
		if !ok {
			t.Fatalf("Expected tick for beat %d", i+1)
		}
		if tick.InBar != w {
			t.Errorf("Beat %d: expected bar index %d, got %d", i+1, w, tick.InBar)
		}
	}
}

func TestTrackerSkippedBeats(t *testing.T) {
	tr := NewTracker(4, time.Unix(0, 0))
	// Control thread stalled across several audio beats: only the latest is observed
	tick, ok := tr.Observe(7, time.Unix(3, 0))
	if !ok {
		t.Fatal("Expected tick")
	}
	if tick.Boundary.Index != 7 || tick.InBar != 3 {
		t.Errorf("Expected beat 7 at bar index 3, got %d at %d", tick.Boundary.Index, tick.InBar)
	}
}

func TestTrackerLatch(t *testing.T) {
	tr := NewTracker(4, time.Unix(0, 0))

	if !tr.TryLatch() {
		t.Fatal("Expected first latch to succeed")
	}
	for i := 0; i < 5; i++ {
		if tr.TryLatch() {
			t.Fatal("Expected latch to stay closed within the same beat")
		}
	}

	tr.Observe(1, time.Unix(1, 0))
	if tr.Latched() {
		t.Error("Expected beat transition to reopen latch")
	}
	if !tr.TryLatch() {
		t.Error("Expected latch to succeed after transition")
	}
}

func TestTrackerDefaultBarLength(t *testing.T) {
	tr := NewTracker(0, time.Unix(0, 0))
	if tr.BarLength() != 4 {
		t.Errorf("Expected default bar length 4, got %d", tr.BarLength())
	}
}
