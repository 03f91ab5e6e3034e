package beat

import (
	"sync"
	"testing"
	"time"
)

// TestCellConcurrentHandoff runs the audio-side writer against a control-thread reader
// Run with -race
func TestCellConcurrentHandoff(t *testing.T) {
	var cell Cell
	const beats = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < beats; i++ {
			cell.Advance()
		}
	}()

	tr := NewTracker(4, time.Unix(0, 0))
	var last int64
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			tr.Observe(cell.CurrentBeat(), time.Now())
			if got := tr.Boundary().Index; got != beats {
				t.Errorf("Expected final beat %d, got %d", beats, got)
			}
			return
		default:
			v := cell.CurrentBeat()
			if v < last {
				t.Fatalf("Counter went backwards: %d after %d", v, last)
			}
			last = v
			tr.Observe(v, time.Now())
		}
	}
}

func TestCellAdvanceAllocations(t *testing.T) {
	var cell Cell
	allocs := testing.AllocsPerRun(1000, func() {
		cell.Advance()
	})
	if allocs != 0 {
		t.Errorf("Expected zero allocations on the writer side, got %v", allocs)
	}
}

func TestCellStore(t *testing.T) {
	var cell Cell
	if cell.CurrentBeat() != 0 {
		t.Errorf("Expected zero value to report beat 0, got %d", cell.CurrentBeat())
	}
	cell.Store(42)
	if cell.CurrentBeat() != 42 {
		t.Errorf("Expected 42, got %d", cell.CurrentBeat())
	}
	if got := cell.Advance(); got != 43 {
		t.Errorf("Expected 43 after advance, got %d", got)
	}
}
