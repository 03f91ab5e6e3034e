package engine

import (
	"testing"
	"time"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	next := start.Add(24 * time.Hour)
	mock.SetTime(next)
	if !mock.Now().Equal(next) {
		t.Errorf("Expected %v after SetTime, got %v", next, mock.Now())
	}

	mock.Advance(30 * time.Millisecond)
	mock.Advance(20 * time.Millisecond)
	if want := next.Add(50 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, mock.Now())
	}
}
