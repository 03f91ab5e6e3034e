package combo

import (
	"testing"

	"github.com/lixenwraith/beat-judge/core"
)

func TestBufferFillsAtFour(t *testing.T) {
	var b Buffer
	keys := []core.Key{core.K1, core.K2, core.K3, core.KeyTerminator}

	for i, k := range keys {
		state := b.Accept(k)
		wantFull := i == len(keys)-1
		if (state == Full) != wantFull {
			t.Errorf("Key %d: expected full=%v, got %v", i, wantFull, state)
		}
		if b.Len() != i+1 {
			t.Errorf("Key %d: expected len %d, got %d", i, i+1, b.Len())
		}
	}

	if got := b.Keys(); got != Seq(core.K1, core.K2, core.K3, core.KeyTerminator) {
		t.Errorf("Expected keys in arrival order, got %v", got)
	}
}

func TestBufferNeverExceedsCapacity(t *testing.T) {
	var b Buffer
	for i := 0; i < 10; i++ {
		b.Accept(core.K1)
		if b.Len() > 4 {
			t.Fatalf("Buffer grew to %d", b.Len())
		}
	}
}

func TestBufferClearIdempotent(t *testing.T) {
	var b Buffer
	b.Clear()
	if b.Len() != 0 || b.Keys() != (Sequence{}) {
		t.Error("Expected empty buffer after clearing empty buffer")
	}

	b.Accept(core.K2)
	b.Clear()
	b.Clear()
	if b.Len() != 0 || b.Keys() != (Sequence{}) {
		t.Errorf("Expected empty buffer, got len=%d keys=%v", b.Len(), b.Keys())
	}
}
