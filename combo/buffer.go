package combo

import (
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// BufferState is the result of appending a key
type BufferState uint8

const (
	Collecting BufferState = iota
	Full
)

func (s BufferState) String() string {
	if s == Full {
		return "full"
	}
	return "collecting"
}

// Buffer holds up to SequenceLength accepted keys in arrival order
// It does not check key identity; grammar is enforced by the Resolver
type Buffer struct {
	keys [parameter.SequenceLength]core.Key
	n    int
}

// Accept appends a key and reports whether the buffer is now full
// A full buffer must be consumed and cleared before the next Accept; extra keys are dropped
func (b *Buffer) Accept(k core.Key) BufferState {
	if b.n < len(b.keys) {
		b.keys[b.n] = k
		b.n++
	}
	if b.n == len(b.keys) {
		return Full
	}
	return Collecting
}

// Clear empties the buffer; idempotent
func (b *Buffer) Clear() {
	b.keys = [parameter.SequenceLength]core.Key{}
	b.n = 0
}

// Len returns the number of buffered keys
func (b *Buffer) Len() int {
	return b.n
}

// Keys returns the buffered keys; unfilled slots are KeyNone
func (b *Buffer) Keys() Sequence {
	return Sequence(b.keys)
}
