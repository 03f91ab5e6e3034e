package parameter

import "time"

// Event Queue
const (
	EventQueueSize  = 256 // Must be power of 2
	EventBufferMask = EventQueueSize - 1
)

// Frame loop
const (
	FrameUpdateInterval = 8 * time.Millisecond // Control thread tick, ~120 Hz
	InputQueueSize      = 64
)
