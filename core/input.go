package core

import "time"

// RawInput is a single key press with the monotonic time it occurred
// Consumed immediately by the input judge, never stored
type RawInput struct {
	Key       Key
	Timestamp time.Time
}
