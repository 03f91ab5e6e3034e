package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// SilentDriveInterval is the tick of the software clock used when no device is available
	SilentDriveInterval = 5 * time.Millisecond

	// SilentDriveMaxSamples bounds one catch-up step after a stall
	SilentDriveMaxSamples = AudioSampleRate / 4
)
