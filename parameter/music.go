package parameter

import "time"

// Tempo
const (
	DefaultBPM = 120
	MinBPM     = 40
	MaxBPM     = 240
)

// Metronome click
const (
	ClickDuration     = 30 * time.Millisecond
	ClickFrequency    = 880.0  // Hz, regular beat
	AccentFrequency   = 1320.0 // Hz, bar downbeat
	DefaultClickLevel = 0.5
)

// SamplesPerBeat returns the beat period in samples for the given rate
func SamplesPerBeat(sampleRate, bpm int) int {
	return sampleRate * 60 / bpm
}
