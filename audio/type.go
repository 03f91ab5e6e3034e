package audio

import "errors"

// Sentinel errors
var (
	ErrAlreadyRunning = errors.New("audio service already running")
)

// Mode reports how the beat clock is being driven
type Mode uint8

const (
	ModeStopped Mode = iota
	ModeSpeaker      // Audio callback advances the beat
	ModeSilent       // Software clock advances the beat, no output
)

func (m Mode) String() string {
	switch m {
	case ModeSpeaker:
		return "speaker"
	case ModeSilent:
		return "silent"
	default:
		return "stopped"
	}
}
