package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Metronome is a click track whose sample clock is the beat source
// Thread-Safety:
//   - Stream/Advance: audio context only, lock-free and allocation-free
//   - SetBPM/SetVolume/BPM: any goroutine, applied from the next sample
//
// Each beat boundary is published through the cell with a single atomic add
type Metronome struct {
	rate beep.SampleRate
	cell *beat.Cell

	bpm            atomic.Int32
	samplesPerBeat atomic.Int64
	volume         atomic.Int64 // Q16.16 fixed point, 0.0-1.0

	// Audio context state
	pos       int64 // Sample position within current beat
	accent    bool  // Current beat is a bar downbeat
	clickLen  int64
	barLength int64
}

// NewMetronome creates a metronome at bpm writing beats into cell
func NewMetronome(rate beep.SampleRate, bpm int, cell *beat.Cell) *Metronome {
	m := &Metronome{
		rate:      rate,
		cell:      cell,
		accent:    true, // Beat 0 is a downbeat
		clickLen:  int64(rate.N(parameter.ClickDuration)),
		barLength: parameter.BarLength,
	}
	m.SetBPM(bpm)
	m.SetVolume(parameter.DefaultClickLevel)
	return m
}

// SetBPM updates tempo, clamped to the supported range
func (m *Metronome) SetBPM(bpm int) {
	if bpm < parameter.MinBPM {
		bpm = parameter.MinBPM
	} else if bpm > parameter.MaxBPM {
		bpm = parameter.MaxBPM
	}
	m.bpm.Store(int32(bpm))
	m.samplesPerBeat.Store(int64(parameter.SamplesPerBeat(int(m.rate), bpm)))
}

// BPM returns the current tempo
func (m *Metronome) BPM() int {
	return int(m.bpm.Load())
}

// SetVolume sets click level (0.0-1.0)
func (m *Metronome) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	m.volume.Store(int64(vol * (1 << 16)))
}

// Stream implements beep.Streamer; it never drains
func (m *Metronome) Stream(samples [][2]float64) (n int, ok bool) {
	m.run(samples, len(samples))
	return len(samples), true
}

// Err implements beep.Streamer
func (m *Metronome) Err() error { return nil }

// Advance moves the clock by n samples without producing audio
// Used by the silent driver when no output device is available
func (m *Metronome) Advance(n int) {
	m.run(nil, n)
}

func (m *Metronome) run(out [][2]float64, n int) {
	perBeat := m.samplesPerBeat.Load()
	vol := float64(m.volume.Load()) / float64(1<<16)
	rate := float64(m.rate)

	for i := 0; i < n; i++ {
		if m.pos >= perBeat {
			m.pos = 0
			m.accent = m.cell.Advance()%m.barLength == 0
		}

		if out != nil {
			var val float64
			if m.pos < m.clickLen {
				freq := parameter.ClickFrequency
				if m.accent {
					freq = parameter.AccentFrequency
				}
				decay := 1 - float64(m.pos)/float64(m.clickLen)
				val = math.Sin(2*math.Pi*freq*float64(m.pos)/rate) * decay * vol
			}
			out[i][0] = val
			out[i][1] = val
		}
		m.pos++
	}
}
