package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/parameter"
)

const testRate = beep.SampleRate(44100)

// TestMetronomeAdvancesBeat verifies the cell moves exactly at beat boundaries
func TestMetronomeAdvancesBeat(t *testing.T) {
	cell := &beat.Cell{}
	m := NewMetronome(testRate, 120, cell)
	perBeat := parameter.SamplesPerBeat(int(testRate), 120) // 22050

	buf := make([][2]float64, perBeat)
	n, ok := m.Stream(buf)
	if !ok || n != perBeat {
		t.Fatalf("Expected %d samples ok, got %d %v", perBeat, n, ok)
	}
	if cell.CurrentBeat() != 0 {
		t.Errorf("Expected beat 0 after one full period, got %d", cell.CurrentBeat())
	}

	m.Stream(buf[:1])
	if cell.CurrentBeat() != 1 {
		t.Errorf("Expected beat 1 on the first sample of the next period, got %d", cell.CurrentBeat())
	}

	// Odd buffer sizes must not drift
	small := make([][2]float64, 997)
	total := perBeat + 1
	for total < 3*perBeat+1 {
		k := len(small)
		if total+k > 3*perBeat+1 {
			k = 3*perBeat + 1 - total
		}
		m.Stream(small[:k])
		total += k
	}
	if cell.CurrentBeat() != 3 {
		t.Errorf("Expected beat 3, got %d", cell.CurrentBeat())
	}
}

// TestMetronomeClickShape verifies click placement and accent
func TestMetronomeClickShape(t *testing.T) {
	cell := &beat.Cell{}
	m := NewMetronome(testRate, 240, cell)
	m.SetVolume(1)
	perBeat := parameter.SamplesPerBeat(int(testRate), 240)
	clickLen := testRate.N(parameter.ClickDuration)

	buf := make([][2]float64, perBeat)
	m.Stream(buf)

	peak := 0.0
	for i := 0; i < clickLen; i++ {
		if math.Abs(buf[i][0]) > peak {
			peak = math.Abs(buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("Sample %d: channels differ", i)
		}
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("Sample %d out of range: %f", i, buf[i][0])
		}
	}
	if peak < 0.5 {
		t.Errorf("Expected audible click, peak %f", peak)
	}
	for i := clickLen; i < perBeat; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence after click at sample %d, got %f", i, buf[i][0])
		}
	}

	// Count zero crossings to tell the downbeat from a regular beat
	crossings := func(s [][2]float64) int {
		c := 0
		for i := 1; i < clickLen; i++ {
			if (s[i-1][0] < 0) != (s[i][0] < 0) {
				c++
			}
		}
		return c
	}
	accented := crossings(buf)
	m.Stream(buf)
	regular := crossings(buf)
	if accented <= regular {
		t.Errorf("Expected downbeat click higher pitched: %d vs %d crossings", accented, regular)
	}
}

// TestMetronomeVolume verifies zero volume keeps the clock running silently
func TestMetronomeVolume(t *testing.T) {
	cell := &beat.Cell{}
	m := NewMetronome(testRate, 240, cell)
	m.SetVolume(-3)

	buf := make([][2]float64, parameter.SamplesPerBeat(int(testRate), 240)+1)
	m.Stream(buf)
	for i := range buf {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence at sample %d, got %f", i, buf[i][0])
		}
	}
	if cell.CurrentBeat() != 1 {
		t.Errorf("Expected beat 1, got %d", cell.CurrentBeat())
	}
}

// TestMetronomeAdvance verifies the silent drive path matches Stream timing
func TestMetronomeAdvance(t *testing.T) {
	cell := &beat.Cell{}
	m := NewMetronome(testRate, 120, cell)
	perBeat := parameter.SamplesPerBeat(int(testRate), 120)

	m.Advance(perBeat*4 + 1)
	if cell.CurrentBeat() != 4 {
		t.Errorf("Expected beat 4, got %d", cell.CurrentBeat())
	}
}

// TestMetronomeSetBPM verifies clamping and tempo change
func TestMetronomeSetBPM(t *testing.T) {
	m := NewMetronome(testRate, 10, &beat.Cell{})
	if m.BPM() != parameter.MinBPM {
		t.Errorf("Expected clamp to %d, got %d", parameter.MinBPM, m.BPM())
	}
	m.SetBPM(1000)
	if m.BPM() != parameter.MaxBPM {
		t.Errorf("Expected clamp to %d, got %d", parameter.MaxBPM, m.BPM())
	}

	cell := &beat.Cell{}
	m = NewMetronome(testRate, 60, cell)
	m.SetBPM(240)
	m.Advance(testRate.N(time.Second) + 1)
	if cell.CurrentBeat() != 4 {
		t.Errorf("Expected 4 beats in one second at 240 BPM, got %d", cell.CurrentBeat())
	}
}

// TestMetronomeStreamNoAlloc verifies the audio path never allocates
func TestMetronomeStreamNoAlloc(t *testing.T) {
	m := NewMetronome(testRate, 240, &beat.Cell{})
	buf := make([][2]float64, 512)

	allocs := testing.AllocsPerRun(200, func() {
		m.Stream(buf)
	})
	if allocs != 0 {
		t.Errorf("Expected 0 allocations per Stream, got %v", allocs)
	}
}
