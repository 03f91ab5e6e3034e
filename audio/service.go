package audio

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/config"
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Service owns the metronome and whatever drives it
// Degrades to a software clock when audio is disabled or no device is available,
// so the judge keeps a beat source either way
type Service struct {
	cfg       config.AudioConfig
	rate      beep.SampleRate
	metronome *Metronome
	log       *slog.Logger

	mode    atomic.Uint32
	running atomic.Bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewService creates a stopped service writing beats into cell
func NewService(cfg config.AudioConfig, cell *beat.Cell, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rate := beep.SampleRate(parameter.AudioSampleRate)
	m := NewMetronome(rate, cfg.BPM, cell)
	m.SetVolume(cfg.Volume)

	return &Service{
		cfg:       cfg,
		rate:      rate,
		metronome: m,
		log:       logger,
	}
}

// Start opens the speaker, or falls back to silent mode
// Device failure is not an error
func (s *Service) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	s.stop = make(chan struct{})

	if !s.cfg.Enabled {
		s.startSilent("audio disabled")
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferDuration)); err != nil {
		s.log.Warn("audio device unavailable, using silent clock", "error", err)
		s.startSilent("no device")
		return nil
	}

	speaker.Play(s.metronome)
	s.mode.Store(uint32(ModeSpeaker))
	s.log.Info("metronome started", "mode", ModeSpeaker.String(), "bpm", s.metronome.BPM(), "rate", int(s.rate))
	return nil
}

func (s *Service) startSilent(reason string) {
	s.mode.Store(uint32(ModeSilent))
	s.wg.Add(1)
	core.Go(s.drive)
	s.log.Info("metronome started", "mode", ModeSilent.String(), "reason", reason, "bpm", s.metronome.BPM())
}

// drive advances the metronome from wall time
func (s *Service) drive() {
	defer s.wg.Done()

	ticker := time.NewTicker(parameter.SilentDriveInterval)
	defer ticker.Stop()

	last := time.Now()
	var carry float64
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			exact := now.Sub(last).Seconds()*float64(s.rate) + carry
			last = now

			n := int(exact)
			carry = exact - float64(n)
			if n > parameter.SilentDriveMaxSamples {
				// Stalled, skip ahead instead of bursting beats
				n = parameter.SilentDriveMaxSamples
				carry = 0
			}
			s.metronome.Advance(n)
		}
	}
}

// Stop halts output and the silent driver
func (s *Service) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	if Mode(s.mode.Load()) == ModeSpeaker {
		speaker.Clear()
	}
	close(s.stop)
	s.wg.Wait()
	s.mode.Store(uint32(ModeStopped))
}

// Silent reports whether the beat is driven without audio output
func (s *Service) Silent() bool {
	return Mode(s.mode.Load()) == ModeSilent
}

// Mode returns the current drive mode
func (s *Service) Mode() Mode {
	return Mode(s.mode.Load())
}

// Metronome returns the click track for tempo and volume control
func (s *Service) Metronome() *Metronome {
	return s.metronome
}
