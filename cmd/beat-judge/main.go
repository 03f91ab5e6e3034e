package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/beat-judge/audio"
	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/config"
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/engine"
	"github.com/lixenwraith/beat-judge/event"
	"github.com/lixenwraith/beat-judge/input"
	"github.com/lixenwraith/beat-judge/parameter"
	"github.com/lixenwraith/beat-judge/record"
	"github.com/lixenwraith/beat-judge/status"
)

const appName = "beat-judge"

type options struct {
	configPath  string
	bpm         int
	debug       bool
	metricsAddr string
	mute        bool
	trace       string
	noRecord    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Rhythm input judge with a terminal metronome",
		Long: `beat-judge plays a metronome and judges drum key presses against it.
Four accepted presses form a sequence; known sequences resolve into actions
and chain into a combo streak that raises the damage multiplier.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (defaults when empty)")
	f.IntVar(&opts.bpm, "bpm", 0, "Override metronome tempo")
	f.BoolVar(&opts.debug, "debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9105")
	f.BoolVar(&opts.mute, "mute", false, "Drive the beat from a silent software clock")
	f.StringVar(&opts.trace, "trace", "", "Comma separated event types to log at debug level")
	f.BoolVar(&opts.noRecord, "no-record", false, "Do not load or save the best streak")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers file, environment and flags in that order
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if opts.bpm > 0 {
		cfg.Audio.BPM = opts.bpm
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	return cfg, cfg.Validate()
}

func run(opts *options) error {
	logger, logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	cell := &beat.Cell{}
	router := event.NewRouter(event.NewQueue())

	judge, err := engine.New(cfg, cell, engine.WithLogger(logger), engine.WithRouter(router))
	if err != nil {
		return err
	}
	logger = logger.With("session", judge.Session().String())

	if opts.trace != "" {
		types, bad := event.ParseTypes(opts.trace)
		if bad != "" {
			return fmt.Errorf("unknown event type %q", bad)
		}
		router.Subscribe(func(ev event.Event) {
			logger.Debug("event", "type", ev.Type.String(), "tick", ev.Tick, "payload", ev.Payload)
		}, types...)
	}

	snapshot := status.NewSnapshot()
	snapshot.Register(router)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := status.NewMetrics(reg)
	metrics.Register(router)
	if opts.metricsAddr != "" {
		srv := serveMetrics(opts.metricsAddr, reg, logger)
		defer srv.Close()
	}

	if !opts.noRecord {
		if tracker := openRecord(logger); tracker != nil {
			snapshot.SeedBest(tracker.Best())
			tracker.Register(router)
			defer func() {
				if err := tracker.Save(); err != nil {
					logger.Warn("record not saved", "error", err)
				}
			}()
		}
	}

	svc := audio.NewService(cfg.Audio, cell, logger)
	if err := svc.Start(); err != nil {
		return err
	}
	defer svc.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("crash", "panic", r)
			core.HandleCrash(r)
		}
	}()

	src := input.NewSource(parameter.InputQueueSize, input.DefaultKeyTable())
	runLoop(screen, judge, src, svc, snapshot, cfg.BarLength, logger)
	return nil
}

func openRecord(logger *slog.Logger) *record.Tracker {
	store, err := record.OpenStore(appName)
	if err != nil {
		logger.Warn("record store unavailable", "error", err)
		return nil
	}
	tracker, err := record.New(store, logger)
	if err != nil {
		logger.Warn("previous record discarded", "error", err)
	}
	return tracker
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return srv
}

// runLoop runs the control thread until the user quits
func runLoop(screen tcell.Screen, judge *engine.Judge, src *input.Source, svc *audio.Service, snap *status.Snapshot, barLength int, logger *slog.Logger) {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	buf := make([]core.RawInput, 0, parameter.InputQueueSize)
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !src.HandleEvent(ev) {
				logger.Info("quit requested")
				return
			}

		case <-ticker.C:
			buf = src.Drain(buf[:0])
			judge.Tick(buf...)

			seq, n := judge.Buffered()
			drawHUD(screen, hudState{
				View:      snap.Read(),
				BarLength: barLength,
				Buffered:  seq,
				Filled:    n,
				Mode:      svc.Mode(),
				BPM:       svc.Metronome().BPM(),
				Dropped:   src.Dropped(),
			})
		}
	}
}
