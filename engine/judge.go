package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/combo"
	"github.com/lixenwraith/beat-judge/config"
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/event"
	"github.com/lixenwraith/beat-judge/judge"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Judge wires tracker, input judge and combo resolver into one per-tick step
// Thread-Safety: Tick and the accessors must be called from a single control goroutine;
// only the beat source is shared with another context
type Judge struct {
	session uuid.UUID
	log     *slog.Logger
	clock   Clock

	source   beat.Source
	tracker  *beat.Tracker
	input    *judge.InputJudge
	resolver *combo.Resolver
	table    *combo.Table
	router   *event.Router

	tick int64
}

// Option configures a Judge at construction
type Option func(*Judge)

// WithLogger sets the structured logger, nil keeps logging disabled
func WithLogger(l *slog.Logger) Option {
	return func(j *Judge) {
		if l != nil {
			j.log = l
		}
	}
}

// WithClock replaces the wall clock, used by tests and replays
func WithClock(c Clock) Option {
	return func(j *Judge) {
		if c != nil {
			j.clock = c
		}
	}
}

// WithRouter publishes into an existing router instead of a private one
func WithRouter(r *event.Router) Option {
	return func(j *Judge) {
		if r != nil {
			j.router = r
		}
	}
}

// New validates the configuration and builds a judge reading beats from src
// Configuration errors are returned here and nowhere else
func New(cfg *config.Config, src beat.Source, opts ...Option) (*Judge, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	rules, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("judge configuration: %w", err)
	}

	j := &Judge{
		session: uuid.New(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:   NewTimeProvider(),
		source:  src,
		table:   rules.Table,
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.router == nil {
		j.router = event.NewRouter(event.NewQueue())
	}
	j.log = j.log.With("session", j.session.String())

	j.tracker = beat.NewTracker(rules.BarLength, j.clock.Now())
	// Beats already elapsed at startup are not a transition
	j.tracker.Observe(src.CurrentBeat(), j.clock.Now())

	j.input, err = judge.New(rules.Thresholds, j.tracker)
	if err != nil {
		return nil, fmt.Errorf("judge configuration: %w", err)
	}
	j.resolver = combo.NewResolver(rules.Table, rules.ComboMax, rules.Step)

	for _, d := range rules.Table.Diagnostics() {
		j.log.Warn("combo definition never matches", "combo", d.ID, "reason", d.String())
	}
	j.log.Info("judge ready",
		"combos", rules.Table.Len(),
		"perfect", rules.Thresholds.Perfect,
		"regular", rules.Thresholds.Regular,
		"goofy", rules.Thresholds.Goofy,
		"combo_max", rules.ComboMax,
		"step", rules.Step,
	)

	return j, nil
}

// Tick runs one control-thread step: observe the beat, judge inputs, dispatch events
// Inputs with a zero timestamp are judged at the tick time
func (j *Judge) Tick(inputs ...core.RawInput) {
	j.tick++
	now := j.clock.Now()

	if bt, ok := j.tracker.Observe(j.source.CurrentBeat(), now); ok {
		j.publish(event.EventBeatTick, &event.BeatTickPayload{
			BeatIndex: bt.Boundary.Index,
			InBar:     bt.InBar,
			Timestamp: bt.Boundary.Timestamp,
		})
	}

	for _, in := range inputs {
		at := in.Timestamp
		if at.IsZero() {
			at = now
		}

		hit, ok := j.input.Judge(in.Key, at)
		if !ok {
			continue
		}
		j.publish(event.EventHitJudged, &event.HitJudgedPayload{
			Key:       hit.Key,
			Accuracy:  hit.Accuracy,
			InBar:     hit.InBar,
			BeatIndex: hit.BeatIndex,
			Delta:     hit.Delta,
		})

		j.apply(j.resolver.OnJudgedKey(hit.Accuracy, hit.Key))
	}

	j.router.DispatchAll()
}

// apply translates a resolver outcome into events
func (j *Judge) apply(out combo.Outcome) {
	switch out.Kind {
	case combo.OutcomeResolved:
		def := out.Definition
		j.log.Debug("combo resolved", "combo", def.ID, "action", def.Action.String(), "count", out.Count, "multiplier", out.Multiplier)

		j.publish(event.EventComboResolved, &event.ComboResolvedPayload{
			Definition: def,
			Count:      out.Count,
			Multiplier: out.Multiplier,
		})
		j.publish(event.EventComboUpdated, &event.ComboUpdatedPayload{
			Count:      out.Count,
			Multiplier: j.resolver.Progress().Multiplier(),
		})
		if def.Projectile != nil {
			j.publish(event.EventSpawnRequested, &event.SpawnRequestedPayload{
				ComboID:    def.ID,
				Projectile: combo.NewProjectile(*def.Projectile, out.Multiplier),
				Multiplier: out.Multiplier,
			})
		}

	case combo.OutcomeFailed:
		j.log.Debug("combo failed", "kind", out.Failure.Kind.String(), "reason", out.Failure.Reason)

		j.publish(event.EventComboFailed, &event.ComboFailedPayload{
			Kind:   out.Failure.Kind,
			Reason: out.Failure.Reason,
		})
		j.publish(event.EventComboMultiplierReset, &event.MultiplierResetPayload{
			Multiplier: parameter.BaseMultiplier,
		})
	}
}

func (j *Judge) publish(t event.EventType, payload any) {
	j.router.Publish(event.Event{Type: t, Payload: payload, Tick: j.tick})
}

// Router returns the router outcome events are dispatched on
func (j *Judge) Router() *event.Router {
	return j.router
}

// Progress returns the current streak
func (j *Judge) Progress() combo.Progress {
	return j.resolver.Progress()
}

// State returns the resolver state
func (j *Judge) State() combo.State {
	return j.resolver.State()
}

// Buffered returns the keys of the attempt in progress
func (j *Judge) Buffered() (combo.Sequence, int) {
	return j.resolver.Buffered()
}

// Boundary returns the last observed beat boundary
func (j *Judge) Boundary() beat.Boundary {
	return j.tracker.Boundary()
}

// Table returns the immutable combo table
func (j *Judge) Table() *combo.Table {
	return j.table
}

// Thresholds returns the tolerance windows in use
func (j *Judge) Thresholds() judge.Thresholds {
	return j.input.Thresholds()
}

// Session returns the id attached to this judge's log lines
func (j *Judge) Session() uuid.UUID {
	return j.session
}
