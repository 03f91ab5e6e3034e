package combo

import (
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// State is the resolver's position in a combo attempt
type State uint8

const (
	StateIdle       State = iota // Buffer empty
	StateCollecting              // 1-3 keys buffered
	StateResolving               // Buffer full, lookup in progress
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateResolving:
		return "resolving"
	default:
		return "invalid"
	}
}

// FailureKind classifies a recovered per-input failure
type FailureKind uint8

const (
	FailTimingMiss FailureKind = iota
	FailGrammarViolation
	FailUnknownSequence
)

func (k FailureKind) String() string {
	switch k {
	case FailTimingMiss:
		return "timing_miss"
	case FailGrammarViolation:
		return "grammar_violation"
	case FailUnknownSequence:
		return "unknown_sequence"
	default:
		return "invalid"
	}
}

// Failure reasons
const (
	ReasonOutOfTime           = "out of time"
	ReasonPrematureTerminator = "premature terminator"
	ReasonWrongClosingKey     = "wrong closing key"
	ReasonInvalidKey          = "invalid key"
	ReasonUnknownSequence     = "unknown sequence"
)

// Failure describes why an attempt was abandoned
type Failure struct {
	Kind   FailureKind
	Reason string
}

// Progress is the streak bookkeeping owned by the resolver
type Progress struct {
	Count int
	Max   int
	Step  float64 // Damage gained per combo step
}

// Multiplier returns the running multiplier without any per-combo bonus
func (p Progress) Multiplier() float64 {
	return parameter.BaseMultiplier + float64(p.Count)*p.Step
}

// OutcomeKind tags the result of feeding one judged key
type OutcomeKind uint8

const (
	OutcomePending  OutcomeKind = iota // Key buffered, attempt continues
	OutcomeResolved                    // Sequence matched a definition
	OutcomeFailed                      // Attempt abandoned, streak reset
)

// Outcome is what the caller must publish after OnJudgedKey
type Outcome struct {
	Kind       OutcomeKind
	Definition *Definition // OutcomeResolved only
	Count      int         // Combo count after the step
	Multiplier float64     // Resolved: 1 + count*step + bonus; Failed: 1.0
	Failure    Failure     // OutcomeFailed only
	Buffered   int         // Keys held after the step
}

// Resolver drives the Idle -> Collecting -> Resolving -> Idle machine
// Not thread-safe: owned by the control thread together with the judge
type Resolver struct {
	table    *Table
	buffer   Buffer
	progress Progress
	state    State
}

// NewResolver creates a resolver over an immutable table
func NewResolver(table *Table, comboMax int, step float64) *Resolver {
	if comboMax < 0 {
		comboMax = 0
	}
	return &Resolver{
		table:    table,
		progress: Progress{Max: comboMax, Step: step},
	}
}

// OnJudgedKey advances the machine with one judged input
func (r *Resolver) OnJudgedKey(acc core.Accuracy, key core.Key) Outcome {
	if !acc.Accepted() {
		return r.fail(FailTimingMiss, ReasonOutOfTime)
	}

	n := r.buffer.Len()
	last := len(r.buffer.keys) - 1
	switch {
	case n < last && key.IsTerminator():
		return r.fail(FailGrammarViolation, ReasonPrematureTerminator)
	case n < last && !key.IsDirectional():
		return r.fail(FailGrammarViolation, ReasonInvalidKey)
	case n == last && !key.IsTerminator():
		return r.fail(FailGrammarViolation, ReasonWrongClosingKey)
	}

	if r.buffer.Accept(key) == Collecting {
		r.state = StateCollecting
		return Outcome{
			Kind:       OutcomePending,
			Count:      r.progress.Count,
			Multiplier: r.progress.Multiplier(),
			Buffered:   r.buffer.Len(),
		}
	}

	r.state = StateResolving
	def, ok := r.table.Lookup(r.buffer.Keys())
	if !ok {
		return r.fail(FailUnknownSequence, ReasonUnknownSequence)
	}
	return r.resolve(def)
}

func (r *Resolver) resolve(def *Definition) Outcome {
	count := r.progress.Count + def.ComboGain
	if count > r.progress.Max {
		count = r.progress.Max
	}
	if count < 0 {
		count = 0
	}
	r.progress.Count = count

	r.buffer.Clear()
	r.state = StateIdle

	return Outcome{
		Kind:       OutcomeResolved,
		Definition: def,
		Count:      count,
		Multiplier: r.progress.Multiplier() + def.BonusMultiplier,
	}
}

func (r *Resolver) fail(kind FailureKind, reason string) Outcome {
	r.buffer.Clear()
	r.progress.Count = 0
	r.state = StateIdle

	return Outcome{
		Kind:       OutcomeFailed,
		Multiplier: parameter.BaseMultiplier,
		Failure:    Failure{Kind: kind, Reason: reason},
	}
}

// State returns the current machine state
func (r *Resolver) State() State {
	return r.state
}

// Progress returns a copy of the streak bookkeeping
func (r *Resolver) Progress() Progress {
	return r.progress
}

// Buffered returns the keys collected so far and their count
func (r *Resolver) Buffered() (Sequence, int) {
	return r.buffer.Keys(), r.buffer.Len()
}
