package combo

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/beat-judge/core"
)

// Sentinel errors, all fatal at load time
var (
	ErrEmptyTable     = errors.New("combo table is empty")
	ErrDuplicateID    = errors.New("duplicate combo id")
	ErrMissingID      = errors.New("combo id is required")
	ErrSequenceLength = errors.New("combo sequence must have exactly 4 keys")
	ErrUnknownKey     = errors.New("unknown key in combo sequence")
	ErrUnknownAction  = errors.New("unknown combo action")
	ErrNegativeValue  = errors.New("combo gain and bonus multiplier must be non-negative")
)

// DiagnosticKind classifies non-fatal table findings
type DiagnosticKind uint8

const (
	// DiagShadowed marks a definition whose sequence an earlier one already claims
	DiagShadowed DiagnosticKind = iota
	// DiagUnreachable marks a definition the input grammar can never produce
	DiagUnreachable
)

// Diagnostic reports a definition that will never be returned by Lookup
type Diagnostic struct {
	Kind DiagnosticKind
	ID   string
	By   string // Shadowing definition id, DiagShadowed only
}

func (d Diagnostic) String() string {
	if d.Kind == DiagShadowed {
		return fmt.Sprintf("combo %q is shadowed by earlier %q", d.ID, d.By)
	}
	return fmt.Sprintf("combo %q is unreachable: slots 1-3 must be directional and slot 4 the terminator", d.ID)
}

// Table is an ordered, immutable list of combo definitions
// Concurrent lookups are safe without locking
type Table struct {
	defs        []Definition
	diagnostics []Diagnostic
}

// NewTable copies and validates definitions in registration order
// Identical sequences are allowed: the earliest registration wins and later ones are reported
func NewTable(defs []Definition) (*Table, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{defs: make([]Definition, len(defs))}
	ids := make(map[string]struct{}, len(defs))
	claimed := make(map[Sequence]string, len(defs))

	for i, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("combo #%d: %w", i, ErrMissingID)
		}
		if _, dup := ids[d.ID]; dup {
			return nil, fmt.Errorf("combo %q: %w", d.ID, ErrDuplicateID)
		}
		ids[d.ID] = struct{}{}

		for _, k := range d.Keys {
			if k == core.KeyNone || k >= core.KeyCount {
				return nil, fmt.Errorf("combo %q: %w", d.ID, ErrUnknownKey)
			}
		}
		if d.Action.Kind >= ActionCount {
			return nil, fmt.Errorf("combo %q: %w", d.ID, ErrUnknownAction)
		}
		if d.ComboGain < 0 || d.BonusMultiplier < 0 {
			return nil, fmt.Errorf("combo %q: %w", d.ID, ErrNegativeValue)
		}

		if d.Projectile != nil {
			spec := *d.Projectile
			d.Projectile = &spec
		}
		t.defs[i] = d

		if by, ok := claimed[d.Keys]; ok {
			t.diagnostics = append(t.diagnostics, Diagnostic{Kind: DiagShadowed, ID: d.ID, By: by})
		} else {
			claimed[d.Keys] = d.ID
		}
		if !reachable(d.Keys) {
			t.diagnostics = append(t.diagnostics, Diagnostic{Kind: DiagUnreachable, ID: d.ID})
		}
	}

	return t, nil
}

// Lookup scans in registration order and returns the first exact match
func (t *Table) Lookup(seq Sequence) (*Definition, bool) {
	for i := range t.defs {
		if t.defs[i].Keys == seq {
			return &t.defs[i], true
		}
	}
	return nil, false
}

// Len returns the number of registered definitions
func (t *Table) Len() int {
	return len(t.defs)
}

// Definitions returns a copy of the registered definitions in order
func (t *Table) Definitions() []Definition {
	out := make([]Definition, len(t.defs))
	copy(out, t.defs)
	return out
}

// Diagnostics returns non-fatal findings collected at load
func (t *Table) Diagnostics() []Diagnostic {
	return t.diagnostics
}

func reachable(seq Sequence) bool {
	last := len(seq) - 1
	for i := 0; i < last; i++ {
		if !seq[i].IsDirectional() {
			return false
		}
	}
	return seq[last].IsTerminator()
}
