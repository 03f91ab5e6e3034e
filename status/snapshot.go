package status

import (
	"sync/atomic"

	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/event"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Snapshot mirrors judge progress into atomics for readers on other goroutines
// Written only from router dispatch; Read is lock-free and safe anywhere
type Snapshot struct {
	count      atomic.Int64
	best       atomic.Int64
	multiplier AtomicFloat // Running multiplier without bonus
	peak       AtomicFloat // Highest resolved multiplier including bonus

	beatIndex atomic.Int64
	inBar     atomic.Int32

	lastAccuracy atomic.Int32 // -1 until the first hit
	lastCombo    AtomicString
	lastFailure  AtomicString

	hits     [core.AccuracyCount]atomic.Uint64
	resolved atomic.Uint64
	failed   atomic.Uint64
}

// View is a point-in-time copy of a Snapshot
type View struct {
	Count          int
	Best           int
	Multiplier     float64
	PeakMultiplier float64
	BeatIndex      int64
	InBar          int
	LastAccuracy   core.Accuracy
	HasAccuracy    bool
	LastCombo      string
	LastFailure    string
	Hits           [core.AccuracyCount]uint64
	Resolved       uint64
	Failed         uint64
}

// NewSnapshot creates a snapshot at base multiplier with no hits
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.multiplier.Set(parameter.BaseMultiplier)
	s.peak.Set(parameter.BaseMultiplier)
	s.lastAccuracy.Store(-1)
	return s
}

// EventTypes implements event.Handler
func (s *Snapshot) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeatTick,
		event.EventHitJudged,
		event.EventComboResolved,
		event.EventComboUpdated,
		event.EventComboFailed,
		event.EventComboMultiplierReset,
	}
}

// HandleEvent implements event.Handler
func (s *Snapshot) HandleEvent(ev event.Event) {
	switch p := ev.Payload.(type) {
	case *event.BeatTickPayload:
		s.beatIndex.Store(p.BeatIndex)
		s.inBar.Store(int32(p.InBar))

	case *event.HitJudgedPayload:
		s.lastAccuracy.Store(int32(p.Accuracy))
		if p.Accuracy < core.AccuracyCount {
			s.hits[p.Accuracy].Add(1)
		}

	case *event.ComboResolvedPayload:
		s.resolved.Add(1)
		s.lastCombo.Store(p.Definition.ID)
		s.lastFailure.Store("")
		s.peak.StoreMax(p.Multiplier)

	case *event.ComboUpdatedPayload:
		s.count.Store(int64(p.Count))
		s.multiplier.Set(p.Multiplier)
		for {
			best := s.best.Load()
			if int64(p.Count) <= best || s.best.CompareAndSwap(best, int64(p.Count)) {
				break
			}
		}

	case *event.ComboFailedPayload:
		s.failed.Add(1)
		s.count.Store(0)
		s.lastFailure.Store(p.Reason)

	case *event.MultiplierResetPayload:
		s.multiplier.Set(p.Multiplier)
	}
}

// Register subscribes the snapshot to its events
func (s *Snapshot) Register(r *event.Router) event.SubscriptionID {
	return r.Register(s)
}

// Read returns the current values
// Fields are loaded independently; a concurrent dispatch may be half applied
func (s *Snapshot) Read() View {
	v := View{
		Count:          int(s.count.Load()),
		Best:           int(s.best.Load()),
		Multiplier:     s.multiplier.Get(),
		PeakMultiplier: s.peak.Get(),
		BeatIndex:      s.beatIndex.Load(),
		InBar:          int(s.inBar.Load()),
		LastCombo:      s.lastCombo.Load(),
		LastFailure:    s.lastFailure.Load(),
		Resolved:       s.resolved.Load(),
		Failed:         s.failed.Load(),
	}
	if acc := s.lastAccuracy.Load(); acc >= 0 {
		v.LastAccuracy = core.Accuracy(acc)
		v.HasAccuracy = true
	}
	for i := range s.hits {
		v.Hits[i] = s.hits[i].Load()
	}
	return v
}

// SeedBest sets the best streak carried over from a previous session
func (s *Snapshot) SeedBest(best int) {
	s.best.Store(int64(best))
}
