package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/quasilyte/gdata"

	"github.com/lixenwraith/beat-judge/event"
)

// ItemKey is the storage key of the record blob
const ItemKey = "record"

var ErrCorrupt = errors.New("saved record is unreadable")

// Store is the blob persistence used by the tracker
// *gdata.Manager satisfies it
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// OpenStore opens the per-user data directory for app
func OpenStore(app string) (Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return m, nil
}

// Record is the persisted personal best
type Record struct {
	BestStreak     int       `json:"bestStreak"`
	BestMultiplier float64   `json:"bestMultiplier"`
	Sessions       int       `json:"sessions"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Tracker keeps the best streak across sessions
type Tracker struct {
	mu    sync.Mutex
	store Store
	rec   Record
	dirty bool
	log   *slog.Logger
}

// New loads the saved record and counts a new session
// An unreadable record is replaced, the returned error wraps ErrCorrupt
// and the tracker is still usable
func New(store Store, logger *slog.Logger) (*Tracker, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Tracker{store: store, log: logger}

	var loadErr error
	data, err := store.LoadItem(ItemKey)
	switch {
	case err != nil:
		loadErr = fmt.Errorf("load record: %w", err)
	case len(data) > 0:
		if err := json.Unmarshal(data, &t.rec); err != nil {
			t.rec = Record{}
			loadErr = fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}

	t.rec.Sessions++
	t.dirty = true
	return t, loadErr
}

// Observe records a streak value, returns true on a new best
func (t *Tracker) Observe(count int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if count <= t.rec.BestStreak {
		return false
	}
	t.rec.BestStreak = count
	t.rec.UpdatedAt = time.Now()
	t.dirty = true
	t.log.Info("new best streak", "streak", count)
	return true
}

// ObserveMultiplier records a resolved multiplier
func (t *Tracker) ObserveMultiplier(mult float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if mult > t.rec.BestMultiplier {
		t.rec.BestMultiplier = mult
		t.rec.UpdatedAt = time.Now()
		t.dirty = true
	}
}

// Best returns the best streak so far
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rec.BestStreak
}

// Record returns a copy of the current record
func (t *Tracker) Record() Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rec
}

// Save writes the record if it changed
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.dirty {
		return nil
	}
	data, err := json.Marshal(t.rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := t.store.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	t.dirty = false
	return nil
}

// EventTypes implements event.Handler
func (t *Tracker) EventTypes() []event.EventType {
	return []event.EventType{event.EventComboUpdated, event.EventComboResolved}
}

// HandleEvent implements event.Handler
func (t *Tracker) HandleEvent(ev event.Event) {
	switch p := ev.Payload.(type) {
	case *event.ComboUpdatedPayload:
		t.Observe(p.Count)
	case *event.ComboResolvedPayload:
		t.ObserveMultiplier(p.Multiplier)
	}
}

// Register subscribes the tracker to streak updates
func (t *Tracker) Register(r *event.Router) event.SubscriptionID {
	return r.Register(t)
}
