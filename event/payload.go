package event

import (
	"time"

	"github.com/lixenwraith/beat-judge/combo"
	"github.com/lixenwraith/beat-judge/core"
)

// BeatTickPayload carries the observed boundary
type BeatTickPayload struct {
	BeatIndex int64     `yaml:"beat_index"`
	InBar     int       `yaml:"in_bar"` // 0..BarLength-1
	Timestamp time.Time `yaml:"timestamp"`
}

// HitJudgedPayload carries one judged input
type HitJudgedPayload struct {
	Key       core.Key      `yaml:"key"`
	Accuracy  core.Accuracy `yaml:"accuracy"`
	InBar     int           `yaml:"in_bar"`
	BeatIndex int64         `yaml:"beat_index"`
	Delta     time.Duration `yaml:"delta"` // Absolute distance from the boundary
}

// ComboResolvedPayload carries the matched definition and the streak after it
type ComboResolvedPayload struct {
	Definition *combo.Definition `yaml:"-"`
	Count      int               `yaml:"count"`
	Multiplier float64           `yaml:"multiplier"` // Includes the definition bonus
}

// ComboUpdatedPayload carries the running streak without per-combo bonus
type ComboUpdatedPayload struct {
	Count      int     `yaml:"count"`
	Multiplier float64 `yaml:"multiplier"`
}

// ComboFailedPayload carries why an attempt was abandoned
type ComboFailedPayload struct {
	Kind   combo.FailureKind `yaml:"kind"`
	Reason string            `yaml:"reason"`
}

// MultiplierResetPayload carries the base multiplier after a failure
type MultiplierResetPayload struct {
	Multiplier float64 `yaml:"multiplier"`
}

// SpawnRequestedPayload is a fire-and-forget projectile request
type SpawnRequestedPayload struct {
	ComboID    string           `yaml:"combo_id"`
	Projectile combo.Projectile `yaml:"-"`
	Multiplier float64          `yaml:"multiplier"`
}
