package judge

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Sentinel errors
var (
	ErrThresholdOrder = errors.New("tolerance thresholds must be strictly ascending: perfect < regular < goofy")
	ErrNegativeWindow = errors.New("tolerance thresholds must be non-negative")
)

// Thresholds holds the three tolerance windows as inclusive upper bounds
type Thresholds struct {
	Perfect time.Duration
	Regular time.Duration
	Goofy   time.Duration
}

// DefaultThresholds returns the stock windows
func DefaultThresholds() Thresholds {
	return Thresholds{
		Perfect: parameter.DefaultTolerancePerfect,
		Regular: parameter.DefaultToleranceRegular,
		Goofy:   parameter.DefaultToleranceGoofy,
	}
}

// Validate fails when the windows are not strictly ascending
func (th Thresholds) Validate() error {
	if th.Perfect < 0 {
		return fmt.Errorf("perfect=%v: %w", th.Perfect, ErrNegativeWindow)
	}
	if !(th.Perfect < th.Regular && th.Regular < th.Goofy) {
		return fmt.Errorf("perfect=%v regular=%v goofy=%v: %w", th.Perfect, th.Regular, th.Goofy, ErrThresholdOrder)
	}
	return nil
}

// Classify maps an absolute offset from the beat boundary to a tier
// Boundary values fall into the better tier
func (th Thresholds) Classify(delta time.Duration) core.Accuracy {
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= th.Perfect:
		return core.AccuracyPerfect
	case delta <= th.Regular:
		return core.AccuracyRegular
	case delta <= th.Goofy:
		return core.AccuracyGoofy
	default:
		return core.AccuracyMiss
	}
}
