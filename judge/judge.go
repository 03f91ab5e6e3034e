package judge

import (
	"time"

	"github.com/lixenwraith/beat-judge/beat"
	"github.com/lixenwraith/beat-judge/core"
)

// Hit is the outcome of one accepted input
type Hit struct {
	Key       core.Key
	Accuracy  core.Accuracy
	InBar     int           // Bar position of the boundary the input was judged against
	Delta     time.Duration // Absolute offset from that boundary
	BeatIndex int64
}

// InputJudge timestamps key presses against the tracker's last boundary
// At most one input is judged per beat; the tracker reopens the latch on each transition
type InputJudge struct {
	thresholds Thresholds
	tracker    *beat.Tracker
}

// New validates the thresholds and binds the judge to a tracker
func New(th Thresholds, tracker *beat.Tracker) (*InputJudge, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	return &InputJudge{thresholds: th, tracker: tracker}, nil
}

// Judge classifies a key press at now
// Returns false without side effects beyond the latch check when this beat was already judged
func (j *InputJudge) Judge(key core.Key, now time.Time) (Hit, bool) {
	if !j.tracker.TryLatch() {
		return Hit{}, false
	}

	b := j.tracker.Boundary()
	delta := now.Sub(b.Timestamp)
	if delta < 0 {
		delta = -delta
	}

	return Hit{
		Key:       key,
		Accuracy:  j.thresholds.Classify(delta),
		InBar:     b.InBar(j.tracker.BarLength()),
		Delta:     delta,
		BeatIndex: b.Index,
	}, true
}

// Thresholds returns the configured windows
func (j *InputJudge) Thresholds() Thresholds {
	return j.thresholds
}
