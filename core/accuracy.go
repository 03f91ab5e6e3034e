package core

// Accuracy is the timing tier of a judged input, ordered best to worst
type Accuracy uint8

const (
	AccuracyPerfect Accuracy = iota
	AccuracyRegular
	AccuracyGoofy
	AccuracyMiss
	AccuracyCount
)

var accuracyNames = [AccuracyCount]string{
	AccuracyPerfect: "perfect",
	AccuracyRegular: "regular",
	AccuracyGoofy:   "goofy",
	AccuracyMiss:    "miss",
}

func (a Accuracy) String() string {
	if a >= AccuracyCount {
		return "invalid"
	}
	return accuracyNames[a]
}

// Accepted reports whether the tier advances the sequence buffer
// Goofy is sloppy but still accepted
func (a Accuracy) Accepted() bool {
	return a < AccuracyMiss
}
