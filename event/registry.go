package event

import "strings"

var typeNames = [EventTypeCount]string{
	EventNone:                 "none",
	EventBeatTick:             "beat_tick",
	EventHitJudged:            "hit_judged",
	EventComboResolved:        "combo_resolved",
	EventComboUpdated:         "combo_updated",
	EventComboFailed:          "combo_failed",
	EventComboMultiplierReset: "combo_multiplier_reset",
	EventSpawnRequested:       "spawn_requested",
}

func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType returns the EventType for a name, case-insensitive
func ParseType(name string) (EventType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := EventBeatTick; t < EventTypeCount; t++ {
		if typeNames[t] == name {
			return t, true
		}
	}
	return EventNone, false
}

// ParseTypes parses a comma separated list, returning the first unknown name
func ParseTypes(list string) ([]EventType, string) {
	var out []EventType
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		t, ok := ParseType(name)
		if !ok {
			return nil, name
		}
		out = append(out, t)
	}
	return out, ""
}

// AllTypes returns every publishable type in declaration order
func AllTypes() []EventType {
	out := make([]EventType, 0, EventTypeCount-1)
	for t := EventBeatTick; t < EventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
