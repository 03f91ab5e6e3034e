package event

import "testing"

func TestTypeNames(t *testing.T) {
	for _, et := range AllTypes() {
		got, ok := ParseType(et.String())
		if !ok || got != et {
			t.Errorf("Round trip of %v failed: got %v ok=%v", et, got, ok)
		}
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", EventType(99).String())
	}
	if _, ok := ParseType("none"); ok {
		t.Error("Expected none to be unparseable")
	}
}

func TestParseTypes(t *testing.T) {
	types, bad := ParseTypes("hit_judged, Combo_Failed,,")
	if bad != "" {
		t.Fatalf("Unexpected bad name %q", bad)
	}
	if len(types) != 2 || types[0] != EventHitJudged || types[1] != EventComboFailed {
		t.Errorf("Expected [hit_judged combo_failed], got %v", types)
	}

	if _, bad := ParseTypes("beat_tick,bogus"); bad != "bogus" {
		t.Errorf("Expected bogus reported, got %q", bad)
	}
}
