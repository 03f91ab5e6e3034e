package event

// EventType represents the type of judge event
type EventType int

const (
	// EventNone is the zero value and never published
	EventNone EventType = iota

	// EventBeatTick signals a new beat boundary was observed
	// Trigger: Judge.Tick when the beat counter changes
	// Consumer: HUD, metronome visuals | Payload: *BeatTickPayload
	EventBeatTick

	// EventHitJudged reports the accuracy of the one input judged this beat
	// Trigger: Judge.Tick on the first input after a boundary
	// Consumer: HUD, status snapshot, metrics | Payload: *HitJudgedPayload
	EventHitJudged

	// EventComboResolved reports a matched sequence and its action
	// Trigger: Resolver outcome on a full buffer with a table match
	// Consumer: Actor layer, status, metrics | Payload: *ComboResolvedPayload
	EventComboResolved

	// EventComboUpdated carries the streak after every resolve
	// Trigger: Follows EventComboResolved
	// Consumer: HUD counters, best-streak record | Payload: *ComboUpdatedPayload
	EventComboUpdated

	// EventComboFailed reports an abandoned attempt
	// Trigger: Miss, grammar violation or unknown sequence
	// Consumer: HUD, status, metrics | Payload: *ComboFailedPayload
	EventComboFailed

	// EventComboMultiplierReset signals the multiplier dropped back to base
	// Trigger: Follows EventComboFailed
	// Consumer: Actor layer, HUD | Payload: *MultiplierResetPayload
	EventComboMultiplierReset

	// EventSpawnRequested asks the actor layer to spawn a projectile
	// Trigger: Resolved combo whose definition carries a projectile spec
	// Consumer: Actor layer | Payload: *SpawnRequestedPayload
	EventSpawnRequested

	// EventTypeCount is the number of defined types
	EventTypeCount
)
