package parameter

import "time"

// Tolerance windows, inclusive upper bounds measured from the last beat boundary
const (
	DefaultTolerancePerfect = 50 * time.Millisecond
	DefaultToleranceRegular = 120 * time.Millisecond
	DefaultToleranceGoofy   = 200 * time.Millisecond
)

// Sequence grammar
const (
	BarLength      = 4 // Beats per bar, fixed
	SequenceLength = 4 // 3 directional slots + 1 terminator slot
)

// Combo progression
const (
	DefaultComboMax           = 10
	DefaultDamagePerComboStep = 0.1
	BaseMultiplier            = 1.0
)

// Projectile
const (
	DefaultProjectileSpeed  = 25.0
	DefaultProjectileDamage = 20.0
)
