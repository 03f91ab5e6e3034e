package combo

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/parameter"
)

// ActionKind tags the gameplay command a combo resolves to
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveFast
	ActionAttack
	ActionAerialAttack
	ActionDefend
	ActionJump
	ActionJumpAttack
	ActionSpecial
	ActionSwitchWeapon
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveForward:  "move_forward",
	ActionMoveBack:     "move_back",
	ActionMoveFast:     "move_fast",
	ActionAttack:       "attack",
	ActionAerialAttack: "aerial_attack",
	ActionDefend:       "defend",
	ActionJump:         "jump",
	ActionJumpAttack:   "jump_attack",
	ActionSpecial:      "special",
	ActionSwitchWeapon: "switch_weapon",
}

func (k ActionKind) String() string {
	if k >= ActionCount {
		return "invalid"
	}
	return actionNames[k]
}

// ParseActionKind resolves a config name, case-insensitive
func ParseActionKind(name string) (ActionKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := ActionNone; k < ActionCount; k++ {
		if actionNames[k] == name {
			return k, true
		}
	}
	return ActionNone, false
}

// Action is the tagged command variant; Weapon is meaningful only for ActionSwitchWeapon
type Action struct {
	Kind   ActionKind
	Weapon int
}

func (a Action) String() string {
	if a.Kind == ActionSwitchWeapon {
		return fmt.Sprintf("%s(%d)", a.Kind, a.Weapon)
	}
	return a.Kind.String()
}

// ProjectileSpec describes a projectile the actor layer should spawn
type ProjectileSpec struct {
	Prefab string
	Speed  float64
}

// Sequence is a complete combo attempt, always exactly SequenceLength keys
type Sequence [parameter.SequenceLength]core.Key

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, k := range s {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

// Seq is a shorthand constructor
func Seq(k1, k2, k3, k4 core.Key) Sequence {
	return Sequence{k1, k2, k3, k4}
}

// Definition binds a key sequence to an action and its progression values
// Read-only once registered in a Table
type Definition struct {
	ID              string
	Keys            Sequence
	Action          Action
	ComboGain       int
	BonusMultiplier float64
	Projectile      *ProjectileSpec // nil when the combo spawns nothing
}
