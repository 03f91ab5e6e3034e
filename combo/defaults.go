package combo

import "github.com/lixenwraith/beat-judge/core"

// DefaultDefinitions returns the built-in combo table in registration order
func DefaultDefinitions() []Definition {
	const (
		k1 = core.K1
		k2 = core.K2
		k3 = core.K3
		k4 = core.K4
		t  = core.KeyTerminator
	)

	return []Definition{
		{ID: "march", Keys: Seq(k1, k1, k1, t), Action: Action{Kind: ActionMoveForward}, ComboGain: 1},
		{ID: "retreat", Keys: Seq(k3, k3, k3, t), Action: Action{Kind: ActionMoveBack}, ComboGain: 1},
		{ID: "dash", Keys: Seq(k1, k2, k1, t), Action: Action{Kind: ActionMoveFast}, ComboGain: 1},
		{ID: "attack", Keys: Seq(k1, k2, k3, t), Action: Action{Kind: ActionAttack}, ComboGain: 1, BonusMultiplier: 0.25},
		{ID: "aerial", Keys: Seq(k4, k4, k2, t), Action: Action{Kind: ActionAerialAttack}, ComboGain: 1, BonusMultiplier: 0.25},
		{ID: "defend", Keys: Seq(k2, k2, k2, t), Action: Action{Kind: ActionDefend}, ComboGain: 1},
		{ID: "jump", Keys: Seq(k4, k4, k4, t), Action: Action{Kind: ActionJump}, ComboGain: 1},
		{ID: "jump_attack", Keys: Seq(k4, k1, k2, t), Action: Action{Kind: ActionJumpAttack}, ComboGain: 1, BonusMultiplier: 0.5},
		{
			ID:              "special",
			Keys:            Seq(k4, k3, k2, t),
			Action:          Action{Kind: ActionSpecial},
			ComboGain:       2,
			BonusMultiplier: 1.0,
			Projectile:      &ProjectileSpec{Prefab: "spear", Speed: 25},
		},
		{ID: "weapon_1", Keys: Seq(k2, k1, k2, t), Action: Action{Kind: ActionSwitchWeapon, Weapon: 0}},
		{ID: "weapon_2", Keys: Seq(k3, k1, k3, t), Action: Action{Kind: ActionSwitchWeapon, Weapon: 1}},
	}
}
