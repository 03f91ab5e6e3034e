package combo

import "github.com/lixenwraith/beat-judge/parameter"

// Damageable is implemented by actors that can receive projectile hits
type Damageable interface {
	ApplyDamage(amount float64)
}

// Projectile is a spawn request sized by the streak multiplier
// The judge only describes it; lifecycle belongs to the actor layer
type Projectile struct {
	Spec   ProjectileSpec
	Damage float64
}

// NewProjectile scales the base projectile damage by multiplier
func NewProjectile(spec ProjectileSpec, multiplier float64) Projectile {
	if spec.Speed <= 0 {
		spec.Speed = parameter.DefaultProjectileSpeed
	}
	return Projectile{
		Spec:   spec,
		Damage: parameter.DefaultProjectileDamage * multiplier,
	}
}

// Hit applies the projectile's damage to a target
func (p Projectile) Hit(target Damageable) {
	if target == nil {
		return
	}
	target.ApplyDamage(p.Damage)
}
