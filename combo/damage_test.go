package combo

import "testing"

type dummy struct {
	taken float64
}

func (d *dummy) ApplyDamage(amount float64) {
	d.taken += amount
}

func TestProjectileScalesDamage(t *testing.T) {
	p := NewProjectile(ProjectileSpec{Prefab: "spear", Speed: 25}, 1.5)
	if p.Damage != 30 {
		t.Errorf("Expected damage 30, got %v", p.Damage)
	}

	target := &dummy{}
	p.Hit(target)
	p.Hit(target)
	if target.taken != 60 {
		t.Errorf("Expected 60 total damage, got %v", target.taken)
	}

	// Nil target is ignored
	p.Hit(nil)
}

func TestProjectileDefaultSpeed(t *testing.T) {
	p := NewProjectile(ProjectileSpec{Prefab: "rock"}, 1)
	if p.Spec.Speed != 25 {
		t.Errorf("Expected default speed 25, got %v", p.Spec.Speed)
	}
}
