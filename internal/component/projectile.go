// internal/component/projectile.go
package component

import "go-lane-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	TowerID   types.EntityID
	TargetID  types.EntityID
	HasTarget bool // false, когда цель погибла
	AimX      float64
	AimY      float64
	Arrived   bool // снаряд без цели долетел до последней точки прицела

	Speed                  float64
	Damage                 float64
	SplashDamage           float64
	SplashRadius           float64 // в клетках
	SplashDamageMultiplier float64

	HitEnemies map[types.EntityID]struct{}
}

// HasSplash reports whether the projectile deals area damage.
func (p *Projectile) HasSplash() bool {
	return p.SplashDamage > 0 && p.SplashRadius > 0
}

// WasHit reports whether the enemy already took damage from this projectile.
func (p *Projectile) WasHit(id types.EntityID) bool {
	_, ok := p.HitEnemies[id]
	return ok
}

// MarkHit records a damage application.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.HitEnemies == nil {
		p.HitEnemies = make(map[types.EntityID]struct{})
	}
	p.HitEnemies[id] = struct{}{}
}
