// internal/component/enemy.go
package component

import "go-lane-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type       defs.EnemyType
	Health     float64
	MaxHealth  float64
	Speed      float64 // клеток в секунду
	Reward     int
	Armor      float64
	Scale      float64
	Lane       int
	Blocked    bool // стоит перед стеной
	ReachedEnd bool // достиг конца пути
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// Stop halts the enemy until the flag is cleared. Calling it again is a no-op.
func (e *Enemy) Stop() { e.Blocked = true }

// BodySize returns the side of the enemy's square hit box.
func (e *Enemy) BodySize(base float64) float64 {
	return base * e.Scale
}
