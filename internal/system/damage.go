// internal/system/damage.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
)

// MitigatedDamage - урон после брони, не меньше MinDamage.
func MitigatedDamage(raw, armor float64) float64 {
	return math.Max(config.MinDamage, raw-armor)
}

// ApplyDamage наносит урон врагу с учётом брони. Здоровье не опускается ниже нуля.
// Возвращает фактически нанесённый урон и признак гибели.
func ApplyDamage(enemy *component.Enemy, raw float64) (applied float64, killed bool) {
	if !enemy.Alive() {
		return 0, false
	}
	applied = MitigatedDamage(raw, enemy.Armor)
	enemy.Health -= applied
	if enemy.Health <= 0 {
		enemy.Health = 0
		return applied, true
	}
	return applied, false
}
