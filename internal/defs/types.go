// internal/defs/types.go
package defs

import "fmt"

// TowerType defines the kind of a tower.
type TowerType string

const (
	TowerNone       TowerType = "" // нет выбора
	TowerPeashooter TowerType = "peashooter"
	TowerSunflower  TowerType = "sunflower"
	TowerWallnut    TowerType = "wallnut"
	TowerMortar     TowerType = "mortar"
)

// AllTowerTypes - порядок, в котором хосты показывают башни.
var AllTowerTypes = []TowerType{TowerSunflower, TowerWallnut, TowerPeashooter, TowerMortar}

// Valid reports whether t names a placeable tower type.
func (t TowerType) Valid() bool {
	switch t {
	case TowerPeashooter, TowerSunflower, TowerWallnut, TowerMortar:
		return true
	}
	return false
}

// CanAttack - стреляющие башни (basic-attacker и splash-attacker).
func (t TowerType) CanAttack() bool {
	return t == TowerPeashooter || t == TowerMortar
}

// IsEconomy - башня приносит золото во время волны.
func (t TowerType) IsEconomy() bool { return t == TowerSunflower }

// IsBarrier - башня останавливает врагов рядом с собой.
func (t TowerType) IsBarrier() bool { return t == TowerWallnut }

// ParseTowerType converts a user-facing name into a TowerType.
func ParseTowerType(s string) (TowerType, error) {
	t := TowerType(s)
	if !t.Valid() {
		return TowerNone, fmt.Errorf("unknown tower type %q", s)
	}
	return t, nil
}

// TowerLevel - уровень башни, 1..3.
type TowerLevel int

const (
	LevelBasic TowerLevel = iota + 1
	LevelAdvanced
	LevelElite
)

// Next returns the following level, or false at Elite.
func (l TowerLevel) Next() (TowerLevel, bool) {
	if l < LevelBasic || l >= LevelElite {
		return l, false
	}
	return l + 1, true
}

// IsTerminal - башню этого уровня нельзя ни слить, ни улучшить.
func (l TowerLevel) IsTerminal() bool { return l >= LevelElite }

func (l TowerLevel) String() string {
	switch l {
	case LevelBasic:
		return "Basic"
	case LevelAdvanced:
		return "Advanced"
	case LevelElite:
		return "Elite"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// EnemyType - вид врага.
type EnemyType string

const (
	EnemyBasic   EnemyType = "basic"
	EnemyTank    EnemyType = "tank"
	EnemyFlying  EnemyType = "flying"
	EnemyBoss    EnemyType = "boss"
	EnemySwarm   EnemyType = "swarm"
	EnemyArmored EnemyType = "armored"
)

// IsFlying - летающие враги идут по дуге, а не по клеткам.
func (e EnemyType) IsFlying() bool { return e == EnemyFlying }
