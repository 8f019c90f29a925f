// internal/component/tower.go
package component

import "go-lane-defense/internal/defs"

// Tower - размещённая башня. Не меняется после создания: слияние и улучшение
// создают новую сущность.
type Tower struct {
	Type   defs.TowerType
	Level  defs.TowerLevel
	GX, GY int
	Stats  defs.TowerStats
}
