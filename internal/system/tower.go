// internal/system/tower.go
package system

import (
	"fmt"
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/utils"
)

// PlacementResult - итог проверки клетки под башню.
type PlacementResult int

const (
	PlacementOK PlacementResult = iota
	PlacementOutOfBounds
	PlacementCellOccupied
)

func (r PlacementResult) String() string {
	switch r {
	case PlacementOK:
		return "ok"
	case PlacementOutOfBounds:
		return "out_of_bounds"
	case PlacementCellOccupied:
		return "cell_occupied"
	}
	return "unknown"
}

// TowerSystem - правила башен: характеристики, размещение, слияние, цены.
// Не хранит состояния.
type TowerSystem struct{}

func NewTowerSystem() *TowerSystem {
	return &TowerSystem{}
}

// Stats returns the stats for the pair. An unknown pair is a programming error.
func (s *TowerSystem) Stats(t defs.TowerType, l defs.TowerLevel) defs.TowerStats {
	stats, ok := defs.LookupTower(t, l)
	if !ok {
		panic(fmt.Sprintf("unknown tower %q level %d", t, l))
	}
	return stats
}

// NewTower builds the tower component for a cell.
func (s *TowerSystem) NewTower(t defs.TowerType, l defs.TowerLevel, gx, gy int) component.Tower {
	return component.Tower{Type: t, Level: l, GX: gx, GY: gy, Stats: s.Stats(t, l)}
}

// ValidatePlacement checks the cell only; affordability is the caller's concern.
func (s *TowerSystem) ValidatePlacement(g *grid.Grid, gx, gy int) PlacementResult {
	if !g.InBounds(gx, gy) {
		return PlacementOutOfBounds
	}
	if !g.IsFree(gx, gy) {
		return PlacementCellOccupied
	}
	return PlacementOK
}

// CanMerge: same type, same non-terminal level, orthogonally adjacent.
func (s *TowerSystem) CanMerge(a, b component.Tower) bool {
	if a.Type != b.Type || a.Level != b.Level {
		return false
	}
	if a.Level.IsTerminal() {
		return false
	}
	return utils.Manhattan(a.GX, a.GY, b.GX, b.GY) == 1
}

// MergeResult returns the merged tower placed at the floor midpoint of the two
// cells, which for adjacent cells is always one of them.
func (s *TowerSystem) MergeResult(a, b component.Tower) (component.Tower, bool) {
	if !s.CanMerge(a, b) {
		return component.Tower{}, false
	}
	next, _ := a.Level.Next()
	gx := int(math.Floor(float64(a.GX+b.GX) / 2))
	gy := int(math.Floor(float64(a.GY+b.GY) / 2))
	return s.NewTower(a.Type, next, gx, gy), true
}

// UpgradeCost - доплата до следующего уровня: разница цен уровней, 0 для Elite.
func (s *TowerSystem) UpgradeCost(t defs.TowerType, l defs.TowerLevel) int {
	next, ok := l.Next()
	if !ok {
		return 0
	}
	return s.Stats(t, next).Cost - s.Stats(t, l).Cost
}

// SellValue - возврат при продаже, 70% стоимости с округлением вниз.
func (s *TowerSystem) SellValue(tower component.Tower) int {
	return int(math.Floor(float64(tower.Stats.Cost) * config.SellRefundRatio))
}

// AffordableTypes lists tower types whose Basic level costs at most gold.
func (s *TowerSystem) AffordableTypes(gold int) []defs.TowerType {
	var out []defs.TowerType
	for _, t := range defs.AllTowerTypes {
		if stats, ok := defs.LookupTower(t, defs.LevelBasic); ok && stats.Cost <= gold {
			out = append(out, t)
		}
	}
	return out
}

func (s *TowerSystem) Description(t defs.TowerType) string { return defs.Info(t).Description }

func (s *TowerSystem) Ability(t defs.TowerType) string { return defs.Info(t).Ability }
