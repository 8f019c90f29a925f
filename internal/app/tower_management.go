// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
)

// SelectTowerType sets the type used by PlaceSelected. TowerNone clears it.
func (g *Game) SelectTowerType(t defs.TowerType) {
	if t != defs.TowerNone && !t.Valid() {
		panic(fmt.Sprintf("unknown tower type %q", t))
	}
	g.ECS.GameState.Selected = t
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected, Data: event.TowerSelectedData{Type: t}})
}

// Selected returns the currently selected tower type.
func (g *Game) Selected() defs.TowerType { return g.ECS.GameState.Selected }

// PlaceSelected places the selected tower type at the cell.
func (g *Game) PlaceSelected(gx, gy int) bool {
	return g.PlaceTower(g.Selected(), gx, gy)
}

// PlaceTower attempts to place a Basic tower of type t at the cell.
func (g *Game) PlaceTower(t defs.TowerType, gx, gy int) bool {
	if g.Over() {
		g.reject(CmdPlaceTower, event.ReasonGameOver, "game is over")
		return false
	}
	if t == defs.TowerNone {
		g.placementFailed(event.ReasonNoTowerSelected, "select a tower first")
		return false
	}
	switch g.TowerSystem.ValidatePlacement(g.Grid, gx, gy) {
	case system.PlacementOutOfBounds:
		g.placementFailed(event.ReasonOutOfBounds, fmt.Sprintf("cell (%d,%d) is outside the field", gx, gy))
		return false
	case system.PlacementCellOccupied:
		g.placementFailed(event.ReasonCellOccupied, fmt.Sprintf("cell (%d,%d) is occupied", gx, gy))
		return false
	}

	tower := g.TowerSystem.NewTower(t, defs.LevelBasic, gx, gy)
	if tower.Stats.Cost > g.Gold() {
		g.placementFailed(event.ReasonInsufficientGold,
			fmt.Sprintf("%s costs %d, you have %d", defs.Info(t).Name, tower.Stats.Cost, g.Gold()))
		return false
	}

	id := g.createTowerEntity(tower)
	g.Grid.Place(gx, gy, id)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPlacedData{ID: id, Tower: tower}})
	g.AddGold(-tower.Stats.Cost)
	return true
}

// SellTower removes the tower at the cell and refunds part of its cost.
func (g *Game) SellTower(gx, gy int) bool {
	id, tower, ok := g.towerForCommand(CmdSellTower, gx, gy)
	if !ok {
		return false
	}
	refund := g.TowerSystem.SellValue(tower)
	g.Grid.Remove(gx, gy)
	g.destroyTowerEntity(id)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: event.TowerSoldData{ID: id, Tower: tower, Refund: refund}})
	g.AddGold(refund)
	return true
}

// MergeTowers combines two adjacent towers of the same type and level into one
// tower of the next level. The two source entities are destroyed.
func (g *Game) MergeTowers(ax, ay, bx, by int) bool {
	aID, a, ok := g.towerForCommand(CmdMergeTowers, ax, ay)
	if !ok {
		return false
	}
	bID, b, ok := g.towerForCommand(CmdMergeTowers, bx, by)
	if !ok {
		return false
	}
	result, ok := g.TowerSystem.MergeResult(a, b)
	if !ok {
		g.reject(CmdMergeTowers, event.ReasonMergeIneligible,
			"towers must share type and a non-Elite level and be orthogonal neighbours")
		return false
	}

	id := g.createTowerEntity(result)
	g.Grid.Merge(grid.Coord{X: ax, Y: ay}, grid.Coord{X: bx, Y: by}, grid.Coord{X: result.GX, Y: result.GY}, id)
	g.destroyTowerEntity(aID)
	g.destroyTowerEntity(bID)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerMerged, Data: event.TowerMergedData{
		ID:       id,
		Result:   result,
		Consumed: [2]types.EntityID{aID, bID},
	}})
	return true
}

// UpgradeTower replaces the tower at the cell with its next level for the
// upgrade cost.
func (g *Game) UpgradeTower(gx, gy int) bool {
	oldID, tower, ok := g.towerForCommand(CmdUpgradeTower, gx, gy)
	if !ok {
		return false
	}
	next, ok := tower.Level.Next()
	if !ok {
		g.reject(CmdUpgradeTower, event.ReasonMaxLevel, "tower is already Elite")
		return false
	}
	cost := g.TowerSystem.UpgradeCost(tower.Type, tower.Level)
	if cost > g.Gold() {
		g.reject(CmdUpgradeTower, event.ReasonInsufficientGold,
			fmt.Sprintf("upgrade costs %d, you have %d", cost, g.Gold()))
		return false
	}

	upgraded := g.TowerSystem.NewTower(tower.Type, next, gx, gy)
	id := g.createTowerEntity(upgraded)
	g.Grid.Swap(gx, gy, id)
	g.destroyTowerEntity(oldID)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerUpgradedData{ID: id, Tower: upgraded, Cost: cost}})
	g.AddGold(-cost)
	return true
}

// TowerAt returns the tower standing on the cell.
func (g *Game) TowerAt(gx, gy int) (types.EntityID, component.Tower, bool) {
	id, ok := g.Grid.TowerAt(gx, gy)
	if !ok {
		return 0, component.Tower{}, false
	}
	return id, *g.ECS.Towers[id], true
}

func (g *Game) towerForCommand(cmd CommandType, gx, gy int) (types.EntityID, component.Tower, bool) {
	if g.Over() {
		g.reject(cmd, event.ReasonGameOver, "game is over")
		return 0, component.Tower{}, false
	}
	if !g.Grid.InBounds(gx, gy) {
		g.reject(cmd, event.ReasonOutOfBounds, fmt.Sprintf("cell (%d,%d) is outside the field", gx, gy))
		return 0, component.Tower{}, false
	}
	id, tower, ok := g.TowerAt(gx, gy)
	if !ok {
		g.reject(cmd, event.ReasonNoTower, fmt.Sprintf("no tower at (%d,%d)", gx, gy))
		return 0, component.Tower{}, false
	}
	return id, tower, true
}

func (g *Game) placementFailed(reason event.Reason, msg string) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.PlacementFailed, Data: event.PlacementFailedData{
		Reason:  reason,
		Message: msg,
	}})
}

// createTowerEntity registers the tower in the world and starts its timers.
// The caller owns the grid update.
func (g *Game) createTowerEntity(tower component.Tower) types.EntityID {
	id := g.ECS.NewEntity()
	x, y := grid.CellCenter(tower.GX, tower.GY)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &tower
	g.ProjectileSystem.AddTower(id)
	g.EconomySystem.AddTower(id)
	return id
}

func (g *Game) destroyTowerEntity(id types.EntityID) {
	g.ProjectileSystem.RemoveTower(id)
	g.EconomySystem.RemoveTower(id)
	g.ECS.RemoveEntity(id)
}
