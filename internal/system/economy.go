// internal/system/economy.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/types"
)

// EconomySystem начисляет золото от экономических башен, пока идёт волна.
type EconomySystem struct {
	ecs *entity.ECS
	ctx interfaces.GameContext
}

func NewEconomySystem(ecs *entity.ECS, ctx interfaces.GameContext) *EconomySystem {
	return &EconomySystem{ecs: ecs, ctx: ctx}
}

// AddTower starts the resource timer of an economy tower.
func (s *EconomySystem) AddTower(id types.EntityID) {
	if tower, ok := s.ecs.Towers[id]; ok && tower.Type.IsEconomy() {
		s.ecs.Economies[id] = &component.Economy{}
	}
}

// RemoveTower drops the resource timer of the tower.
func (s *EconomySystem) RemoveTower(id types.EntityID) {
	delete(s.ecs.Economies, id)
}

// Update advances the timers only while waveInProgress; between waves they
// keep their accumulated time.
func (s *EconomySystem) Update(deltaMs float64, waveInProgress bool) {
	if !waveInProgress {
		return
	}
	for _, id := range s.ecs.TowerIDs() {
		eco, ok := s.ecs.Economies[id]
		if !ok {
			continue
		}
		stats := s.ecs.Towers[id].Stats
		if stats.ResourceInterval <= 0 || stats.ResourceGeneration <= 0 {
			continue
		}
		eco.Elapsed += deltaMs
		for eco.Elapsed >= stats.ResourceInterval {
			eco.Elapsed -= stats.ResourceInterval
			s.ctx.AddGold(stats.ResourceGeneration)
		}
	}
}
