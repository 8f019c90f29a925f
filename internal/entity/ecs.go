// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/types"
)

type ECS struct {
	GameTime    float64 // ms
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Towers      map[types.EntityID]*component.Tower
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Combats     map[types.EntityID]*component.Combat
	Economies   map[types.EntityID]*component.Economy
	Player      *component.PlayerState
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Towers:      make(map[types.EntityID]*component.Tower),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Combats:     make(map[types.EntityID]*component.Combat),
		Economies:   make(map[types.EntityID]*component.Economy),
		Player:      &component.PlayerState{},
		GameState:   &component.GameState{Phase: component.BuildState},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Towers, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Combats, id)
	delete(ecs.Economies, id)
}

// Итерация по отсортированным ID делает симуляцию детерминированной.

func (ecs *ECS) TowerIDs() []types.EntityID      { return slices.Sorted(maps.Keys(ecs.Towers)) }
func (ecs *ECS) EnemyIDs() []types.EntityID      { return slices.Sorted(maps.Keys(ecs.Enemies)) }
func (ecs *ECS) ProjectileIDs() []types.EntityID { return slices.Sorted(maps.Keys(ecs.Projectiles)) }

// LiveEnemy returns the enemy if it exists and has health left.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	if !ok || !e.Alive() {
		return nil, false
	}
	return e, true
}
