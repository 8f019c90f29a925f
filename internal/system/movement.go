// internal/system/movement.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/interfaces"
)

// MovementSystem двигает врагов по их путям и сообщает о прорывах.
type MovementSystem struct {
	ecs *entity.ECS
	ctx interfaces.GameContext
}

func NewMovementSystem(ecs *entity.ECS, ctx interfaces.GameContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, ctx: ctx}
}

// SpawnPoint - точка появления врага за правым краем поля.
func SpawnPoint(lane int) component.Position {
	return component.Position{X: config.FieldWidth + config.CellSize/2, Y: grid.LaneY(lane)}
}

// LanePath builds the waypoints from the spawn point to the base. Ground
// enemies visit every cell centre of the lane, flying ones follow an arc.
func LanePath(lane int, flying bool) []component.Position {
	y := grid.LaneY(lane)
	base := component.Position{X: -config.CellSize / 2, Y: y}
	if flying {
		return []component.Position{
			{X: 4.5*config.CellSize + config.CellSize/2, Y: y - config.FlyingArcHeight},
			{X: config.CellSize / 2, Y: y},
			base,
		}
	}
	points := make([]component.Position, 0, config.GridCols+1)
	for col := config.GridCols - 1; col >= 0; col-- {
		x, _ := grid.CellCenter(col, lane)
		points = append(points, component.Position{X: x, Y: y})
	}
	return append(points, base)
}

// Update moves every unblocked enemy by speed*delta along its path. A large
// delta may pass several waypoints in one step.
func (s *MovementSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasPath || !hasVel || !enemy.Alive() {
			continue
		}
		if enemy.Blocked || enemy.ReachedEnd {
			continue
		}

		remaining := vel.Speed * dt
		for remaining > 0 && !path.Done() {
			target := path.Points[path.CurrentIndex]
			dx, dy := target.X-pos.X, target.Y-pos.Y
			dist := math.Hypot(dx, dy)
			if dist <= remaining {
				pos.X, pos.Y = target.X, target.Y
				path.CurrentIndex++
				remaining -= dist
				continue
			}
			pos.X += dx / dist * remaining
			pos.Y += dy / dist * remaining
			remaining = 0
		}

		if path.Done() {
			enemy.ReachedEnd = true
			s.ctx.EnemyBreached(id)
		}
	}
}
