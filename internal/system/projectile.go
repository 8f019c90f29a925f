// internal/system/projectile.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// ProjectileSystem управляет стрельбой башен и полётом снарядов.
// Перезарядка хранится в ecs.Combats по ID башни.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(now, deltaMs float64) {
	s.processTowerAttacks(now)
	s.updateProjectiles(deltaMs)
}

// AddTower starts tracking the cooldown of an attacking tower.
func (s *ProjectileSystem) AddTower(id types.EntityID) {
	if tower, ok := s.ecs.Towers[id]; ok && tower.Type.CanAttack() {
		s.ecs.Combats[id] = &component.Combat{}
	}
}

// RemoveTower drops the cooldown entry of the tower.
func (s *ProjectileSystem) RemoveTower(id types.EntityID) {
	delete(s.ecs.Combats, id)
}

func (s *ProjectileSystem) processTowerAttacks(now float64) {
	if len(s.ecs.Enemies) == 0 {
		return
	}
	enemyIDs := s.ecs.EnemyIDs()
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		combat, ok := s.ecs.Combats[id]
		if !ok || !tower.Type.CanAttack() || tower.Stats.AttackSpeed <= 0 {
			continue
		}
		cooldown := 1000 / tower.Stats.AttackSpeed
		if combat.HasFired && now-combat.LastAttackTime < cooldown {
			continue
		}
		targetID, found := s.findNearestEnemyInRange(tower, enemyIDs)
		if !found {
			continue
		}
		s.fire(id, tower, targetID)
		combat.LastAttackTime = now
		combat.HasFired = true
	}
}

// findNearestEnemyInRange picks the closest live enemy within range; ties go
// to the lower ID.
func (s *ProjectileSystem) findNearestEnemyInRange(tower *component.Tower, enemyIDs []types.EntityID) (types.EntityID, bool) {
	tx, ty := grid.CellCenter(tower.GX, tower.GY)
	rangePixels := tower.Stats.Range * config.CellSize

	var best types.EntityID
	bestDist := math.Inf(1)
	for _, eid := range enemyIDs {
		if _, alive := s.ecs.LiveEnemy(eid); !alive {
			continue
		}
		pos, ok := s.ecs.Positions[eid]
		if !ok {
			continue
		}
		d := utils.Distance(tx, ty, pos.X, pos.Y)
		if d <= rangePixels && d < bestDist {
			best, bestDist = eid, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func (s *ProjectileSystem) fire(towerID types.EntityID, tower *component.Tower, targetID types.EntityID) {
	tx, ty := grid.CellCenter(tower.GX, tower.GY)
	target := s.ecs.Positions[targetID]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: tx, Y: ty}
	s.ecs.Projectiles[id] = &component.Projectile{
		TowerID:                towerID,
		TargetID:               targetID,
		HasTarget:              true,
		AimX:                   target.X,
		AimY:                   target.Y,
		Speed:                  config.ProjectileSpeed,
		Damage:                 tower.Stats.Damage,
		SplashDamage:           tower.Stats.SplashDamage,
		SplashRadius:           tower.Stats.SplashRadius,
		SplashDamageMultiplier: config.SplashDamageMultiplier,
		HitEnemies:             make(map[types.EntityID]struct{}),
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileFiredData{
		ID:      id,
		TowerID: towerID,
		Tower:   *tower,
		Damage:  tower.Stats.Damage,
	}})
}

// updateProjectiles steers each projectile toward its target's current
// position. A projectile whose target is gone is destroyed, unless it deals
// splash damage: then it flies on to the last aim point and detonates there.
func (s *ProjectileSystem) updateProjectiles(deltaMs float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if proj.Arrived {
			continue
		}

		if proj.HasTarget {
			if target, alive := s.targetPosition(proj.TargetID); alive {
				proj.AimX, proj.AimY = target.X, target.Y
			} else {
				proj.HasTarget = false
			}
		}
		if !proj.HasTarget && !proj.HasSplash() {
			s.ecs.RemoveEntity(id)
			continue
		}

		step := proj.Speed * deltaMs / 1000
		dx, dy := proj.AimX-pos.X, proj.AimY-pos.Y
		dist := math.Hypot(dx, dy)
		if dist <= step {
			pos.X, pos.Y = proj.AimX, proj.AimY
			if !proj.HasTarget {
				proj.Arrived = true
			}
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}

func (s *ProjectileSystem) targetPosition(id types.EntityID) (*component.Position, bool) {
	if _, alive := s.ecs.LiveEnemy(id); !alive {
		return nil, false
	}
	pos, ok := s.ecs.Positions[id]
	return pos, ok
}
