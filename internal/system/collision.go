// internal/system/collision.go
package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// CollisionSystem применяет урон от снарядов и блокировку стенами.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	ctx             interfaces.GameContext
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, ctx interfaces.GameContext) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, eventDispatcher: eventDispatcher, ctx: ctx}
}

func (s *CollisionSystem) Update() {
	s.checkProjectileEnemyCollisions()
	s.checkBarriers()
}

// Overlaps - пересечение квадратов снаряда и тела врага.
func Overlaps(p, e component.Position, enemyScale float64) bool {
	half := config.ProjectileSize/2 + config.EnemyBodySize*enemyScale/2
	return math.Abs(p.X-e.X) < half && math.Abs(p.Y-e.Y) < half
}

func (s *CollisionSystem) checkProjectileEnemyCollisions() {
	for _, pid := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[pid]
		if !ok {
			continue
		}
		ppos := *s.ecs.Positions[pid]

		if proj.Arrived {
			s.applySplashDamage(pid, proj, ppos)
			s.ecs.RemoveEntity(pid)
			continue
		}

		for _, eid := range s.ecs.EnemyIDs() {
			enemy, alive := s.ecs.LiveEnemy(eid)
			if !alive || proj.WasHit(eid) {
				continue
			}
			epos, ok := s.ecs.Positions[eid]
			if !ok || !Overlaps(ppos, *epos, enemy.Scale) {
				continue
			}

			direct := eid == proj.TargetID
			if !direct && !proj.HasSplash() {
				// обычный снаряд пролетает сквозь чужих врагов
				continue
			}
			raw := proj.Damage
			if !direct {
				raw = proj.SplashDamage * proj.SplashDamageMultiplier
			}
			s.hit(pid, proj, eid, enemy, raw, !direct)
			if proj.HasSplash() {
				s.applySplashDamage(pid, proj, ppos)
			}
			s.ecs.RemoveEntity(pid)
			break
		}
	}
}

// applySplashDamage runs the single splash pass around the impact point.
// Enemies already hit by this projectile are skipped.
func (s *CollisionSystem) applySplashDamage(pid types.EntityID, proj *component.Projectile, at component.Position) {
	radius := proj.SplashRadius * config.CellSize
	raw := proj.SplashDamage * proj.SplashDamageMultiplier
	for _, eid := range s.ecs.EnemyIDs() {
		enemy, alive := s.ecs.LiveEnemy(eid)
		if !alive || proj.WasHit(eid) {
			continue
		}
		epos, ok := s.ecs.Positions[eid]
		if !ok || utils.Distance(at.X, at.Y, epos.X, epos.Y) > radius {
			continue
		}
		s.hit(pid, proj, eid, enemy, raw, true)
	}
}

func (s *CollisionSystem) hit(pid types.EntityID, proj *component.Projectile, eid types.EntityID, enemy *component.Enemy, raw float64, splash bool) {
	proj.MarkHit(eid)
	applied, killed := ApplyDamage(enemy, raw)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileHitData{
		ProjectileID: pid,
		EnemyID:      eid,
		Enemy:        *enemy,
		Damage:       applied,
		Splash:       splash,
	}})
	if killed {
		s.ctx.EnemyKilled(eid)
	}
}

// checkBarriers recomputes the blocked flag of every enemy: an enemy within
// TowerBlockDistance of a barrier tower stops, others move on.
func (s *CollisionSystem) checkBarriers() {
	var barriers []component.Position
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		if !tower.Type.IsBarrier() {
			continue
		}
		x, y := grid.CellCenter(tower.GX, tower.GY)
		barriers = append(barriers, component.Position{X: x, Y: y})
	}

	for _, eid := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[eid]
		pos, ok := s.ecs.Positions[eid]
		if !ok {
			continue
		}
		enemy.Blocked = false
		for _, b := range barriers {
			if utils.Distance(b.X, b.Y, pos.X, pos.Y) < config.TowerBlockDistance {
				enemy.Stop()
				break
			}
		}
	}
}
