package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/types"
)

// fakeContext removes enemies the way the game root does.
type fakeContext struct {
	ecs      *entity.ECS
	waves    *WaveSystem
	gold     int
	killed   []types.EntityID
	breached []types.EntityID
}

func (c *fakeContext) AddGold(amount int) { c.gold += amount }

func (c *fakeContext) EnemyKilled(id types.EntityID) {
	c.killed = append(c.killed, id)
	c.remove(id)
}

func (c *fakeContext) EnemyBreached(id types.EntityID) {
	c.breached = append(c.breached, id)
	c.remove(id)
}

func (c *fakeContext) remove(id types.EntityID) {
	if c.waves != nil {
		c.waves.UnregisterEnemy(id)
	}
	c.ecs.RemoveEntity(id)
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newWorld() (*entity.ECS, *event.Dispatcher, *recorder) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return ecs, d, rec
}

func addEnemy(ecs *entity.ECS, x, y, health, armor float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: 80}
	ecs.Paths[id] = &component.Path{Points: []component.Position{{X: -40, Y: y}}}
	ecs.Enemies[id] = &component.Enemy{
		Type:      defs.EnemyBasic,
		Health:    health,
		MaxHealth: health,
		Speed:     1,
		Reward:    10,
		Armor:     armor,
		Scale:     1,
	}
	return id
}

func addTower(ecs *entity.ECS, t defs.TowerType, l defs.TowerLevel, gx, gy int) types.EntityID {
	id := ecs.NewEntity()
	tower := NewTowerSystem().NewTower(t, l, gx, gy)
	x, y := grid.CellCenter(gx, gy)
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &tower
	if t.CanAttack() {
		ecs.Combats[id] = &component.Combat{}
	}
	if t.IsEconomy() {
		ecs.Economies[id] = &component.Economy{}
	}
	return id
}
