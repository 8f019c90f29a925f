package entity

import (
	"testing"

	"go-lane-defense/internal/component"
)

func TestNewEntityNeverReusesIDs(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	ecs.Towers[a] = &component.Tower{}
	ecs.RemoveEntity(a)
	b := ecs.NewEntity()
	if b == a {
		t.Fatalf("id %d reused", a)
	}
}

func TestRemoveEntityClearsAllStores(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Towers[id] = &component.Tower{}
	ecs.Combats[id] = &component.Combat{}
	ecs.Economies[id] = &component.Economy{}
	ecs.RemoveEntity(id)
	if len(ecs.Positions)+len(ecs.Towers)+len(ecs.Combats)+len(ecs.Economies) != 0 {
		t.Fatal("stores not cleared")
	}
}

func TestSortedIDs(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{Health: float64(i)}
	}
	ids := ecs.EnemyIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
	// первый враг с нулевым здоровьем считается мёртвым
	if _, ok := ecs.LiveEnemy(ids[0]); ok {
		t.Fatal("zero-health enemy reported alive")
	}
	if _, ok := ecs.LiveEnemy(ids[1]); !ok {
		t.Fatal("live enemy not found")
	}
}
