package system

import (
	"testing"

	"go-lane-defense/internal/defs"
)

func TestEconomyPaysOnlyDuringWaves(t *testing.T) {
	ecs, _, _ := newWorld()
	ctx := &fakeContext{ecs: ecs}
	es := NewEconomySystem(ecs, ctx)
	id := addTower(ecs, defs.TowerSunflower, defs.LevelBasic, 0, 0) // +10 / 7000ms

	es.Update(7000, true)
	if ctx.gold != 10 {
		t.Fatalf("gold = %d, want 10", ctx.gold)
	}

	es.Update(3500, true)
	es.Update(100000, false)
	if ctx.gold != 10 {
		t.Fatalf("paid between waves: %d", ctx.gold)
	}
	es.Update(3500, true)
	if ctx.gold != 20 {
		t.Fatalf("accumulated time lost: gold = %d", ctx.gold)
	}

	es.Update(14000, true) // two intervals in one step
	if ctx.gold != 40 {
		t.Fatalf("gold = %d, want 40", ctx.gold)
	}

	es.RemoveTower(id)
	es.Update(7000, true)
	if ctx.gold != 40 {
		t.Fatal("removed tower still pays")
	}
}

func TestEconomyIgnoresOtherTowers(t *testing.T) {
	ecs, _, _ := newWorld()
	ctx := &fakeContext{ecs: ecs}
	es := NewEconomySystem(ecs, ctx)
	id := addTower(ecs, defs.TowerPeashooter, defs.LevelBasic, 0, 0)
	es.AddTower(id)
	es.Update(100000, true)
	if ctx.gold != 0 || len(ecs.Economies) != 0 {
		t.Fatal("attacker generated gold")
	}
}
