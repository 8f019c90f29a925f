package system

import (
	"slices"
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/grid"
)

func TestStatsPanicsOnUnknownPair(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewTowerSystem().Stats(defs.TowerType("cactus"), defs.LevelBasic)
}

func TestValidatePlacement(t *testing.T) {
	ts := NewTowerSystem()
	g := grid.New()
	g.Place(4, 2, 1)

	tests := []struct {
		name   string
		gx, gy int
		want   PlacementResult
	}{
		{"free", 0, 0, PlacementOK},
		{"occupied", 4, 2, PlacementCellOccupied},
		{"right of field", 9, 0, PlacementOutOfBounds},
		{"below field", 0, 5, PlacementOutOfBounds},
		{"negative", -1, 0, PlacementOutOfBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ts.ValidatePlacement(g, tc.gx, tc.gy); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanMerge(t *testing.T) {
	ts := NewTowerSystem()
	pea := func(l defs.TowerLevel, gx, gy int) component.Tower {
		return ts.NewTower(defs.TowerPeashooter, l, gx, gy)
	}
	tests := []struct {
		name string
		a, b component.Tower
		want bool
	}{
		{"horizontal neighbours", pea(defs.LevelBasic, 2, 2), pea(defs.LevelBasic, 3, 2), true},
		{"vertical neighbours", pea(defs.LevelAdvanced, 2, 2), pea(defs.LevelAdvanced, 2, 3), true},
		{"diagonal", pea(defs.LevelBasic, 2, 2), pea(defs.LevelBasic, 3, 3), false},
		{"two apart", pea(defs.LevelBasic, 2, 2), pea(defs.LevelBasic, 4, 2), false},
		{"different level", pea(defs.LevelBasic, 2, 2), pea(defs.LevelAdvanced, 3, 2), false},
		{"elite", pea(defs.LevelElite, 2, 2), pea(defs.LevelElite, 3, 2), false},
		{"different type", pea(defs.LevelBasic, 2, 2), ts.NewTower(defs.TowerMortar, defs.LevelBasic, 3, 2), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ts.CanMerge(tc.a, tc.b); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMergeResult(t *testing.T) {
	ts := NewTowerSystem()
	a := ts.NewTower(defs.TowerPeashooter, defs.LevelBasic, 2, 2)
	b := ts.NewTower(defs.TowerPeashooter, defs.LevelBasic, 3, 2)

	got, ok := ts.MergeResult(a, b)
	if !ok {
		t.Fatal("merge rejected")
	}
	if got.Level != defs.LevelAdvanced || got.GX != 2 || got.GY != 2 {
		t.Fatalf("result = %+v", got)
	}
	if got.Stats.Damage != 15 {
		t.Fatalf("damage = %v, want 15", got.Stats.Damage)
	}

	up := ts.NewTower(defs.TowerPeashooter, defs.LevelBasic, 2, 1)
	got, _ = ts.MergeResult(a, up)
	if got.GX != 2 || got.GY != 1 {
		t.Fatalf("vertical merge landed at (%d,%d), want (2,1)", got.GX, got.GY)
	}

	if _, ok := ts.MergeResult(a, ts.NewTower(defs.TowerPeashooter, defs.LevelBasic, 4, 4)); ok {
		t.Fatal("ineligible merge accepted")
	}
}

func TestUpgradeCostAndSellValue(t *testing.T) {
	ts := NewTowerSystem()
	if got := ts.UpgradeCost(defs.TowerPeashooter, defs.LevelBasic); got != 75 {
		t.Errorf("UpgradeCost basic = %d, want 75", got)
	}
	if got := ts.UpgradeCost(defs.TowerMortar, defs.LevelAdvanced); got != 200 {
		t.Errorf("UpgradeCost advanced mortar = %d, want 200", got)
	}
	if got := ts.UpgradeCost(defs.TowerPeashooter, defs.LevelElite); got != 0 {
		t.Errorf("UpgradeCost elite = %d, want 0", got)
	}
	// basic -> elite через два апгрейда стоит ровно разницу цен
	for _, tt := range defs.AllTowerTypes {
		total := ts.UpgradeCost(tt, defs.LevelBasic) + ts.UpgradeCost(tt, defs.LevelAdvanced)
		want := ts.Stats(tt, defs.LevelElite).Cost - ts.Stats(tt, defs.LevelBasic).Cost
		if total != want {
			t.Errorf("%s: upgrades cost %d, want %d", tt, total, want)
		}
	}

	tests := []struct {
		t    defs.TowerType
		l    defs.TowerLevel
		want int
	}{
		{defs.TowerPeashooter, defs.LevelBasic, 70},
		{defs.TowerMortar, defs.LevelBasic, 122},
		{defs.TowerSunflower, defs.LevelAdvanced, 59},
		{defs.TowerWallnut, defs.LevelBasic, 52},
	}
	for _, tc := range tests {
		if got := ts.SellValue(ts.NewTower(tc.t, tc.l, 0, 0)); got != tc.want {
			t.Errorf("SellValue(%s %s) = %d, want %d", tc.t, tc.l, got, tc.want)
		}
	}
}

func TestAffordableTypes(t *testing.T) {
	ts := NewTowerSystem()
	got := ts.AffordableTypes(100)
	want := []defs.TowerType{defs.TowerSunflower, defs.TowerWallnut, defs.TowerPeashooter}
	if !slices.Equal(got, want) {
		t.Fatalf("AffordableTypes(100) = %v, want %v", got, want)
	}
	if len(ts.AffordableTypes(49)) != 0 {
		t.Fatal("nothing is affordable with 49 gold")
	}
	if ts.Ability(defs.TowerWallnut) != "Block Path" {
		t.Errorf("Ability = %q", ts.Ability(defs.TowerWallnut))
	}
	if ts.Description(defs.TowerNone) != "Unknown tower type" {
		t.Errorf("Description(none) = %q", ts.Description(defs.TowerNone))
	}
}
