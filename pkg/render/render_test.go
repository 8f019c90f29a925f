package render

import (
	"testing"

	"go-lane-defense/internal/defs"
)

func TestHealthBarWidth(t *testing.T) {
	tests := []struct {
		health, max float64
		want        float32
	}{
		{25, 25, 40},
		{12.5, 25, 20},
		{0, 25, 0},
		{-3, 25, 0},
		{30, 25, 40},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthBarWidth(tt.health, tt.max, 40); got != tt.want {
			t.Errorf("HealthBarWidth(%v, %v) = %v, want %v", tt.health, tt.max, got, tt.want)
		}
	}
}

func TestEveryTypeHasColor(t *testing.T) {
	for _, tt := range defs.AllTowerTypes {
		if _, ok := towerColors[tt]; !ok {
			t.Errorf("no color for tower %s", tt)
		}
	}
	if c := DarkenColor(TowerColor(defs.TowerSunflower)); c.R != 125 || c.A != 255 {
		t.Errorf("DarkenColor = %v", c)
	}
}
