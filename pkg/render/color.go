// pkg/render/color.go
package render

import (
	"image/color"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
)

// FieldColors holds all the color definitions needed to render the static field background.
type FieldColors struct {
	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	LaneAltColor    color.RGBA
	GridLineColor   color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DefaultFieldColors собирает цвета поля из конфига.
func DefaultFieldColors() *FieldColors {
	return &FieldColors{
		BackgroundColor: config.BackgroundColor,
		LaneColor:       config.LaneColor,
		LaneAltColor:    config.LaneAltColor,
		GridLineColor:   config.GridLineColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

var towerColors = map[defs.TowerType]color.RGBA{
	defs.TowerPeashooter: {60, 200, 70, 255},
	defs.TowerSunflower:  {250, 210, 40, 255},
	defs.TowerWallnut:    {150, 100, 50, 255},
	defs.TowerMortar:     {90, 170, 220, 255},
}

var enemyColors = map[defs.EnemyType]color.RGBA{
	defs.EnemyBasic:   {160, 160, 170, 255},
	defs.EnemyTank:    {110, 90, 140, 255},
	defs.EnemyFlying:  {200, 200, 255, 255},
	defs.EnemyBoss:    {200, 40, 40, 255},
	defs.EnemySwarm:   {230, 140, 60, 255},
	defs.EnemyArmored: {120, 130, 120, 255},
}

// TowerColor returns the fill color of a tower type.
func TowerColor(t defs.TowerType) color.RGBA {
	if c, ok := towerColors[t]; ok {
		return c
	}
	return config.SelectionColor
}

// EnemyColor returns the fill color of an enemy type.
func EnemyColor(t defs.EnemyType) color.RGBA {
	if c, ok := enemyColors[t]; ok {
		return c
	}
	return config.EnemyColor
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
