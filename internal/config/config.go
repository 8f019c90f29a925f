// internal/config/config.go
package config

import "image/color"

// Поле
const (
	GridRows    = 5
	GridCols    = 9
	CellSize    = 80.0
	FieldWidth  = GridCols * CellSize // 720
	FieldHeight = GridRows * CellSize // 400

	HUDHeight    = 80
	ScreenWidth  = int(FieldWidth)
	ScreenHeight = int(FieldHeight) + HUDHeight

	MaxDeltaTime  = 0.06 // секунды, хосты ограничивают шаг кадра
	ClickCooldown = 300  // мс
)

// Боевые константы
const (
	ProjectileSpeed        = 400.0 // pixels per second
	ProjectileSize         = 12.0  // сторона квадрата снаряда
	EnemyBodySize          = 40.0  // умножается на Scale врага
	TowerBlockDistance     = 50.0
	SplashDamageMultiplier = 0.5
	BreachDamage           = 1
	SellRefundRatio        = 0.7
	FlyingArcHeight        = 100.0
	MinDamage              = 1.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	LaneColor        = color.RGBA{62, 110, 58, 255}
	LaneAltColor     = color.RGBA{72, 124, 66, 255}
	GridLineColor    = color.RGBA{40, 70, 38, 255}
	HUDColor         = color.RGBA{30, 30, 44, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	SelectionColor   = color.RGBA{255, 255, 255, 200}
	HealthBarBack    = color.RGBA{60, 0, 0, 255}
	HealthBarFront   = color.RGBA{0, 220, 60, 255}
	ProjectileColor  = color.RGBA{200, 255, 120, 255}
	SplashShellColor = color.RGBA{90, 60, 40, 255}
	EnemyColor       = color.RGBA{120, 120, 140, 255}
	StrokeWidth      = 2.0
)
