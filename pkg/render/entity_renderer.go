// pkg/render/entity_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/utils"
)

const (
	towerRadius     = 26
	healthBarHeight = 4
)

// EntityRenderer рисует башни, врагов и снаряды.
type EntityRenderer struct {
	ecs      *entity.ECS
	fontFace font.Face
}

func NewEntityRenderer(ecs *entity.ECS, fontFace font.Face) *EntityRenderer {
	return &EntityRenderer{ecs: ecs, fontFace: fontFace}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image) {
	r.drawTowers(screen)
	r.drawEnemies(screen)
	r.drawProjectiles(screen)
}

func (r *EntityRenderer) drawTowers(screen *ebiten.Image) {
	for _, id := range r.ecs.TowerIDs() {
		tower := r.ecs.Towers[id]
		x, y := grid.CellCenter(tower.GX, tower.GY)
		fill := TowerColor(tower.Type)
		stroke := DarkenColor(fill)

		if tower.Type.IsBarrier() {
			half := float32(towerRadius)
			vector.DrawFilledRect(screen, float32(x)-half, float32(y)-half, 2*half, 2*half, fill, true)
			vector.StrokeRect(screen, float32(x)-half, float32(y)-half, 2*half, 2*half, 2, stroke, true)
		} else {
			vector.DrawFilledCircle(screen, float32(x), float32(y), towerRadius+2, stroke, true)
			vector.DrawFilledCircle(screen, float32(x), float32(y), towerRadius, fill, true)
		}

		// уровень - точки под башней
		for i := 0; i < int(tower.Level); i++ {
			px := float32(x) - 10 + float32(i)*10
			vector.DrawFilledCircle(screen, px, float32(y)+towerRadius+6, 3, config.TextLightColor, true)
		}
		label := tower.Level.String()[:1]
		text.Draw(screen, label, r.fontFace, int(x)-3, int(y)+4, config.TextDarkColor)
	}
}

func (r *EntityRenderer) drawEnemies(screen *ebiten.Image) {
	for _, id := range r.ecs.EnemyIDs() {
		enemy := r.ecs.Enemies[id]
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		size := float32(enemy.BodySize(config.EnemyBodySize))
		x, y := float32(pos.X)-size/2, float32(pos.Y)-size/2

		fill := EnemyColor(enemy.Type)
		if enemy.Blocked {
			fill = DarkenColor(fill)
		}
		if enemy.Type.IsFlying() {
			// тень на линии
			shadowY := float32(grid.LaneY(enemy.Lane))
			vector.DrawFilledCircle(screen, float32(pos.X), shadowY+size/2, size/3, color.RGBA{0, 0, 0, 80}, true)
		}
		vector.DrawFilledRect(screen, x, y, size, size, fill, true)
		vector.StrokeRect(screen, x, y, size, size, 1, DarkenColor(fill), true)

		w := HealthBarWidth(enemy.Health, enemy.MaxHealth, size)
		vector.DrawFilledRect(screen, x, y-healthBarHeight-3, size, healthBarHeight, config.HealthBarBack, false)
		vector.DrawFilledRect(screen, x, y-healthBarHeight-3, w, healthBarHeight, config.HealthBarFront, false)
	}
}

func (r *EntityRenderer) drawProjectiles(screen *ebiten.Image) {
	for _, id := range r.ecs.ProjectileIDs() {
		proj := r.ecs.Projectiles[id]
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		radius := float32(config.ProjectileSize / 2)
		clr := config.ProjectileColor
		if proj.HasSplash() {
			radius *= 1.4
			clr = config.SplashShellColor
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, clr, true)
	}
}

// DrawRange обводит радиус атаки башни на клетке.
func (r *EntityRenderer) DrawRange(screen *ebiten.Image, c grid.Coord) {
	for _, id := range r.ecs.TowerIDs() {
		tower := r.ecs.Towers[id]
		if tower.GX != c.X || tower.GY != c.Y {
			continue
		}
		x, y := grid.CellCenter(c.X, c.Y)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(tower.Stats.Range*config.CellSize), 1, config.SelectionColor, true)
		if tower.Stats.HasSplash() {
			clr := config.SplashShellColor
			clr.A = 160
			vector.StrokeCircle(screen, float32(x), float32(y), float32(tower.Stats.SplashRadius*config.CellSize), 1, clr, true)
		}
		return
	}
}

// HealthBarWidth - ширина заполненной части полоски здоровья.
func HealthBarWidth(health, maxHealth float64, width float32) float32 {
	if maxHealth <= 0 {
		return 0
	}
	t := float32(utils.Clamp(health/maxHealth, 0, 1))
	return utils.Lerp(0, width, t)
}
