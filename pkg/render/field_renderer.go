// pkg/render/field_renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/grid"
)

// Overlay - динамические подсветки поверх поля.
type Overlay struct {
	Hover    *grid.Coord // клетка под курсором
	Selected *grid.Coord // выбранная башня
}

// FieldRenderer рисует сетку 5×9, а поверх неё сущности.
type FieldRenderer struct {
	fontFace   font.Face
	colors     *FieldColors
	fieldImage *ebiten.Image // предрендеренный задник
	entities   *EntityRenderer
}

func NewFieldRenderer(ecs *entity.ECS, fontFace font.Face, colors *FieldColors) *FieldRenderer {
	r := &FieldRenderer{
		fontFace:   fontFace,
		colors:     colors,
		fieldImage: ebiten.NewImage(config.ScreenWidth, int(config.FieldHeight)),
		entities:   NewEntityRenderer(ecs, fontFace),
	}
	// Отрисовываем поле один раз при инициализации
	r.RenderFieldImage()
	return r
}

// RenderFieldImage создаёт предрендеренное изображение задника
func (r *FieldRenderer) RenderFieldImage() {
	r.fieldImage.Clear()
	r.fieldImage.Fill(r.colors.BackgroundColor)

	for gy := 0; gy < config.GridRows; gy++ {
		for gx := 0; gx < config.GridCols; gx++ {
			fill := r.colors.LaneColor
			if (gx+gy)%2 == 1 {
				fill = r.colors.LaneAltColor
			}
			x, y := float32(gx)*config.CellSize, float32(gy)*config.CellSize
			vector.DrawFilledRect(r.fieldImage, x, y, config.CellSize, config.CellSize, fill, false)
			vector.StrokeRect(r.fieldImage, x, y, config.CellSize, config.CellSize, r.colors.StrokeWidth/2, r.colors.GridLineColor, false)
		}
		label := fmt.Sprintf("%d", gy+1)
		text.Draw(r.fieldImage, label, r.fontFace, 4, int(grid.LaneY(gy))+4, r.colors.TextDarkColor)
	}
}

// Draw рисует задник, подсветки и сущности.
func (r *FieldRenderer) Draw(screen *ebiten.Image, overlay Overlay) {
	screen.DrawImage(r.fieldImage, nil)

	if overlay.Hover != nil {
		r.highlight(screen, *overlay.Hover, color.RGBA{255, 255, 255, 40}, 0)
	}

	r.entities.Draw(screen)

	if overlay.Selected != nil {
		r.highlight(screen, *overlay.Selected, config.SelectionColor, r.colors.StrokeWidth)
		r.entities.DrawRange(screen, *overlay.Selected)
	}
}

// highlight заливает клетку (width == 0) или обводит её.
func (r *FieldRenderer) highlight(screen *ebiten.Image, c grid.Coord, clr color.Color, width float32) {
	x, y := float32(c.X)*config.CellSize, float32(c.Y)*config.CellSize
	if width == 0 {
		vector.DrawFilledRect(screen, x, y, config.CellSize, config.CellSize, clr, false)
		return
	}
	vector.StrokeRect(screen, x+width, y+width, config.CellSize-2*width, config.CellSize-2*width, width, clr, true)
}
