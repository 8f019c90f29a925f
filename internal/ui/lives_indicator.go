// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает жизни игрока в виде ряда кружков.
type LivesIndicator struct {
	X, Y float32
	Font font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Font: face}
}

// Draw рисует кружки: красные - оставшиеся жизни, чёрные - потерянные.
// Если жизней больше LivesCols, показывается только число.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	label := fmt.Sprintf("Lives %d", max(lives, 0))
	text.Draw(screen, label, i.Font, int(i.X), int(i.Y)+4, color.White)
	if maxLives > LivesCols {
		return
	}

	startX := i.X + 64
	for j := 0; j < maxLives; j++ {
		cx := startX + float32(j)*(LivesCircleRadius*2+LivesCircleSpacing)
		clr := color.RGBA{0, 0, 0, 255}
		if j < lives {
			clr = color.RGBA{220, 40, 40, 255}
		}
		vector.DrawFilledCircle(screen, cx, i.Y, LivesCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, i.Y, LivesCircleRadius, 1, color.White, true)
	}
}
