// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.RGBA
	ActiveColor color.RGBA
	Disabled    bool
	Font        font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   color.White,
		BgColor:     color.RGBA{60, 60, 80, 255},
		ActiveColor: color.RGBA{70, 130, 180, 255},
		Font:        face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, active bool) {
	bg := b.BgColor
	if active {
		bg = b.ActiveColor
	}
	if b.Disabled {
		bg.A = 110
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{30, 30, 40, 255}, true)

	textBounds := text.BoundString(b.Font, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, b.Font, textX, textY, b.TextColor)
}
