// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - две полосы во время игры, треугольник «play» на паузе.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		drawPolygon(screen, []point{
			{b.X - rectSize, b.Y - rectSize*1.2},
			{b.X + rectSize, b.Y},
			{b.X - rectSize, b.Y + rectSize*1.2},
		}, b.PlayColor)
		return
	}

	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, left, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, left, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

// SetPaused синхронизирует кнопку с состоянием игры.
func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.IsPaused = paused
		b.LastToggleTime = time.Now()
	}
}

// HandleClick запускает анимацию нажатия.
func (b *PauseButton) HandleClick() {
	b.LastClickTime = time.Now()
}
