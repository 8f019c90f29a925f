// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedMultipliers - множители скорости симуляции по состояниям кнопки.
var SpeedMultipliers = []float64{1, 2, 4}

// SpeedButton переключает скорость симуляции по кругу.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	drawPolygon(screen, []point{
		{b.X - width, b.Y - height/2},
		{b.X, b.Y},
		{b.X - width, b.Y + height/2},
	}, clr)
	drawPolygon(screen, []point{
		{b.X - width + offset, b.Y - height/2},
		{b.X + offset, b.Y},
		{b.X - width + offset, b.Y + height/2},
	}, clr)
}

func (b *SpeedButton) Contains(x, y int) bool {
	// Используем круг для определения попадания, так как форма сложная
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(SpeedMultipliers)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// Multiplier - текущий множитель скорости.
func (b *SpeedButton) Multiplier() float64 {
	return SpeedMultipliers[b.CurrentState%len(SpeedMultipliers)]
}
