// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/config"
)

const messageDuration = 2500 * time.Millisecond

// HUD - нижняя полоса: золото, очки и последнее сообщение об отказе.
type HUD struct {
	Y           float32
	Font        font.Face
	message     string
	messageTime time.Time
}

func NewHUD(y float32, face font.Face) *HUD {
	return &HUD{Y: y, Font: face}
}

// Flash показывает сообщение на пару секунд.
func (h *HUD) Flash(msg string) {
	h.message = msg
	h.messageTime = time.Now()
}

// DrawBackground заливает полосу HUD.
func (h *HUD) DrawBackground(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, h.Y, float32(config.ScreenWidth), config.HUDHeight, config.HUDColor, false)
	vector.StrokeLine(screen, 0, h.Y, float32(config.ScreenWidth), h.Y, 2, config.GridLineColor, false)
}

// DrawStats пишет золото, очки и сообщение во второй строке HUD.
func (h *HUD) DrawStats(screen *ebiten.Image, gold, score int, enemies int) {
	y := int(h.Y) + 62
	line := fmt.Sprintf("Gold %d   Score %d   Enemies %d", gold, score, enemies)
	text.Draw(screen, line, h.Font, 180, y, config.TextLightColor)

	if h.message != "" && time.Since(h.messageTime) < messageDuration {
		text.Draw(screen, h.message, h.Font, 10, int(h.Y)-8, color.RGBA{255, 200, 80, 255})
	}
}
