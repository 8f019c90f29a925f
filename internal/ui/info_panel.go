// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/system"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 200
	panelBtnWidth  = 120
	panelBtnHeight = 28
)

// PanelAction - что пользователь нажал на панели.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel показывает выбранную башню и кнопки улучшения и продажи.
// Выезжает снизу поля.
type InfoPanel struct {
	IsVisible     bool
	Target        grid.Coord
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		currentY:      config.FieldHeight,
		targetY:       config.FieldHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade", face),
		SellButton:    NewButton(image.Rectangle{}, "Sell", face),
	}
}

func (p *InfoPanel) SetTarget(c grid.Coord) {
	p.Target = c
	p.IsVisible = true
	p.targetY = config.FieldHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.FieldHeight
}

// Update двигает панель к целевой позиции.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.FieldHeight {
		p.IsVisible = false
	}
}

// Contains - попадает ли точка в видимую часть панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY) && y < int(config.FieldHeight)
}

// ActionAt возвращает кнопку под точкой.
func (p *InfoPanel) ActionAt(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Contains(x, y) && !p.UpgradeButton.Disabled:
		return PanelUpgrade
	case p.SellButton.Contains(x, y):
		return PanelSell
	}
	return PanelNone
}

// Draw рисует панель для башни tower; nil - клетка опустела.
func (p *InfoPanel) Draw(screen *ebiten.Image, tower *component.Tower, towers *system.TowerSystem, gold int) {
	if !p.IsVisible && p.currentY >= config.FieldHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if tower == nil {
		return
	}
	p.drawTowerInfo(screen, tower, panelRect.Min.X+12, panelRect.Min.Y+18)

	p.SellButton.Rect = image.Rect(
		panelRect.Max.X-panelBtnWidth-12,
		panelRect.Max.Y-panelBtnHeight-10,
		panelRect.Max.X-12,
		panelRect.Max.Y-10,
	)
	p.SellButton.Text = fmt.Sprintf("Sell +%d", towers.SellValue(*tower))
	p.SellButton.Draw(screen, false)

	p.UpgradeButton.Rect = p.SellButton.Rect.Sub(image.Pt(0, panelBtnHeight+8))
	if tower.Level.IsTerminal() {
		p.UpgradeButton.Text = "Max level"
		p.UpgradeButton.Disabled = true
	} else {
		cost := towers.UpgradeCost(tower.Type, tower.Level)
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade %d", cost)
		p.UpgradeButton.Disabled = cost > gold
	}
	p.UpgradeButton.Draw(screen, false)
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, tower *component.Tower, startX, startY int) {
	info := defs.Info(tower.Type)
	title := fmt.Sprintf("%s (%s)", info.Name, tower.Level)
	text.Draw(screen, title, p.titleFontFace, startX, startY, config.TextLightColor)
	text.Draw(screen, info.Description, p.fontFace, startX, startY+lineHeight, config.TextLightColor)

	y := startY + 2*lineHeight + 4
	col2X := startX + columnSpacing
	stats := tower.Stats
	switch {
	case tower.Type.CanAttack():
		text.Draw(screen, fmt.Sprintf("Damage: %.0f", stats.Damage), p.fontFace, startX, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", stats.AttackSpeed), p.fontFace, col2X, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Range: %.2f", stats.Range), p.fontFace, startX, y, config.TextLightColor)
		if stats.HasSplash() {
			text.Draw(screen, fmt.Sprintf("Splash: %.0f / %.1f", stats.SplashDamage, stats.SplashRadius), p.fontFace, col2X, y, config.TextLightColor)
		}
	case tower.Type.IsEconomy():
		text.Draw(screen, fmt.Sprintf("Gold: +%d every %.1fs", stats.ResourceGeneration, stats.ResourceInterval/1000), p.fontFace, startX, y, config.TextLightColor)
	default:
		text.Draw(screen, info.Ability, p.fontFace, startX, y, config.TextLightColor)
	}
}
