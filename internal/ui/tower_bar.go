// internal/ui/tower_bar.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-lane-defense/internal/defs"
)

const (
	towerButtonWidth  = 96
	towerButtonHeight = 30
	towerButtonGap    = 6
)

// TowerBar - ряд кнопок выбора типа башни.
type TowerBar struct {
	types   []defs.TowerType
	buttons []*Button
}

// NewTowerBar раскладывает кнопки слева направо начиная с (x, y).
func NewTowerBar(x, y int, face font.Face) *TowerBar {
	bar := &TowerBar{}
	for i, t := range defs.AllTowerTypes {
		left := x + i*(towerButtonWidth+towerButtonGap)
		rect := image.Rect(left, y, left+towerButtonWidth, y+towerButtonHeight)
		bar.types = append(bar.types, t)
		bar.buttons = append(bar.buttons, NewButton(rect, "", face))
	}
	return bar
}

// TypeAt возвращает тип башни под точкой.
func (b *TowerBar) TypeAt(x, y int) (defs.TowerType, bool) {
	for i, btn := range b.buttons {
		if btn.Contains(x, y) {
			return b.types[i], true
		}
	}
	return defs.TowerNone, false
}

// Draw рисует кнопки; недоступные по цене затемнены.
func (b *TowerBar) Draw(screen *ebiten.Image, selected defs.TowerType, gold int) {
	for i, btn := range b.buttons {
		t := b.types[i]
		stats, _ := defs.LookupTower(t, defs.LevelBasic)
		btn.Text = fmt.Sprintf("%d %s %d", i+1, shortName(t), stats.Cost)
		btn.Disabled = stats.Cost > gold
		btn.Draw(screen, t == selected)
	}
}

func shortName(t defs.TowerType) string {
	name := defs.Info(t).Name
	if len(name) > 6 {
		return name[:6]
	}
	return name
}
