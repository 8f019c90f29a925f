// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// NewMenuButton создает крупную кнопку для меню.
func NewMenuButton(rect image.Rectangle, label string, face font.Face) *Button {
	b := NewButton(rect, label, face)
	b.BgColor = color.RGBA{90, 90, 100, 255}
	b.ActiveColor = color.RGBA{130, 130, 150, 255}
	b.TextColor = color.Black
	return b
}
