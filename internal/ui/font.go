// internal/ui/font.go
package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace - встроенный моноширинный шрифт, файл шрифта не нужен.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}
