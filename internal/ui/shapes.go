// internal/ui/shapes.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// whiteSubImage - центральный пиксель, чтобы не захватывать края при сэмплинге.
var whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)

type point struct{ X, Y float32 }

// drawPolygon заливает многоугольник и обводит его белым.
func drawPolygon(screen *ebiten.Image, pts []point, fill color.Color) {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()

	r, g, b, a := fill.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, pts[i].X, pts[i].Y, next.X, next.Y, 1, color.White, true)
	}
}
