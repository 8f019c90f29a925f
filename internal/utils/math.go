// internal/utils/math.go
package utils

import (
	"math"

	putils "go-lane-defense/pkg/utils"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Distance - евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Manhattan - расстояние между клетками по сетке.
func Manhattan(ax, ay, bx, by int) int {
	return putils.Abs(ax-bx) + putils.Abs(ay-by)
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
