// internal/defs/lanes.go
package defs

// LaneWeights - вероятность появления врага на каждой линии.
// Средние линии выпадают чаще.
var LaneWeights = []float64{0.15, 0.25, 0.30, 0.20, 0.10}

// FallbackLane используется, если выборка не попала ни в один вес.
const FallbackLane = 2

// ChooseLane maps a uniform sample r in [0, 1) onto a lane index by walking
// the cumulative weights.
func ChooseLane(r float64) int {
	cumulative := 0.0
	for lane, w := range LaneWeights {
		cumulative += w
		if r < cumulative {
			return lane
		}
	}
	return FallbackLane
}
