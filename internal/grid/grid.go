// internal/grid/grid.go
package grid

import (
	"fmt"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/types"
)

// Cell - клетка поля. TowerID имеет смысл только при Occupied.
type Cell struct {
	Occupied bool
	TowerID  types.EntityID
}

// Coord - координата клетки: X - колонка 0..8, Y - линия 0..4.
type Coord struct {
	X, Y int
}

// Grid - поле 5×9. Каждая занятая клетка указывает ровно на одну живую башню.
type Grid struct {
	cells [config.GridRows][config.GridCols]Cell
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{}
}

// InBounds reports whether (gx, gy) lies on the field.
func (g *Grid) InBounds(gx, gy int) bool {
	return gx >= 0 && gx < config.GridCols && gy >= 0 && gy < config.GridRows
}

func (g *Grid) mustBeInBounds(gx, gy int) {
	if !g.InBounds(gx, gy) {
		panic(fmt.Sprintf("grid: cell (%d,%d) is out of bounds", gx, gy))
	}
}

// At returns the cell at (gx, gy). Panics outside the field.
func (g *Grid) At(gx, gy int) Cell {
	g.mustBeInBounds(gx, gy)
	return g.cells[gy][gx]
}

// IsFree reports whether the cell is on the field and empty.
func (g *Grid) IsFree(gx, gy int) bool {
	return g.InBounds(gx, gy) && !g.cells[gy][gx].Occupied
}

// TowerAt returns the tower occupying the cell, if any.
func (g *Grid) TowerAt(gx, gy int) (types.EntityID, bool) {
	if !g.InBounds(gx, gy) {
		return 0, false
	}
	c := g.cells[gy][gx]
	return c.TowerID, c.Occupied
}

// Place puts a tower on an empty cell. Panics if the cell is occupied.
func (g *Grid) Place(gx, gy int, id types.EntityID) {
	g.mustBeInBounds(gx, gy)
	if g.cells[gy][gx].Occupied {
		panic(fmt.Sprintf("grid: cell (%d,%d) already holds tower %d", gx, gy, g.cells[gy][gx].TowerID))
	}
	g.cells[gy][gx] = Cell{Occupied: true, TowerID: id}
}

// Remove clears the cell and returns the tower that stood there.
func (g *Grid) Remove(gx, gy int) (types.EntityID, bool) {
	g.mustBeInBounds(gx, gy)
	c := g.cells[gy][gx]
	g.cells[gy][gx] = Cell{}
	return c.TowerID, c.Occupied
}

// Swap replaces the tower on an occupied cell in one step.
func (g *Grid) Swap(gx, gy int, id types.EntityID) types.EntityID {
	g.mustBeInBounds(gx, gy)
	old := g.cells[gy][gx]
	if !old.Occupied {
		panic(fmt.Sprintf("grid: swap on empty cell (%d,%d)", gx, gy))
	}
	g.cells[gy][gx] = Cell{Occupied: true, TowerID: id}
	return old.TowerID
}

// Merge clears both source cells and places the result at target, which must
// be one of them. All checks run before any cell is touched.
func (g *Grid) Merge(a, b, target Coord, id types.EntityID) {
	g.mustBeInBounds(a.X, a.Y)
	g.mustBeInBounds(b.X, b.Y)
	if a == b {
		panic(fmt.Sprintf("grid: merge of cell (%d,%d) with itself", a.X, a.Y))
	}
	if !g.cells[a.Y][a.X].Occupied || !g.cells[b.Y][b.X].Occupied {
		panic(fmt.Sprintf("grid: merge of empty cell (%d,%d)/(%d,%d)", a.X, a.Y, b.X, b.Y))
	}
	if target != a && target != b {
		panic(fmt.Sprintf("grid: merge target (%d,%d) is neither source", target.X, target.Y))
	}
	g.cells[a.Y][a.X] = Cell{}
	g.cells[b.Y][b.X] = Cell{}
	g.cells[target.Y][target.X] = Cell{Occupied: true, TowerID: id}
}

// Find returns the cell of the tower with the given id.
func (g *Grid) Find(id types.EntityID) (Coord, bool) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if c := g.cells[y][x]; c.Occupied && c.TowerID == id {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Occupied lists occupied cells in row-major order.
func (g *Grid) Occupied() []Coord {
	var out []Coord
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Occupied {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// CellCenter returns the pixel centre of a cell.
func CellCenter(gx, gy int) (float64, float64) {
	return float64(gx)*config.CellSize + config.CellSize/2, float64(gy)*config.CellSize + config.CellSize/2
}

// PixelToCell maps a pixel position to the cell under it. The result may be
// outside the field.
func PixelToCell(x, y float64) (int, int) {
	gx := int(x / config.CellSize)
	gy := int(y / config.CellSize)
	if x < 0 {
		gx = -1
	}
	if y < 0 {
		gy = -1
	}
	return gx, gy
}

// LaneY returns the pixel y of the lane's centre line.
func LaneY(lane int) float64 {
	return float64(lane)*config.CellSize + config.CellSize/2
}
