// internal/component/movement.go
package component

// Position - компонент позиции (центр сущности, пиксели)
type Position struct {
	X, Y float64
}

// Velocity - компонент скорости, пикселей в секунду
type Velocity struct {
	Speed float64
}

// Path - компонент пути по точкам
type Path struct {
	Points       []Position
	CurrentIndex int
}

// Done reports whether the last waypoint has been reached.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Points)
}
