// internal/component/game_state.go
package component

import "go-lane-defense/internal/defs"

// GamePhase - фаза партии
type GamePhase int

const (
	BuildState GamePhase = iota
	WaveState
	OverState
)

func (p GamePhase) String() string {
	switch p {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case OverState:
		return "over"
	}
	return "unknown"
}

// GameState - компонент для хранения состояния игры
type GameState struct {
	Phase    GamePhase
	Wave     int // номер последней начатой волны
	Paused   bool
	Won      bool
	Selected defs.TowerType
}
