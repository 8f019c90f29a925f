// internal/component/player.go
package component

// PlayerState хранит ресурсы игрока.
type PlayerState struct {
	Gold  int
	Lives int
	Score int
}
