// internal/interfaces/game_context.go
package interfaces

import "go-lane-defense/internal/types"

// GameContext - обратные вызовы систем в корень симуляции.
// Вызовы синхронные и идемпотентные по ID врага.
type GameContext interface {
	AddGold(amount int)
	EnemyKilled(id types.EntityID)
	EnemyBreached(id types.EntityID)
}
