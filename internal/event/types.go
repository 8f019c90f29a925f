// internal/event/types.go
package event

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
)

const (
	TowerPlaced     EventType = "towerPlaced"
	TowerMerged     EventType = "towerMerged"
	TowerSold       EventType = "towerSold"
	TowerUpgraded   EventType = "towerUpgraded"
	TowerSelected   EventType = "towerSelected"
	PlacementFailed EventType = "placementFailed"
	CommandRejected EventType = "commandRejected"
	GoldChanged     EventType = "goldChanged"
	LivesChanged    EventType = "livesChanged"
	EnemySpawned    EventType = "enemySpawned"
	EnemyKilled     EventType = "enemyKilled"
	EnemyReachedEnd EventType = "enemyReachedEnd"
	WaveStarted     EventType = "waveStarted"
	WaveStopped     EventType = "waveStopped"
	WaveCompleted   EventType = "waveCompleted"
	ProjectileFired EventType = "projectileFired"
	ProjectileHit   EventType = "projectileHit"
	GameOver        EventType = "gameOver"
	GamePaused      EventType = "gamePaused"
	GameResumed     EventType = "gameResumed"
)

// Reason - машинно-читаемая причина отказа.
type Reason string

const (
	ReasonInsufficientGold Reason = "insufficient_gold"
	ReasonCellOccupied     Reason = "cell_occupied"
	ReasonOutOfBounds      Reason = "out_of_bounds"
	ReasonNoTowerSelected  Reason = "no_tower_selected"
	ReasonNoTower          Reason = "no_tower"
	ReasonMergeIneligible  Reason = "merge_ineligible"
	ReasonMaxLevel         Reason = "max_level"
	ReasonWaveActive       Reason = "wave_active"
	ReasonNoActiveWave     Reason = "no_active_wave"
	ReasonInvalidWave      Reason = "invalid_wave"
	ReasonGameOver         Reason = "game_over"
)

type TowerPlacedData struct {
	ID    types.EntityID
	Tower component.Tower
}

type TowerMergedData struct {
	ID       types.EntityID
	Result   component.Tower
	Consumed [2]types.EntityID
}

type TowerSoldData struct {
	ID     types.EntityID
	Tower  component.Tower
	Refund int
}

type TowerUpgradedData struct {
	ID    types.EntityID
	Tower component.Tower
	Cost  int
}

type TowerSelectedData struct {
	Type defs.TowerType
}

type PlacementFailedData struct {
	Reason  Reason
	Message string
}

type CommandRejectedData struct {
	Command string
	Reason  Reason
	Message string
}

type GoldChangedData struct {
	Gold   int
	Change int
}

type LivesChangedData struct {
	Lives  int
	Change int
}

type EnemySpawnedData struct {
	ID    types.EntityID
	Enemy component.Enemy
}

type EnemyKilledData struct {
	ID     types.EntityID
	Enemy  component.Enemy
	Reward int
}

type EnemyReachedEndData struct {
	ID     types.EntityID
	Enemy  component.Enemy
	Damage int
}

type WaveStartedData struct {
	Wave       int
	Difficulty float64
	Enemies    int
}

type WaveStoppedData struct {
	Wave      int
	Cancelled int // сколько появлений отменено
}

type WaveCompletedData struct {
	Wave  int
	Bonus int
}

type ProjectileFiredData struct {
	ID      types.EntityID
	TowerID types.EntityID
	Tower   component.Tower
	Damage  float64
}

type ProjectileHitData struct {
	ProjectileID types.EntityID
	EnemyID      types.EntityID
	Enemy        component.Enemy
	Damage       float64
	Splash       bool
}

type GameOverData struct {
	Won   bool
	Wave  int
	Score int
}
