// internal/system/wave.go
package system

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// WavePhase - состояние волны.
type WavePhase int

const (
	WaveIdle      WavePhase = iota
	WaveSpawning            // есть не сработавшие таймеры
	WaveDraining            // все враги вышли, ждём их гибели или прорыва
	WaveCompleted
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WaveCompleted:
		return "completed"
	}
	return fmt.Sprintf("WavePhase(%d)", int(p))
}

// WaveSystem планирует появление врагов и отслеживает завершение волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	wave            *component.Wave
	phase           WavePhase
	activeEnemies   map[types.EntityID]struct{}
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		activeEnemies:   make(map[types.EntityID]struct{}),
	}
}

// BuildSpawnQueue flattens the groups into one time-ordered queue. Group delays
// stack on top of everything scheduled before them.
func BuildSpawnQueue(cfg defs.WaveDefinition, start float64) []component.SpawnTimer {
	timers := make([]component.SpawnTimer, 0, cfg.TotalEnemies())
	current := 0.0
	for _, g := range cfg.Groups {
		current += g.StartDelay
		for i := 0; i < g.Count; i++ {
			timers = append(timers, component.SpawnTimer{At: start + current, EnemyType: g.EnemyType})
			current += cfg.SpawnInterval
		}
	}
	return timers
}

// StartWave schedules wave n. It is a no-op returning false while another wave
// is in progress.
func (s *WaveSystem) StartWave(n int, now float64) bool {
	if s.InProgress() {
		return false
	}
	cfg := defs.WaveConfig(n)
	s.wave = &component.Wave{
		Number:    n,
		StartedAt: now,
		Bonus:     cfg.WaveBonus,
		Timers:    BuildSpawnQueue(cfg, now),
	}
	s.phase = WaveSpawning
	if len(s.wave.Timers) == 0 {
		s.phase = WaveDraining
	}

	log.Printf("Wave %d started: %d enemies, interval %.0fms", n, len(s.wave.Timers), cfg.SpawnInterval)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{
		Wave:       n,
		Difficulty: defs.DifficultyMultiplier(n),
		Enemies:    len(s.wave.Timers),
	}})
	return true
}

// StopWave cancels every pending spawn and returns to idle without completion.
// Enemies already on the field keep moving.
func (s *WaveSystem) StopWave() bool {
	if !s.InProgress() {
		return false
	}
	cancelled := 0
	for i := s.wave.Next; i < len(s.wave.Timers); i++ {
		if !s.wave.Timers[i].Cancelled {
			s.wave.Timers[i].Cancelled = true
			cancelled++
		}
	}
	s.wave.Next = len(s.wave.Timers)
	s.phase = WaveIdle

	log.Printf("Wave %d stopped, %d spawns cancelled", s.wave.Number, cancelled)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStopped, Data: event.WaveStoppedData{
		Wave:      s.wave.Number,
		Cancelled: cancelled,
	}})
	return true
}

// Update fires every timer due at or before now, in queue order.
func (s *WaveSystem) Update(now float64) {
	if s.phase != WaveSpawning {
		return
	}
	for s.wave.Next < len(s.wave.Timers) && s.wave.Timers[s.wave.Next].At <= now {
		timer := &s.wave.Timers[s.wave.Next]
		s.wave.Next++
		if timer.Cancelled {
			continue
		}
		timer.Fired = true
		s.spawnEnemy(timer.EnemyType)
	}
	if s.wave.Next >= len(s.wave.Timers) {
		s.phase = WaveDraining
	}
}

// CheckCompletion completes the wave once every spawn has fired and no
// registered enemy remains. waveCompleted is emitted at most once per wave.
func (s *WaveSystem) CheckCompletion() bool {
	if s.phase != WaveDraining || len(s.activeEnemies) > 0 {
		return false
	}
	s.phase = WaveCompleted
	log.Printf("Wave %d completed, bonus %d", s.wave.Number, s.wave.Bonus)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveCompletedData{
		Wave:  s.wave.Number,
		Bonus: s.wave.Bonus,
	}})
	return true
}

func (s *WaveSystem) spawnEnemy(enemyType defs.EnemyType) {
	def, ok := defs.LookupEnemy(enemyType)
	if !ok {
		panic(fmt.Sprintf("unknown enemy type %q", enemyType))
	}

	lane := defs.ChooseLane(s.rng.Float64())
	id := s.ecs.NewEntity()
	spawn := SpawnPoint(lane)
	s.ecs.Positions[id] = &component.Position{X: spawn.X, Y: spawn.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed * config.CellSize}
	s.ecs.Paths[id] = &component.Path{Points: LanePath(lane, enemyType.IsFlying())}
	enemy := &component.Enemy{
		Type:      enemyType,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Reward:    def.Reward,
		Armor:     def.Armor,
		Scale:     def.Scale,
		Lane:      lane,
	}
	s.ecs.Enemies[id] = enemy
	s.RegisterEnemy(id)

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{ID: id, Enemy: *enemy}})
}

// RegisterEnemy adds the enemy to the active set. Idempotent.
func (s *WaveSystem) RegisterEnemy(id types.EntityID) {
	s.activeEnemies[id] = struct{}{}
}

// UnregisterEnemy removes the enemy from the active set. Idempotent.
func (s *WaveSystem) UnregisterEnemy(id types.EntityID) {
	delete(s.activeEnemies, id)
}

// ActiveEnemies returns the registered enemies in ID order.
func (s *WaveSystem) ActiveEnemies() []types.EntityID {
	return slices.Sorted(maps.Keys(s.activeEnemies))
}

func (s *WaveSystem) ActiveCount() int { return len(s.activeEnemies) }

func (s *WaveSystem) Phase() WavePhase { return s.phase }

// InProgress - волна идёт: враги ещё появляются или живы.
func (s *WaveSystem) InProgress() bool {
	return s.phase == WaveSpawning || s.phase == WaveDraining
}

// CurrentWave returns the number of the last started wave, 0 before the first.
func (s *WaveSystem) CurrentWave() int {
	if s.wave == nil {
		return 0
	}
	return s.wave.Number
}

// PendingSpawns returns how many enemies are still scheduled.
func (s *WaveSystem) PendingSpawns() int {
	if s.wave == nil || s.phase != WaveSpawning {
		return 0
	}
	return s.wave.Pending()
}
