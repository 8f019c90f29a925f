// internal/app/game.go
package app

import (
	"log"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS              *entity.ECS
	Grid             *grid.Grid
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	TowerSystem      *system.TowerSystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	CollisionSystem  *system.CollisionSystem
	StateSystem      *system.StateSystem

	victoryWave int
}

// NewGame initializes a new game instance.
func NewGame(settings config.Settings) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		ECS:             ecs,
		Grid:            grid.New(),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		TowerSystem:     system.NewTowerSystem(),
		WaveSystem:      system.NewWaveSystem(ecs, eventDispatcher, rng),
		victoryWave:     settings.VictoryWave,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, g)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, g)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, g)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)

	ecs.Player.Gold = settings.StartingGold
	ecs.Player.Lives = settings.StartingLives

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveCompleted, listener)

	log.Printf("New game: seed %d, gold %d, lives %d, victory wave %d",
		rng.Seed(), settings.StartingGold, settings.StartingLives, settings.VictoryWave)
	return g
}

// Tick advances the simulation by deltaMs milliseconds. Nothing happens while
// the game is paused or over.
func (g *Game) Tick(deltaMs float64) {
	if deltaMs <= 0 || g.Paused() || g.Over() {
		return
	}
	g.ECS.GameTime += deltaMs
	now := g.ECS.GameTime

	g.WaveSystem.Update(now)
	g.MovementSystem.Update(deltaMs)
	if g.Over() {
		return
	}
	g.ProjectileSystem.Update(now, deltaMs)
	g.EconomySystem.Update(deltaMs, g.WaveSystem.InProgress())
	g.CollisionSystem.Update()
	g.WaveSystem.CheckCompletion()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCompleted:
		data := e.Data.(event.WaveCompletedData)
		l.game.ECS.Player.Score += data.Bonus
		l.game.AddGold(data.Bonus)
		if l.game.victoryWave > 0 && data.Wave >= l.game.victoryWave {
			l.game.endGame(true)
		}
	}
}

// --- GameContext ---

// AddGold credits (or, with a negative amount, debits) gold and emits goldChanged.
func (g *Game) AddGold(amount int) {
	if amount == 0 {
		return
	}
	g.ECS.Player.Gold += amount
	g.EventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: event.GoldChangedData{
		Gold:   g.ECS.Player.Gold,
		Change: amount,
	}})
}

// EnemyKilled pays the reward and removes the enemy. Repeated calls for the
// same enemy are ignored.
func (g *Game) EnemyKilled(id types.EntityID) {
	enemy, ok := g.ECS.Enemies[id]
	if !ok {
		return
	}
	snapshot := *enemy
	g.WaveSystem.UnregisterEnemy(id)
	g.ECS.RemoveEntity(id)

	g.ECS.Player.Score += snapshot.Reward
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		ID:     id,
		Enemy:  snapshot,
		Reward: snapshot.Reward,
	}})
	g.AddGold(snapshot.Reward)
}

// EnemyBreached costs a life and removes the enemy. Repeated calls for the
// same enemy are ignored.
func (g *Game) EnemyBreached(id types.EntityID) {
	enemy, ok := g.ECS.Enemies[id]
	if !ok {
		return
	}
	snapshot := *enemy
	g.WaveSystem.UnregisterEnemy(id)
	g.ECS.RemoveEntity(id)

	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndData{
		ID:     id,
		Enemy:  snapshot,
		Damage: config.BreachDamage,
	}})
	if g.Over() {
		return
	}
	g.ECS.Player.Lives -= config.BreachDamage
	g.EventDispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: event.LivesChangedData{
		Lives:  g.ECS.Player.Lives,
		Change: -config.BreachDamage,
	}})
	if g.ECS.Player.Lives <= 0 {
		g.endGame(false)
	}
}

func (g *Game) endGame(won bool) {
	if g.Over() {
		return
	}
	log.Printf("Game over: won=%v wave=%d score=%d", won, g.Wave(), g.Score())
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{
		Won:   won,
		Wave:  g.Wave(),
		Score: g.Score(),
	}})
}

// --- Wave and flow commands ---

// StartWave starts wave n. Rejected while a wave is running or after game over.
func (g *Game) StartWave(n int) bool {
	switch {
	case g.Over():
		g.reject(CmdStartWave, event.ReasonGameOver, "game is over")
		return false
	case n < 1:
		g.reject(CmdStartWave, event.ReasonInvalidWave, "wave numbers start at 1")
		return false
	case g.WaveSystem.InProgress():
		g.reject(CmdStartWave, event.ReasonWaveActive, "a wave is already in progress")
		return false
	}
	return g.WaveSystem.StartWave(n, g.ECS.GameTime)
}

// StartNextWave starts the wave after the last one started.
func (g *Game) StartNextWave() bool {
	return g.StartWave(g.Wave() + 1)
}

// StopWave cancels the remaining spawns of the running wave.
func (g *Game) StopWave() bool {
	if g.Over() {
		g.reject(CmdStopWave, event.ReasonGameOver, "game is over")
		return false
	}
	if !g.WaveSystem.StopWave() {
		g.reject(CmdStopWave, event.ReasonNoActiveWave, "no wave in progress")
		return false
	}
	return true
}

// Pause freezes the clock. Pausing twice is a no-op.
func (g *Game) Pause() bool {
	if g.Over() {
		g.reject(CmdPause, event.ReasonGameOver, "game is over")
		return false
	}
	if g.Paused() {
		return false
	}
	g.ECS.GameState.Paused = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
	return true
}

// Resume unfreezes the clock.
func (g *Game) Resume() bool {
	if !g.Paused() {
		return false
	}
	g.ECS.GameState.Paused = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
	return true
}

// TogglePause - пауза/продолжение одной клавишей.
func (g *Game) TogglePause() bool {
	if g.Paused() {
		return g.Resume()
	}
	return g.Pause()
}

func (g *Game) reject(cmd CommandType, reason event.Reason, msg string) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.CommandRejected, Data: event.CommandRejectedData{
		Command: string(cmd),
		Reason:  reason,
		Message: msg,
	}})
}

// --- Read access for hosts ---

func (g *Game) Gold() int     { return g.ECS.Player.Gold }
func (g *Game) Lives() int    { return g.ECS.Player.Lives }
func (g *Game) Score() int    { return g.ECS.Player.Score }
func (g *Game) Wave() int     { return g.ECS.GameState.Wave }
func (g *Game) Time() float64 { return g.ECS.GameTime }
func (g *Game) Paused() bool  { return g.ECS.GameState.Paused }
func (g *Game) Over() bool    { return g.ECS.GameState.Phase == component.OverState }
func (g *Game) Won() bool     { return g.ECS.GameState.Won }

func (g *Game) Phase() component.GamePhase { return g.StateSystem.Current() }

func (g *Game) WavePhase() system.WavePhase { return g.WaveSystem.Phase() }

// VictoryWave returns the wave whose completion wins the game, 0 for endless.
func (g *Game) VictoryWave() int { return g.victoryWave }
