// internal/state/game_state.go
package state

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/grid"
	"go-lane-defense/internal/ui"
	"go-lane-defense/pkg/render"
)

// клавиши выбора башни в порядке defs.AllTowerTypes
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState - состояние игры
type GameState struct {
	sm             *StateMachine
	settings       config.Settings
	game           *game.Game
	renderer       *render.FieldRenderer
	hud            *ui.HUD
	towerBar       *ui.TowerBar
	indicator      *ui.StateIndicator
	pauseButton    *ui.PauseButton
	speedButton    *ui.SpeedButton
	waveIndicator  *ui.WaveIndicator
	livesIndicator *ui.LivesIndicator
	infoPanel      *ui.InfoPanel
	selected       *grid.Coord
	lastClickTime  time.Time
}

func NewGameState(sm *StateMachine, settings config.Settings) *GameState {
	gameLogic := game.NewGame(settings)
	face := ui.DefaultFace()
	hudY := float32(config.FieldHeight)

	gs := &GameState{
		sm:             sm,
		settings:       settings,
		game:           gameLogic,
		renderer:       render.NewFieldRenderer(gameLogic.ECS, face, render.DefaultFieldColors()),
		hud:            ui.NewHUD(hudY, face),
		towerBar:       ui.NewTowerBar(10, int(hudY)+10, face),
		indicator:      ui.NewStateIndicator(float32(config.ScreenWidth-40), hudY+config.HUDHeight/2, 20),
		pauseButton:    ui.NewPauseButton(float32(config.ScreenWidth-100), hudY+config.HUDHeight/2, 10, color.RGBA{200, 200, 200, 255}, color.RGBA{60, 200, 90, 255}),
		speedButton:    ui.NewSpeedButton(float32(config.ScreenWidth-150), hudY+config.HUDHeight/2, 10, []color.Color{color.RGBA{200, 200, 200, 255}, color.RGBA{240, 200, 60, 255}, color.RGBA{240, 90, 60, 255}}),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth-220, int(hudY)+30, face),
		livesIndicator: ui.NewLivesIndicator(10, hudY+58, face),
		infoPanel:      ui.NewInfoPanel(face, face),
	}

	gameLogic.EventDispatcher.SubscribeAll(event.ListenerFunc(gs.onEvent))
	return gs
}

// onEvent выводит отказы в HUD и снимает выделение с исчезнувших башен.
func (g *GameState) onEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.PlacementFailedData:
		g.hud.Flash(data.Message)
	case event.CommandRejectedData:
		g.hud.Flash(data.Message)
	case event.WaveCompletedData:
		g.hud.Flash("Wave cleared")
	case event.GameOverData:
		if data.Won {
			g.hud.Flash("Victory! Press R to restart")
		} else {
			g.hud.Flash("Defeat. Press R to restart")
		}
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.pauseButton.SetPaused(g.game.Paused())

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.openPause()
		return
	}
	if g.game.Over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sm.SetState(NewGameState(g.sm, g.settings))
		return
	}

	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.game.SelectTowerType(defs.AllTowerTypes[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.game.StopWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) && g.selected != nil {
		g.game.UpgradeTower(g.selected.X, g.selected.Y)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.speedButton.ToggleState()
	}

	g.game.Tick(deltaTime * 1000 * g.speedButton.Multiplier())
	g.dropStaleSelection()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleFieldClick(x, y, ebiten.MouseButtonLeft)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleFieldClick(x, y, ebiten.MouseButtonRight)
		g.lastClickTime = time.Now()
	}
}

func (g *GameState) openPause() {
	if g.game.Over() {
		return
	}
	g.pauseButton.HandleClick()
	g.sm.Push(NewPauseState(g.sm, g))
}

// handleUIClick обрабатывает клики по элементам UI; false - клик по полю.
func (g *GameState) handleUIClick(x, y int) bool {
	cooled := time.Since(g.lastClickTime) >= time.Duration(config.ClickCooldown)*time.Millisecond
	if t, ok := g.towerBar.TypeAt(x, y); ok {
		if g.game.Selected() == t {
			t = defs.TowerNone
		}
		g.game.SelectTowerType(t)
		return true
	}
	if g.indicator.Contains(x, y) {
		if !cooled {
			return true
		}
		g.indicator.HandleClick()
		if g.game.WaveSystem.InProgress() {
			g.game.StopWave()
		} else {
			g.game.StartNextWave()
		}
		return true
	}
	if g.pauseButton.Contains(x, y) {
		if cooled {
			g.openPause()
		}
		return true
	}
	if g.speedButton.Contains(x, y) {
		if cooled {
			g.speedButton.ToggleState()
		}
		return true
	}
	if g.infoPanel.Contains(x, y) {
		if g.selected != nil {
			switch g.infoPanel.ActionAt(x, y) {
			case ui.PanelUpgrade:
				g.game.UpgradeTower(g.selected.X, g.selected.Y)
			case ui.PanelSell:
				g.game.SellTower(g.selected.X, g.selected.Y)
			}
		}
		return true
	}
	return y >= int(config.FieldHeight)
}

// handleFieldClick: левый клик ставит башню или выделяет её, а по соседней
// такой же башне объединяет; правый продаёт.
func (g *GameState) handleFieldClick(x, y int, button ebiten.MouseButton) {
	gx, gy := grid.PixelToCell(float64(x), float64(y))
	if !g.game.Grid.InBounds(gx, gy) {
		return
	}

	if button == ebiten.MouseButtonRight {
		g.game.SellTower(gx, gy)
		return
	}

	if _, _, ok := g.game.TowerAt(gx, gy); !ok {
		g.clearSelection()
		if g.game.Selected() != defs.TowerNone {
			g.game.PlaceSelected(gx, gy)
		}
		return
	}

	if g.selected != nil && (g.selected.X != gx || g.selected.Y != gy) && g.canMergeWith(gx, gy) {
		from := *g.selected
		g.clearSelection()
		g.game.MergeTowers(from.X, from.Y, gx, gy)
		return
	}
	g.selected = &grid.Coord{X: gx, Y: gy}
	g.infoPanel.SetTarget(*g.selected)
}

func (g *GameState) canMergeWith(gx, gy int) bool {
	_, a, okA := g.game.TowerAt(g.selected.X, g.selected.Y)
	_, b, okB := g.game.TowerAt(gx, gy)
	return okA && okB && g.game.TowerSystem.CanMerge(a, b)
}

func (g *GameState) clearSelection() {
	g.selected = nil
	g.infoPanel.Hide()
}

// dropStaleSelection снимает выделение, если башню продали или объединили.
func (g *GameState) dropStaleSelection() {
	if g.selected == nil {
		return
	}
	if _, _, ok := g.game.TowerAt(g.selected.X, g.selected.Y); !ok {
		g.clearSelection()
	}
}

func (g *GameState) hoverCell() *grid.Coord {
	x, y := ebiten.CursorPosition()
	gx, gy := grid.PixelToCell(float64(x), float64(y))
	if !g.game.Grid.InBounds(gx, gy) || y >= int(config.FieldHeight) {
		return nil
	}
	return &grid.Coord{X: gx, Y: gy}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, render.Overlay{Hover: g.hoverCell(), Selected: g.selected})

	var tower *component.Tower
	if g.selected != nil {
		if _, t, ok := g.game.TowerAt(g.selected.X, g.selected.Y); ok {
			tower = &t
		}
	}
	g.infoPanel.Draw(screen, tower, g.game.TowerSystem, g.game.Gold())

	g.hud.DrawBackground(screen)
	g.towerBar.Draw(screen, g.game.Selected(), g.game.Gold())
	g.livesIndicator.Draw(screen, g.game.Lives(), g.settings.StartingLives)
	g.hud.DrawStats(screen, g.game.Gold(), g.game.Score(), len(g.game.ECS.Enemies))
	g.waveIndicator.Draw(screen, g.game.Wave())

	var stateColor color.Color
	switch g.game.Phase() {
	case component.BuildState:
		stateColor = config.BuildStateColor
	case component.WaveState:
		stateColor = config.WaveStateColor
	default:
		stateColor = config.SelectionColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
}

func (g *GameState) Exit() {}

// Game - доступ к симуляции для состояния паузы.
func (g *GameState) Game() *game.Game { return g.game }
