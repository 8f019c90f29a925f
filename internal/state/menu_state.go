// internal/state/menu_state.go
package state

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"
)

// MenuState - стартовый экран
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	start    *ui.Button
}

func NewMenuState(sm *StateMachine, settings config.Settings) *MenuState {
	rect := image.Rect(config.ScreenWidth/2-80, config.ScreenHeight/2, config.ScreenWidth/2+80, config.ScreenHeight/2+40)
	return &MenuState{
		sm:       sm,
		settings: settings,
		start:    ui.NewMenuButton(rect, "Start", ui.DefaultFace()),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.start.Contains(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.settings))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := ui.DefaultFace()
	title := "LANE DEFENSE"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3, color.White)

	x, y := ebiten.CursorPosition()
	m.start.Draw(screen, m.start.Contains(x, y))
}

func (m *MenuState) Exit() {}
