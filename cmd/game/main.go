// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	envFile := flag.String("env", ".env", "settings file")
	skipMenu := flag.Bool("play", false, "start straight in the game, skipping the menu")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if settings.BalancePath != "" {
		if err := defs.LoadBalance(settings.BalancePath); err != nil {
			log.Fatalf("balance: %v", err)
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, settings))
	} else {
		sm.SetState(state.NewMenuState(sm, settings))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
