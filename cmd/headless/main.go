// cmd/headless/main.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/journal"
)

// maxWaveMs - предел времени одной волны, чтобы застрявшая волна не крутилась вечно.
const maxWaveMs = 10 * 60 * 1000

// buildStep - шаг сценария расстановки.
type buildStep struct {
	tower  defs.TowerType
	gx, gy int
}

// opening - порядок расстановки башен между волнами.
var opening = []buildStep{
	{defs.TowerPeashooter, 1, 2},
	{defs.TowerSunflower, 0, 2},
	{defs.TowerPeashooter, 1, 1},
	{defs.TowerPeashooter, 1, 3},
	{defs.TowerPeashooter, 1, 0},
	{defs.TowerPeashooter, 1, 4},
	{defs.TowerSunflower, 0, 1},
	{defs.TowerSunflower, 0, 3},
	{defs.TowerMortar, 2, 2},
	{defs.TowerWallnut, 6, 2},
	{defs.TowerWallnut, 6, 1},
	{defs.TowerWallnut, 6, 3},
	{defs.TowerPeashooter, 2, 1},
	{defs.TowerPeashooter, 2, 3},
	{defs.TowerWallnut, 6, 0},
	{defs.TowerWallnut, 6, 4},
	{defs.TowerPeashooter, 2, 0},
	{defs.TowerPeashooter, 2, 4},
	{defs.TowerMortar, 3, 1},
	{defs.TowerMortar, 3, 3},
}

func main() {
	envFile := flag.String("env", ".env", "settings file")
	waves := flag.Int("waves", 10, "number of waves to play")
	seed := flag.Int64("seed", 0, "PRNG seed (0 = settings or time)")
	journalPath := flag.String("journal", "", "write a JSON lines journal to this file")
	verbose := flag.Bool("v", false, "print every kill and breach")
	flag.Parse()

	settings, err := config.LoadSettings(*envFile)
	if err != nil {
		log.Fatalf("settings: %v", err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *journalPath != "" {
		settings.JournalPath = *journalPath
	}
	if settings.BalancePath != "" {
		if err := defs.LoadBalance(settings.BalancePath); err != nil {
			log.Fatalf("balance: %v", err)
		}
	}

	g := app.NewGame(settings)
	apply := g.Apply

	var rec *journal.Recorder
	if settings.JournalPath != "" {
		f, err := os.Create(settings.JournalPath)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		w := bufio.NewWriter(f)
		defer func() {
			if err := w.Flush(); err != nil {
				log.Printf("journal flush: %v", err)
			}
			f.Close()
		}()
		rec = journal.NewRecorder(w, g)
		apply = rec.Apply
		log.Printf("Journal %s, session %s", settings.JournalPath, rec.Session())
	}

	stats := &runStats{}
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		stats.observe(e, *verbose)
	}))

	for n := 0; n < *waves && !g.Over(); n++ {
		autoBuild(g, apply)
		mustApply(apply, app.StartNextWaveCommand())
		start := g.Time()
		for g.WaveSystem.InProgress() && !g.Over() && g.Time()-start < maxWaveMs {
			g.Tick(settings.TickMs)
		}
		fmt.Printf("wave %2d  gold %5d  lives %2d  score %6d  towers %2d  kills %4d  breaches %2d\n",
			g.Wave(), g.Gold(), g.Lives(), g.Score(), len(g.ECS.Towers), stats.kills, stats.breaches)
	}

	if rec != nil {
		rec.Mark("end")
		if err := rec.Err(); err != nil {
			log.Printf("journal: %v", err)
		}
	}

	switch {
	case g.Won():
		fmt.Printf("victory at wave %d, score %d\n", g.Wave(), g.Score())
	case g.Over():
		fmt.Printf("defeat at wave %d, score %d\n", g.Wave(), g.Score())
	default:
		fmt.Printf("stopped after wave %d, score %d\n", g.Wave(), g.Score())
	}
	fmt.Printf("simulated %.1fs, %d shots, %d rejected commands\n", g.Time()/1000, stats.shots, stats.rejected)
}

// autoBuild walks the opening, then upgrades whatever it can afford.
func autoBuild(g *app.Game, apply func(app.Command) error) {
	for _, step := range opening {
		if !g.Grid.IsFree(step.gx, step.gy) {
			continue
		}
		if g.TowerSystem.Stats(step.tower, defs.LevelBasic).Cost > g.Gold() {
			return
		}
		mustApply(apply, app.PlaceTowerCommand(step.tower, step.gx, step.gy))
	}
	for _, step := range opening {
		_, tower, ok := g.TowerAt(step.gx, step.gy)
		if !ok || tower.Level.IsTerminal() || !tower.Type.CanAttack() {
			continue
		}
		if g.TowerSystem.UpgradeCost(tower.Type, tower.Level) <= g.Gold() {
			mustApply(apply, app.UpgradeTowerCommand(step.gx, step.gy))
		}
	}
}

func mustApply(apply func(app.Command) error, cmd app.Command) {
	if err := apply(cmd); err != nil {
		log.Fatalf("command %s: %v", cmd.Type, err)
	}
}

type runStats struct {
	kills, breaches, shots, rejected int
}

func (s *runStats) observe(e event.Event, verbose bool) {
	switch e.Type {
	case event.EnemyKilled:
		s.kills++
		if verbose {
			d := e.Data.(event.EnemyKilledData)
			fmt.Printf("  killed %s #%d (+%d)\n", d.Enemy.Type, d.ID, d.Reward)
		}
	case event.EnemyReachedEnd:
		s.breaches++
		if verbose {
			d := e.Data.(event.EnemyReachedEndData)
			fmt.Printf("  breach by %s #%d in lane %d\n", d.Enemy.Type, d.ID, d.Enemy.Lane)
		}
	case event.ProjectileFired:
		s.shots++
	case event.PlacementFailed, event.CommandRejected:
		s.rejected++
	}
}
