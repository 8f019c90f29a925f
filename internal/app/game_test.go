package app

import (
	"errors"
	"math/rand/v2"
	"testing"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) lastReason(t event.EventType) event.Reason {
	evs := r.ofType(t)
	if len(evs) == 0 {
		return ""
	}
	switch data := evs[len(evs)-1].Data.(type) {
	case event.PlacementFailedData:
		return data.Reason
	case event.CommandRejectedData:
		return data.Reason
	}
	return ""
}

func newTestGame(t *testing.T, gold, lives, victory int) (*Game, *recorder) {
	t.Helper()
	s := config.DefaultSettings()
	s.Seed = 1
	s.StartingGold = gold
	s.StartingLives = lives
	s.VictoryWave = victory
	g := NewGame(s)
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	return g, rec
}

func run(g *Game, ms float64) {
	for elapsed := 0.0; elapsed < ms; elapsed += 16 {
		g.Tick(16)
	}
}

func TestPlaceTower(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)

	if !g.PlaceTower(defs.TowerPeashooter, 0, 2) {
		t.Fatal("placement rejected")
	}
	if g.Gold() != 100 {
		t.Fatalf("gold = %d, want 100", g.Gold())
	}
	placed := rec.ofType(event.TowerPlaced)
	if len(placed) != 1 {
		t.Fatalf("towerPlaced emitted %d times", len(placed))
	}
	gold := rec.ofType(event.GoldChanged)[0].Data.(event.GoldChangedData)
	if gold.Gold != 100 || gold.Change != -100 {
		t.Fatalf("goldChanged = %+v", gold)
	}

	tests := []struct {
		name   string
		tt     defs.TowerType
		gx, gy int
		reason event.Reason
	}{
		{"occupied", defs.TowerSunflower, 0, 2, event.ReasonCellOccupied},
		{"out of bounds", defs.TowerSunflower, 9, 0, event.ReasonOutOfBounds},
		{"too expensive", defs.TowerMortar, 4, 4, event.ReasonInsufficientGold},
		{"nothing selected", defs.TowerNone, 4, 4, event.ReasonNoTowerSelected},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g.PlaceTower(tc.tt, tc.gx, tc.gy) {
				t.Fatal("placement accepted")
			}
			if got := rec.lastReason(event.PlacementFailed); got != tc.reason {
				t.Fatalf("reason = %q, want %q", got, tc.reason)
			}
		})
	}
	if g.Gold() != 100 || len(g.Grid.Occupied()) != 1 || len(g.ECS.Towers) != 1 {
		t.Fatal("failed placements changed state")
	}
}

func TestPlaceSelected(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)
	if g.PlaceSelected(1, 1) {
		t.Fatal("placed without a selection")
	}
	g.SelectTowerType(defs.TowerSunflower)
	if !g.PlaceSelected(1, 1) {
		t.Fatal("placement rejected")
	}
	if _, tower, ok := g.TowerAt(1, 1); !ok || tower.Type != defs.TowerSunflower {
		t.Fatalf("tower = %+v", tower)
	}
	if len(rec.ofType(event.TowerSelected)) != 1 {
		t.Fatal("towerSelected not emitted")
	}
}

func TestMergeTowers(t *testing.T) {
	g, rec := newTestGame(t, 1000, 3, 0)
	g.PlaceTower(defs.TowerPeashooter, 2, 2)
	g.PlaceTower(defs.TowerPeashooter, 3, 2)
	aID, _, _ := g.TowerAt(2, 2)
	bID, _, _ := g.TowerAt(3, 2)

	if !g.MergeTowers(2, 2, 3, 2) {
		t.Fatal("merge rejected")
	}
	id, tower, ok := g.TowerAt(2, 2)
	if !ok || tower.Level != defs.LevelAdvanced || tower.Stats.Damage != 15 {
		t.Fatalf("merged tower = %+v", tower)
	}
	if !g.Grid.IsFree(3, 2) {
		t.Fatal("consumed cell still occupied")
	}
	if _, ok := g.ECS.Towers[aID]; ok {
		t.Fatal("source entity a survived")
	}
	if _, ok := g.ECS.Combats[bID]; ok {
		t.Fatal("cooldown of consumed tower kept")
	}
	if _, ok := g.ECS.Combats[id]; !ok || len(g.ECS.Combats) != 1 {
		t.Fatal("merged tower has no cooldown entry")
	}
	if g.Gold() != 800 {
		t.Fatalf("merge must be free: gold = %d", g.Gold())
	}
	merged := rec.ofType(event.TowerMerged)[0].Data.(event.TowerMergedData)
	if merged.Consumed != [2]types.EntityID{aID, bID} {
		t.Fatalf("consumed = %v", merged.Consumed)
	}
}

func TestMergeRejections(t *testing.T) {
	g, rec := newTestGame(t, 1000, 3, 0)
	g.PlaceTower(defs.TowerPeashooter, 2, 2)
	g.PlaceTower(defs.TowerPeashooter, 3, 3)
	g.PlaceTower(defs.TowerSunflower, 2, 3)

	tests := []struct {
		name           string
		ax, ay, bx, by int
		reason         event.Reason
	}{
		{"diagonal", 2, 2, 3, 3, event.ReasonMergeIneligible},
		{"different types", 2, 2, 2, 3, event.ReasonMergeIneligible},
		{"empty cell", 2, 2, 1, 2, event.ReasonNoTower},
		{"off field", 2, 2, 2, 5, event.ReasonOutOfBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if g.MergeTowers(tc.ax, tc.ay, tc.bx, tc.by) {
				t.Fatal("merge accepted")
			}
			if got := rec.lastReason(event.CommandRejected); got != tc.reason {
				t.Fatalf("reason = %q, want %q", got, tc.reason)
			}
		})
	}
	if len(g.Grid.Occupied()) != 3 {
		t.Fatal("rejected merge changed the grid")
	}
}

func TestSellTower(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)
	g.PlaceTower(defs.TowerSunflower, 0, 0)
	if !g.SellTower(0, 0) {
		t.Fatal("sell rejected")
	}
	if g.Gold() != 185 {
		t.Fatalf("gold = %d, want 185", g.Gold())
	}
	if !g.Grid.IsFree(0, 0) || len(g.ECS.Economies) != 0 || len(g.ECS.Towers) != 0 {
		t.Fatal("tower not fully removed")
	}
	sold := rec.ofType(event.TowerSold)[0].Data.(event.TowerSoldData)
	if sold.Refund != 35 {
		t.Fatalf("refund = %d", sold.Refund)
	}
	if g.SellTower(0, 0) || rec.lastReason(event.CommandRejected) != event.ReasonNoTower {
		t.Fatal("selling an empty cell must be rejected")
	}
}

func TestUpgradeTower(t *testing.T) {
	g, rec := newTestGame(t, 550, 3, 0)
	g.PlaceTower(defs.TowerPeashooter, 4, 1)

	if !g.UpgradeTower(4, 1) {
		t.Fatal("upgrade rejected")
	}
	if _, tower, _ := g.TowerAt(4, 1); tower.Level != defs.LevelAdvanced {
		t.Fatalf("level = %v", tower.Level)
	}
	if g.Gold() != 375 {
		t.Fatalf("gold = %d, want 375", g.Gold())
	}
	if up := rec.ofType(event.TowerUpgraded)[0].Data.(event.TowerUpgradedData); up.Cost != 75 {
		t.Fatalf("upgrade event cost = %d, want 75", up.Cost)
	}

	if !g.UpgradeTower(4, 1) {
		t.Fatal("second upgrade rejected")
	}
	if g.Gold() != 300 {
		t.Fatalf("gold = %d, want 300", g.Gold())
	}
	if g.UpgradeTower(4, 1) || rec.lastReason(event.CommandRejected) != event.ReasonMaxLevel {
		t.Fatal("elite upgrade must be rejected with max_level")
	}
	if len(g.ECS.Towers) != 1 || len(g.ECS.Combats) != 1 {
		t.Fatalf("stale entities: towers=%d combats=%d", len(g.ECS.Towers), len(g.ECS.Combats))
	}
}

func TestUpgradeNeedsGold(t *testing.T) {
	g, rec := newTestGame(t, 150, 3, 0)
	g.PlaceTower(defs.TowerPeashooter, 0, 0)
	if g.UpgradeTower(0, 0) || rec.lastReason(event.CommandRejected) != event.ReasonInsufficientGold {
		t.Fatal("upgrade without gold must be rejected")
	}
}

func TestWaveCommands(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)
	if g.StartWave(0) || rec.lastReason(event.CommandRejected) != event.ReasonInvalidWave {
		t.Fatal("wave 0 must be rejected")
	}
	if g.StopWave() || rec.lastReason(event.CommandRejected) != event.ReasonNoActiveWave {
		t.Fatal("stop without a wave must be rejected")
	}
	if !g.StartNextWave() || g.Wave() != 1 {
		t.Fatalf("StartNextWave: wave = %d", g.Wave())
	}
	if g.Phase().String() != "wave" {
		t.Fatalf("phase = %v", g.Phase())
	}
	if g.StartWave(2) || rec.lastReason(event.CommandRejected) != event.ReasonWaveActive {
		t.Fatal("second wave must be rejected while one is active")
	}
}

func TestStopWaveCancelsSpawnsWithoutCompletion(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)
	g.StartWave(1)
	run(g, 1600)
	if got := len(rec.ofType(event.EnemySpawned)); got != 2 {
		t.Fatalf("spawned before stop = %d", got)
	}
	if !g.StopWave() {
		t.Fatal("stop rejected")
	}
	run(g, 30000)

	if got := len(rec.ofType(event.EnemySpawned)); got != 2 {
		t.Fatalf("spawned after stop = %d, want 2", got)
	}
	if len(rec.ofType(event.WaveCompleted)) != 0 {
		t.Fatal("stopped wave completed")
	}
	if g.Lives() != 1 {
		t.Fatalf("lives = %d, want 1 after two breaches", g.Lives())
	}
	if g.WavePhase() != system.WaveIdle {
		t.Fatalf("wave phase = %v", g.WavePhase())
	}
}

func TestDefendedWaveCompletesOnce(t *testing.T) {
	g, rec := newTestGame(t, 1500, 3, 0)
	for lane := 0; lane < config.GridRows; lane++ {
		for col := 0; col < 3; col++ {
			if !g.PlaceTower(defs.TowerPeashooter, col, lane) {
				t.Fatalf("setup placement (%d,%d) failed", col, lane)
			}
		}
	}
	g.StartWave(1)
	run(g, 60000)

	kills := rec.ofType(event.EnemyKilled)
	breaches := rec.ofType(event.EnemyReachedEnd)
	if len(kills)+len(breaches) != 5 {
		t.Fatalf("kills %d + breaches %d != 5", len(kills), len(breaches))
	}
	if n := len(rec.ofType(event.WaveCompleted)); n != 1 {
		t.Fatalf("waveCompleted emitted %d times", n)
	}
	if g.Lives() != 3-len(breaches) {
		t.Fatalf("lives = %d", g.Lives())
	}
	wantGold := 25 + 10*len(kills)
	if g.Gold() != wantGold {
		t.Fatalf("gold = %d, want %d", g.Gold(), wantGold)
	}
	if g.Score() != wantGold {
		t.Fatalf("score = %d, want %d", g.Score(), wantGold)
	}
	if g.Phase().String() != "build" || len(g.ECS.Enemies) != 0 || g.WaveSystem.ActiveCount() != 0 {
		t.Fatal("field not clean after the wave")
	}
}

func TestEconomyPaysDuringWave(t *testing.T) {
	g, _ := newTestGame(t, 200, 3, 0)
	g.PlaceTower(defs.TowerSunflower, 0, 0)
	run(g, 10000) // no wave, no income
	if g.Gold() != 150 {
		t.Fatalf("gold between waves = %d", g.Gold())
	}
	g.StartWave(1)
	run(g, 7008)
	if g.Gold() != 160 {
		t.Fatalf("gold = %d, want 160", g.Gold())
	}
}

func TestBarriersHoldEnemies(t *testing.T) {
	g, _ := newTestGame(t, 1000, 3, 0)
	for lane := 0; lane < config.GridRows; lane++ {
		g.PlaceTower(defs.TowerWallnut, config.GridCols-1, lane)
	}
	g.StartWave(1)
	run(g, 20000)

	if g.Lives() != 3 {
		t.Fatalf("lives = %d, walls did not hold", g.Lives())
	}
	for id, pos := range g.ECS.Positions {
		if _, isEnemy := g.ECS.Enemies[id]; isEnemy && pos.X < 720 {
			t.Fatalf("enemy %d walked through the wall to x=%v", id, pos.X)
		}
	}

	for lane := 0; lane < config.GridRows; lane++ {
		g.SellTower(config.GridCols-1, lane)
	}
	run(g, 20000)
	if !g.Over() || g.Won() {
		t.Fatal("released enemies must end the game")
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g, rec := newTestGame(t, 200, 1, 0)
	g.StartWave(1)
	run(g, 12000)

	over := rec.ofType(event.GameOver)
	if len(over) != 1 || over[0].Data.(event.GameOverData).Won {
		t.Fatalf("gameOver = %+v", over)
	}
	frozen := g.Time()
	g.Tick(1000)
	if g.Time() != frozen {
		t.Fatal("clock advanced after game over")
	}
	if g.PlaceTower(defs.TowerSunflower, 0, 0) || rec.lastReason(event.CommandRejected) != event.ReasonGameOver {
		t.Fatal("commands must be rejected after game over")
	}
}

func TestVictoryWave(t *testing.T) {
	g, rec := newTestGame(t, 200, 10, 1)
	g.StartWave(1)
	run(g, 30000)
	if !g.Over() || !g.Won() {
		t.Fatalf("over=%v won=%v", g.Over(), g.Won())
	}
	if len(rec.ofType(event.GameOver)) != 1 {
		t.Fatal("gameOver must be emitted once")
	}
}

func TestPauseStopsTheClock(t *testing.T) {
	g, rec := newTestGame(t, 200, 3, 0)
	g.StartWave(1)
	g.Tick(100)
	if !g.Pause() || g.Pause() {
		t.Fatal("Pause must succeed once")
	}
	g.Tick(5000)
	if g.Time() != 100 {
		t.Fatalf("time advanced while paused: %v", g.Time())
	}
	g.TogglePause()
	g.Tick(100)
	if g.Time() != 200 {
		t.Fatalf("time = %v after resume", g.Time())
	}
	if len(rec.ofType(event.GamePaused)) != 1 || len(rec.ofType(event.GameResumed)) != 1 {
		t.Fatal("pause events missing")
	}
}

func TestApply(t *testing.T) {
	g, _ := newTestGame(t, 500, 3, 0)
	cmds := []Command{
		SelectTowerCommand(defs.TowerPeashooter),
		PlaceSelectedCommand(0, 0),
		PlaceTowerCommand(defs.TowerPeashooter, 1, 0),
		MergeTowersCommand(0, 0, 1, 0),
		StartWaveCommand(1),
		PauseCommand(),
		ResumeCommand(),
		StopWaveCommand(),
	}
	for _, cmd := range cmds {
		if err := g.Apply(cmd); err != nil {
			t.Fatalf("Apply(%s): %v", cmd.Type, err)
		}
	}
	if _, tower, ok := g.TowerAt(0, 0); !ok || tower.Level != defs.LevelAdvanced {
		t.Fatalf("tower = %+v", tower)
	}

	bad := []Command{
		{Type: "teleport"},
		{Type: CmdPlaceTower, Tower: defs.TowerPeashooter},
		{Type: CmdPlaceTower, Tower: "cactus", Cell: &CellRef{}},
		{Type: CmdMergeTowers, Cell: &CellRef{}},
		{Type: CmdSelectTower, Tower: "cactus"},
	}
	for _, cmd := range bad {
		if err := g.Apply(cmd); !errors.Is(err, ErrMalformedCommand) {
			t.Errorf("Apply(%+v) = %v, want ErrMalformedCommand", cmd, err)
		}
	}
}

func TestSameSeedSameLanes(t *testing.T) {
	lanes := func() []int {
		g, rec := newTestGame(t, 200, 100, 0)
		g.StartWave(1)
		run(g, 7000)
		var out []int
		for _, e := range rec.ofType(event.EnemySpawned) {
			out = append(out, e.Data.(event.EnemySpawnedData).Enemy.Lane)
		}
		return out
	}
	a, b := lanes(), lanes()
	if len(a) != 5 || len(a) != len(b) {
		t.Fatalf("spawned %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("lane sequences differ: %v vs %v", a, b)
		}
	}
}

// checkOccupancy сверяет сетку с ECS: каждая занятая клетка указывает на живую
// башню с теми же координатами, ни один ID не занимает две клетки, и каждая
// башня ECS стоит на своей клетке.
func checkOccupancy(t *testing.T, g *Game, step int) {
	t.Helper()
	seen := make(map[types.EntityID]bool)
	for gy := 0; gy < config.GridRows; gy++ {
		for gx := 0; gx < config.GridCols; gx++ {
			id, ok := g.Grid.TowerAt(gx, gy)
			if !ok {
				continue
			}
			if seen[id] {
				t.Fatalf("step %d: tower %d occupies two cells", step, id)
			}
			seen[id] = true
			tower, live := g.ECS.Towers[id]
			if !live {
				t.Fatalf("step %d: cell (%d,%d) points at dead tower %d", step, gx, gy, id)
			}
			if tower.GX != gx || tower.GY != gy {
				t.Fatalf("step %d: tower %d at (%d,%d), cell (%d,%d)", step, id, tower.GX, tower.GY, gx, gy)
			}
		}
	}
	if len(seen) != len(g.ECS.Towers) {
		t.Fatalf("step %d: %d towers on grid, %d in ECS", step, len(seen), len(g.ECS.Towers))
	}
}

func TestOccupancyHoldsUnderRandomCommands(t *testing.T) {
	for _, seed := range []uint64{1, 7, 42, 2024} {
		g, _ := newTestGame(t, 100000, 3, 0)
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		kinds := defs.AllTowerTypes
		for step := 0; step < 400; step++ {
			// координаты с запасом, чтобы попадать и за границы поля
			gx, gy := rng.IntN(config.GridCols+2)-1, rng.IntN(config.GridRows+2)-1
			switch rng.IntN(4) {
			case 0:
				g.PlaceTower(kinds[rng.IntN(len(kinds))], gx, gy)
			case 1:
				g.SellTower(gx, gy)
			case 2:
				dx, dy := 0, 0
				if rng.IntN(2) == 0 {
					dx = 1 - 2*rng.IntN(2)
				} else {
					dy = 1 - 2*rng.IntN(2)
				}
				g.MergeTowers(gx, gy, gx+dx, gy+dy)
			case 3:
				g.UpgradeTower(gx, gy)
			}
			checkOccupancy(t, g, step)
		}
	}
}
