package system

import (
	"testing"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
)

func newWaveSystem() (*WaveSystem, *recorder) {
	ecs, d, rec := newWorld()
	return NewWaveSystem(ecs, d, utils.NewPRNGService(1)), rec
}

func TestBuildSpawnQueueStacksDelays(t *testing.T) {
	q := BuildSpawnQueue(defs.WaveConfig(1), 100)
	if len(q) != 5 {
		t.Fatalf("len = %d, want 5", len(q))
	}
	for i, timer := range q {
		if want := 100 + float64(i)*1500; timer.At != want {
			t.Errorf("timer %d at %v, want %v", i, timer.At, want)
		}
	}

	// wave 3: six basics at 0..6000, then +1200 interval +2000 delay
	q = BuildSpawnQueue(defs.WaveConfig(3), 0)
	if len(q) != 8 {
		t.Fatalf("wave 3 len = %d", len(q))
	}
	if q[5].At != 6000 || q[6].At != 9200 || q[7].At != 10400 {
		t.Fatalf("wave 3 times = %v %v %v", q[5].At, q[6].At, q[7].At)
	}
	if q[6].EnemyType != defs.EnemyTank {
		t.Fatalf("wave 3 group 2 type = %s", q[6].EnemyType)
	}
}

func TestWaveOneSpawnsFiveAtInterval(t *testing.T) {
	ws, rec := newWaveSystem()
	if !ws.StartWave(1, 0) {
		t.Fatal("StartWave rejected")
	}
	if ws.Phase() != WaveSpawning {
		t.Fatalf("phase = %v", ws.Phase())
	}

	ws.Update(0)
	if got := len(rec.ofType(event.EnemySpawned)); got != 1 {
		t.Fatalf("spawned at t=0: %d", got)
	}
	ws.Update(1499)
	if got := len(rec.ofType(event.EnemySpawned)); got != 1 {
		t.Fatalf("spawned at t=1499: %d", got)
	}
	ws.Update(1500)
	if got := len(rec.ofType(event.EnemySpawned)); got != 2 {
		t.Fatalf("spawned at t=1500: %d", got)
	}
	ws.Update(6000)
	if got := len(rec.ofType(event.EnemySpawned)); got != 5 {
		t.Fatalf("spawned at t=6000: %d", got)
	}
	if ws.Phase() != WaveDraining {
		t.Fatalf("phase = %v, want draining", ws.Phase())
	}
	if ws.ActiveCount() != 5 {
		t.Fatalf("active = %d", ws.ActiveCount())
	}
}

func TestStartWaveWhileActiveIsNoop(t *testing.T) {
	ws, rec := newWaveSystem()
	ws.StartWave(1, 0)
	if ws.StartWave(2, 10) {
		t.Fatal("second StartWave accepted")
	}
	if ws.CurrentWave() != 1 || len(rec.ofType(event.WaveStarted)) != 1 {
		t.Fatal("second StartWave changed state")
	}
}

func TestStopWaveCancelsPendingSpawns(t *testing.T) {
	ws, rec := newWaveSystem()
	ws.StartWave(1, 0)
	ws.Update(1500)
	if !ws.StopWave() {
		t.Fatal("StopWave rejected")
	}
	ws.Update(100000)

	if got := len(rec.ofType(event.EnemySpawned)); got != 2 {
		t.Fatalf("spawned = %d, want 2", got)
	}
	if ws.Phase() != WaveIdle {
		t.Fatalf("phase = %v, want idle", ws.Phase())
	}
	stopped := rec.ofType(event.WaveStopped)
	if len(stopped) != 1 || stopped[0].Data.(event.WaveStoppedData).Cancelled != 3 {
		t.Fatalf("waveStopped = %+v", stopped)
	}

	for _, id := range ws.ActiveEnemies() {
		ws.UnregisterEnemy(id)
	}
	if ws.CheckCompletion() || len(rec.ofType(event.WaveCompleted)) != 0 {
		t.Fatal("stopped wave must not complete")
	}
	if ws.StopWave() {
		t.Fatal("StopWave on idle system must be rejected")
	}
}

func TestWaveCompletedFiresOnce(t *testing.T) {
	ws, rec := newWaveSystem()
	ws.StartWave(1, 0)
	ws.Update(6000)

	if ws.CheckCompletion() {
		t.Fatal("completed with live enemies")
	}
	for _, id := range ws.ActiveEnemies() {
		ws.UnregisterEnemy(id)
		ws.UnregisterEnemy(id) // idempotent
	}
	if !ws.CheckCompletion() {
		t.Fatal("wave did not complete")
	}
	if ws.CheckCompletion() {
		t.Fatal("wave completed twice")
	}
	done := rec.ofType(event.WaveCompleted)
	if len(done) != 1 {
		t.Fatalf("waveCompleted emitted %d times", len(done))
	}
	if data := done[0].Data.(event.WaveCompletedData); data.Wave != 1 || data.Bonus != 25 {
		t.Fatalf("payload = %+v", data)
	}
	if !ws.StartWave(2, 7000) {
		t.Fatal("next wave rejected after completion")
	}
}

func TestSpawnedEnemyStartsOffFieldOnItsLane(t *testing.T) {
	ws, rec := newWaveSystem()
	ws.StartWave(1, 0)
	ws.Update(0)

	spawned := rec.ofType(event.EnemySpawned)[0].Data.(event.EnemySpawnedData)
	pos := ws.ecs.Positions[spawned.ID]
	if pos.X != config.FieldWidth+config.CellSize/2 {
		t.Errorf("spawn x = %v", pos.X)
	}
	if pos.Y != float64(spawned.Enemy.Lane)*config.CellSize+config.CellSize/2 {
		t.Errorf("spawn y = %v for lane %d", pos.Y, spawned.Enemy.Lane)
	}
	if spawned.Enemy.Health != 25 || spawned.Enemy.Armor != 0 {
		t.Errorf("enemy = %+v", spawned.Enemy)
	}
	if got := len(ws.ecs.Paths[spawned.ID].Points); got != config.GridCols+1 {
		t.Errorf("ground path has %d points", got)
	}
	if started := rec.ofType(event.WaveStarted)[0].Data.(event.WaveStartedData); started.Enemies != 5 || started.Difficulty != 1 {
		t.Errorf("waveStarted = %+v", started)
	}
}
