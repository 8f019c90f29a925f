// internal/component/wave.go
package component

import "go-lane-defense/internal/defs"

// SpawnTimer - одно отложенное появление врага.
type SpawnTimer struct {
	At        float64 // ms игрового времени
	EnemyType defs.EnemyType
	Fired     bool
	Cancelled bool
}

// Wave - текущая волна и её очередь появления.
type Wave struct {
	Number    int
	StartedAt float64
	Bonus     int
	Timers    []SpawnTimer // по возрастанию At
	Next      int          // первый не сработавший таймер
}

// Pending returns how many spawns are still scheduled.
func (w *Wave) Pending() int {
	n := 0
	for _, t := range w.Timers[w.Next:] {
		if !t.Cancelled {
			n++
		}
	}
	return n
}
