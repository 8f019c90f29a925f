// internal/defs/waves.go
package defs

import (
	"fmt"
	"math"
)

// SpawnGroup - группа одинаковых врагов внутри волны.
type SpawnGroup struct {
	EnemyType  EnemyType `json:"enemy_type"`
	Count      int       `json:"count"`
	StartDelay float64   `json:"start_delay,omitempty"` // ms, складывается с предыдущими группами
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Groups        []SpawnGroup `json:"groups"`
	SpawnInterval float64      `json:"spawn_interval"` // ms между соседними врагами
	WaveBonus     int          `json:"wave_bonus"`
}

// TotalEnemies returns how many enemies the wave spawns.
func (w WaveDefinition) TotalEnemies() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}

// ScriptedWaves - номер последней волны из таблицы, дальше волны строятся по формулам.
const ScriptedWaves = 10

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = defaultWavePatterns()

func defaultWavePatterns() map[int]WaveDefinition {
	return map[int]WaveDefinition{
		1: {Groups: []SpawnGroup{{EnemyType: EnemyBasic, Count: 5}}, SpawnInterval: 1500, WaveBonus: 25},
		2: {Groups: []SpawnGroup{{EnemyType: EnemyBasic, Count: 8}}, SpawnInterval: 1300, WaveBonus: 30},
		3: {Groups: []SpawnGroup{
			{EnemyType: EnemyBasic, Count: 6},
			{EnemyType: EnemyTank, Count: 2, StartDelay: 2000},
		}, SpawnInterval: 1200, WaveBonus: 40},
		4: {Groups: []SpawnGroup{
			{EnemyType: EnemySwarm, Count: 3},
			{EnemyType: EnemyBasic, Count: 4, StartDelay: 1500},
		}, SpawnInterval: 1100, WaveBonus: 45},
		5: {Groups: []SpawnGroup{
			{EnemyType: EnemyBasic, Count: 8},
			{EnemyType: EnemyFlying, Count: 3, StartDelay: 3000},
			{EnemyType: EnemyBoss, Count: 1, StartDelay: 5000},
		}, SpawnInterval: 1000, WaveBonus: 75},
		6: {Groups: []SpawnGroup{
			{EnemyType: EnemyBasic, Count: 10},
			{EnemyType: EnemyTank, Count: 3, StartDelay: 2000},
		}, SpawnInterval: 1000, WaveBonus: 50},
		7: {Groups: []SpawnGroup{
			{EnemyType: EnemySwarm, Count: 4},
			{EnemyType: EnemyArmored, Count: 2, StartDelay: 3000},
		}, SpawnInterval: 900, WaveBonus: 60},
		8: {Groups: []SpawnGroup{
			{EnemyType: EnemyFlying, Count: 6},
			{EnemyType: EnemyTank, Count: 4, StartDelay: 2500},
		}, SpawnInterval: 900, WaveBonus: 70},
		9: {Groups: []SpawnGroup{
			{EnemyType: EnemyBasic, Count: 8},
			{EnemyType: EnemyArmored, Count: 4, StartDelay: 2000},
			{EnemyType: EnemyTank, Count: 2, StartDelay: 4000},
		}, SpawnInterval: 800, WaveBonus: 80},
		10: {Groups: []SpawnGroup{
			{EnemyType: EnemyBasic, Count: 10},
			{EnemyType: EnemyTank, Count: 3, StartDelay: 2000},
			{EnemyType: EnemyFlying, Count: 2, StartDelay: 4000},
			{EnemyType: EnemyBoss, Count: 1, StartDelay: 6000},
		}, SpawnInterval: 800, WaveBonus: 100},
	}
}

// WaveConfig returns the wave definition for wave n (n >= 1).
// Waves without a table entry are generated procedurally.
func WaveConfig(n int) WaveDefinition {
	if n < 1 {
		panic(fmt.Sprintf("invalid wave number %d", n))
	}
	if def, ok := WavePatterns[n]; ok {
		return def
	}
	return proceduralWave(n)
}

func proceduralWave(n int) WaveDefinition {
	k := float64(n - ScriptedWaves)

	groups := []SpawnGroup{{EnemyType: EnemyBasic, Count: int(math.Floor(5 + k*1.5))}}
	if n%2 == 0 {
		groups = append(groups, SpawnGroup{EnemyType: EnemyTank, Count: int(math.Floor(2 + k*0.3)), StartDelay: 2000})
	}
	if n%3 == 0 {
		groups = append(groups, SpawnGroup{EnemyType: EnemyFlying, Count: int(math.Floor(2 + k*0.2)), StartDelay: 3000})
	}
	if n%4 == 0 {
		groups = append(groups, SpawnGroup{EnemyType: EnemyArmored, Count: int(math.Floor(1 + k*0.2)), StartDelay: 4000})
	}
	if (n+1)%3 == 0 {
		groups = append(groups, SpawnGroup{EnemyType: EnemySwarm, Count: int(math.Floor(2 + k*0.15)), StartDelay: 2500})
	}
	if n%5 == 0 {
		groups = append(groups, SpawnGroup{EnemyType: EnemyBoss, Count: 1 + (n-ScriptedWaves)/10, StartDelay: 6000})
	}

	return WaveDefinition{
		Groups:        groups,
		SpawnInterval: math.Max(500, 800-k*20),
		WaveBonus:     25 + n*10,
	}
}

// DifficultyMultiplier grows logarithmically with the wave number.
func DifficultyMultiplier(n int) float64 {
	if n < 1 {
		return 1
	}
	return 1 + math.Log2(float64(n))*0.3
}
