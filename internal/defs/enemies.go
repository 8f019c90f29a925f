// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType `json:"type"`
	Health float64   `json:"health"`
	Speed  float64   `json:"speed"` // cells per second
	Reward int       `json:"reward"`
	Armor  float64   `json:"armor"`
	Scale  float64   `json:"scale"` // множитель размера тела
}

// EnemyLibrary is the library of all enemy definitions, mapped by their type.
var EnemyLibrary = defaultEnemyLibrary()

func defaultEnemyLibrary() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyBasic:   {Type: EnemyBasic, Health: 25, Speed: 1.0, Reward: 10, Armor: 0, Scale: 1.0},
		EnemyTank:    {Type: EnemyTank, Health: 50, Speed: 0.5, Reward: 20, Armor: 1, Scale: 1.2},
		EnemyFlying:  {Type: EnemyFlying, Health: 20, Speed: 1.5, Reward: 12, Armor: 0, Scale: 0.9},
		EnemyBoss:    {Type: EnemyBoss, Health: 150, Speed: 0.3, Reward: 100, Armor: 1, Scale: 1.5},
		EnemySwarm:   {Type: EnemySwarm, Health: 10, Speed: 2.0, Reward: 5, Armor: 0, Scale: 0.7},
		EnemyArmored: {Type: EnemyArmored, Health: 40, Speed: 0.7, Reward: 25, Armor: 1, Scale: 1.1},
	}
}

// LookupEnemy returns the definition for the enemy type.
func LookupEnemy(t EnemyType) (EnemyDefinition, bool) {
	def, ok := EnemyLibrary[t]
	return def, ok
}
