// internal/defs/towers.go
package defs

// TowerStats holds the static numbers of one (type, level) pair.
// Zero optional fields mean "absent".
type TowerStats struct {
	Damage             float64 `json:"damage"`
	AttackSpeed        float64 `json:"attack_speed"` // shots per second
	Range              float64 `json:"range"`        // in cells
	Cost               int     `json:"cost"`
	SplashDamage       float64 `json:"splash_damage,omitempty"`
	SplashRadius       float64 `json:"splash_radius,omitempty"` // in cells
	ResourceGeneration int     `json:"resource_generation,omitempty"`
	ResourceInterval   float64 `json:"resource_interval,omitempty"` // ms
}

// HasSplash reports whether shots from this tower deal area damage.
func (s TowerStats) HasSplash() bool {
	return s.SplashDamage > 0 && s.SplashRadius > 0
}

// TowerDefinition - строка таблицы баланса в JSON.
type TowerDefinition struct {
	Type  TowerType  `json:"type"`
	Level TowerLevel `json:"level"`
	TowerStats
}

// TowerLibrary - характеристики всех башен по типу и уровню.
var TowerLibrary = defaultTowerLibrary()

func defaultTowerLibrary() map[TowerType]map[TowerLevel]TowerStats {
	return map[TowerType]map[TowerLevel]TowerStats{
		TowerPeashooter: {
			LevelBasic:    {Damage: 10, AttackSpeed: 1.0, Range: 3, Cost: 100},
			LevelAdvanced: {Damage: 15, AttackSpeed: 1.2, Range: 3.3, Cost: 175},
			LevelElite:    {Damage: 22, AttackSpeed: 1.44, Range: 3.63, Cost: 250},
		},
		TowerSunflower: {
			LevelBasic:    {Range: 1, Cost: 50, ResourceGeneration: 10, ResourceInterval: 7000},
			LevelAdvanced: {Range: 1.2, Cost: 85, ResourceGeneration: 16, ResourceInterval: 5500},
			LevelElite:    {Range: 1.44, Cost: 120, ResourceGeneration: 25, ResourceInterval: 4000},
		},
		TowerWallnut: {
			LevelBasic:    {Range: 0.5, Cost: 75},
			LevelAdvanced: {Range: 0.5, Cost: 130},
			LevelElite:    {Range: 0.5, Cost: 185},
		},
		TowerMortar: {
			LevelBasic:    {Damage: 9, AttackSpeed: 0.8, Range: 2.5, Cost: 175, SplashDamage: 18, SplashRadius: 2.2},
			LevelAdvanced: {Damage: 14, AttackSpeed: 1.0, Range: 2.8, Cost: 300, SplashDamage: 27, SplashRadius: 2.7},
			LevelElite:    {Damage: 21, AttackSpeed: 1.2, Range: 3.2, Cost: 500, SplashDamage: 42, SplashRadius: 3.3},
		},
	}
}

// LookupTower returns the stats of the (type, level) pair.
func LookupTower(t TowerType, l TowerLevel) (TowerStats, bool) {
	levels, ok := TowerLibrary[t]
	if !ok {
		return TowerStats{}, false
	}
	stats, ok := levels[l]
	return stats, ok
}

// TowerInfo - описание башни для интерфейса.
type TowerInfo struct {
	Name        string
	Description string
	Ability     string
}

var towerInfo = map[TowerType]TowerInfo{
	TowerPeashooter: {
		Name:        "Peashooter",
		Description: "Basic offensive tower that shoots projectiles at enemies",
		Ability:     "Ranged Attack",
	},
	TowerSunflower: {
		Name:        "Sunflower",
		Description: "Economy tower that generates resources over time",
		Ability:     "Resource Generation",
	},
	TowerWallnut: {
		Name:        "Wall-nut",
		Description: "Defensive barrier that blocks enemy progress",
		Ability:     "Block Path",
	},
	TowerMortar: {
		Name:        "Mortar",
		Description: "Area-of-effect tower that damages all enemies in splash radius",
		Ability:     "Splash Damage",
	},
}

// Info returns display texts for the tower type.
func Info(t TowerType) TowerInfo {
	if info, ok := towerInfo[t]; ok {
		return info
	}
	return TowerInfo{Name: string(t), Description: "Unknown tower type", Ability: "No Ability"}
}
