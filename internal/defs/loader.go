// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// WaveEntry - волна из файла баланса вместе с её номером.
type WaveEntry struct {
	Number int `json:"number"`
	WaveDefinition
}

// Balance is the on-disk form of the balance tables. Empty sections keep the
// built-in values.
type Balance struct {
	Towers  []TowerDefinition `json:"towers,omitempty"`
	Enemies []EnemyDefinition `json:"enemies,omitempty"`
	Waves   []WaveEntry       `json:"waves,omitempty"`
}

// ParseBalance decodes and validates a balance document.
func ParseBalance(data []byte) (Balance, error) {
	var b Balance
	if err := json.Unmarshal(data, &b); err != nil {
		return Balance{}, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	for _, t := range b.Towers {
		if !t.Type.Valid() {
			return Balance{}, fmt.Errorf("unknown tower type %q", t.Type)
		}
		if t.Level < LevelBasic || t.Level > LevelElite {
			return Balance{}, fmt.Errorf("tower %s: invalid level %d", t.Type, t.Level)
		}
		if t.Cost < 0 {
			return Balance{}, fmt.Errorf("tower %s level %d: negative cost", t.Type, t.Level)
		}
	}
	for _, e := range b.Enemies {
		if e.Type == "" || e.Health <= 0 {
			return Balance{}, fmt.Errorf("enemy %q: health must be positive", e.Type)
		}
		if e.Scale <= 0 {
			return Balance{}, fmt.Errorf("enemy %q: scale must be positive", e.Type)
		}
	}
	for _, w := range b.Waves {
		if w.Number < 1 {
			return Balance{}, fmt.Errorf("invalid wave number %d", w.Number)
		}
		if w.TotalEnemies() == 0 {
			return Balance{}, fmt.Errorf("wave %d spawns no enemies", w.Number)
		}
	}
	return b, nil
}

// Apply merges the balance into the package libraries.
func (b Balance) Apply() {
	for _, t := range b.Towers {
		if TowerLibrary[t.Type] == nil {
			TowerLibrary[t.Type] = make(map[TowerLevel]TowerStats)
		}
		TowerLibrary[t.Type][t.Level] = t.TowerStats
	}
	for _, e := range b.Enemies {
		EnemyLibrary[e.Type] = e
	}
	for _, w := range b.Waves {
		WavePatterns[w.Number] = w.WaveDefinition
	}
}

// LoadBalance reads the balance file and applies it on top of the built-in tables.
func LoadBalance(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read balance file: %w", err)
	}
	b, err := ParseBalance(file)
	if err != nil {
		return fmt.Errorf("balance file %s: %w", path, err)
	}
	b.Apply()
	log.Printf("Loaded balance: %d towers, %d enemies, %d waves", len(b.Towers), len(b.Enemies), len(b.Waves))
	return nil
}

// ResetBalance restores the built-in tables.
func ResetBalance() {
	TowerLibrary = defaultTowerLibrary()
	EnemyLibrary = defaultEnemyLibrary()
	WavePatterns = defaultWavePatterns()
}
