// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "LANE_"

// Settings - параметры запуска, которые можно переопределить через .env или окружение.
type Settings struct {
	Seed          int64   // 0 - сид от текущего времени
	StartingGold  int
	StartingLives int
	VictoryWave   int // 0 - бесконечная игра
	BalancePath   string
	JournalPath   string
	TickMs        float64
}

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		StartingGold:  200,
		StartingLives: 3,
		VictoryWave:   20,
		TickMs:        16,
	}
}

// LoadSettings reads the given env files (".env" when none are given) and then
// the process environment. Process variables win over file values.
// A missing env file is not an error.
func LoadSettings(files ...string) (Settings, error) {
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to read env file: %w", err)
		}
		fileEnv = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	return parseSettings(lookup)
}

func parseSettings(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()

	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %sSEED=%q: %w", envPrefix, v, err)
		}
		s.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"STARTING_GOLD", &s.StartingGold},
		{"STARTING_LIVES", &s.StartingLives},
		{"VICTORY_WAVE", &s.VictoryWave},
	}
	for _, field := range ints {
		v, ok := lookup(envPrefix + field.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s%s=%q: %w", envPrefix, field.key, v, err)
		}
		if n < 0 {
			return Settings{}, fmt.Errorf("invalid %s%s=%d: must not be negative", envPrefix, field.key, n)
		}
		*field.dst = n
	}

	if v, ok := lookup(envPrefix + "TICK_MS"); ok && v != "" {
		tick, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %sTICK_MS=%q: %w", envPrefix, v, err)
		}
		if tick <= 0 {
			return Settings{}, fmt.Errorf("invalid %sTICK_MS=%v: must be positive", envPrefix, tick)
		}
		s.TickMs = tick
	}

	if v, ok := lookup(envPrefix + "BALANCE_PATH"); ok {
		s.BalancePath = v
	}
	if v, ok := lookup(envPrefix + "JOURNAL_PATH"); ok {
		s.JournalPath = v
	}
	return s, nil
}
