package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rhpo/gobble/arcade"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want arcade.Range
	}{
		{"10-20", arcade.Range{Min: 10, Max: 20}},
		{" 3 - 7 ", arcade.Range{Min: 3, Max: 7}},
		{"5", arcade.Range{Min: 5, Max: 5}},
		{"-20-20", arcade.Range{Min: -20, Max: 20}},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if err != nil {
			t.Fatalf("ParseRange(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "a-b", "1-", "x"} {
		if _, err := ParseRange(bad); err == nil {
			t.Errorf("ParseRange(%q) accepted", bad)
		}
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeEnv(t, `
# arena
GOBBLE_WORLD_WIDTH=800
GOBBLE_ENEMY_POOL=3-4
GOBBLE_GAME_OVER_DELAY=1s
GOBBLE_SEED=42
GOBBLE_MUTE=true
`)
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Game.WorldWidth != 800 {
		t.Errorf("WorldWidth = %v, want 800", s.Game.WorldWidth)
	}
	if s.Game.WorldHeight != arcade.DefaultConfig().WorldHeight {
		t.Errorf("WorldHeight = %v, want default", s.Game.WorldHeight)
	}
	if s.Game.EnemyPool != (arcade.Range{Min: 3, Max: 4}) {
		t.Errorf("EnemyPool = %+v", s.Game.EnemyPool)
	}
	if s.Game.GameOverDelay != time.Second {
		t.Errorf("GameOverDelay = %v, want 1s", s.Game.GameOverDelay)
	}
	if s.Seed != 42 || !s.Mute {
		t.Errorf("Seed = %d, Mute = %v", s.Seed, s.Mute)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeEnv(t, "GOBBLE_PLAYER_SPEED=90\n")
	t.Setenv("GOBBLE_PLAYER_SPEED", "150")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Game.PlayerSpeed != 150 {
		t.Errorf("PlayerSpeed = %v, want 150", s.Game.PlayerSpeed)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Game != arcade.DefaultConfig() {
		t.Errorf("Game = %+v, want defaults", s.Game)
	}
	if s.Volume != 0.8 {
		t.Errorf("Volume = %v, want 0.8", s.Volume)
	}
}

func TestFromMapRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown key":     {"GOBBLE_NOPE": "1"},
		"bad number":      {"GOBBLE_DRIFT": "lots"},
		"bad duration":    {"GOBBLE_GAME_OVER_DELAY": "soon"},
		"volume too high": {"GOBBLE_VOLUME": "1.5"},
	}
	for name, vars := range tests {
		if _, err := FromMap(vars); err == nil {
			t.Errorf("%s: accepted %v", name, vars)
		}
	}
}

func TestFromMapValidatesGame(t *testing.T) {
	_, err := FromMap(map[string]string{"GOBBLE_SWEEP_MARGIN": "60"})
	if !errors.Is(err, arcade.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestFromMapRejectsExplicitZeros(t *testing.T) {
	for _, key := range []string{
		"GOBBLE_DRIFT",
		"GOBBLE_ENEMY_FLOOR",
		"GOBBLE_FOOD_FLOOR",
		"GOBBLE_WORLD_WIDTH",
		"GOBBLE_ENEMY_POOL",
		"GOBBLE_GAME_OVER_DELAY",
	} {
		_, err := FromMap(map[string]string{key: "0"})
		if !errors.Is(err, arcade.ErrInvalidConfig) {
			t.Errorf("%s=0: err = %v, want ErrInvalidConfig", key, err)
		}
	}

	s, err := FromMap(map[string]string{"GOBBLE_ENEMY_FLOOR": "1", "GOBBLE_DRIFT": "1", "GOBBLE_SEED": "0"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Game.EnemyFloor != 1 || s.Game.Drift != 1 || s.Seed != 0 {
		t.Fatalf("EnemyFloor=%d Drift=%d Seed=%d, want 1 1 0", s.Game.EnemyFloor, s.Game.Drift, s.Seed)
	}
}

func TestFromMapIgnoresForeignKeys(t *testing.T) {
	if _, err := FromMap(map[string]string{"HOME": "/root", "PATH": "/bin"}); err != nil {
		t.Fatal(err)
	}
}
