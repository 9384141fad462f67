// Package config reads game settings from an optional .env file and the
// process environment. Environment variables win over the file; anything
// left unset keeps the arcade defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rhpo/gobble/arcade"
)

const Prefix = "GOBBLE_"

type Settings struct {
	Game   arcade.Config
	Seed   int64
	Volume float64
	Mute   bool
}

type setter func(s *Settings, value string) error

var setters = map[string]setter{
	"WORLD_WIDTH":        floatVar(func(s *Settings) *float64 { return &s.Game.WorldWidth }),
	"WORLD_HEIGHT":       floatVar(func(s *Settings) *float64 { return &s.Game.WorldHeight }),
	"BASE_SIZE":          floatVar(func(s *Settings) *float64 { return &s.Game.BaseSize }),
	"PLAYER_SCALE":       floatVar(func(s *Settings) *float64 { return &s.Game.PlayerScale }),
	"PLAYER_SPEED":       floatVar(func(s *Settings) *float64 { return &s.Game.PlayerSpeed }),
	"GROWTH_STEP":        floatVar(func(s *Settings) *float64 { return &s.Game.GrowthStep }),
	"FOOD_SCALE":         floatVar(func(s *Settings) *float64 { return &s.Game.FoodScale }),
	"SWEEP_MARGIN":       floatVar(func(s *Settings) *float64 { return &s.Game.SweepMargin }),
	"VOLUME":             floatVar(func(s *Settings) *float64 { return &s.Volume }),
	"ENEMY_POOL":         rangeVar(func(s *Settings) *arcade.Range { return &s.Game.EnemyPool }),
	"FOOD_POOL":          rangeVar(func(s *Settings) *arcade.Range { return &s.Game.FoodPool }),
	"ENEMY_SCALE_TENTHS": rangeVar(func(s *Settings) *arcade.Range { return &s.Game.EnemyScaleTenths }),
	"SPAWN_OFFSET":       rangeVar(func(s *Settings) *arcade.Range { return &s.Game.SpawnOffset }),
	"INWARD_SPEED":       rangeVar(func(s *Settings) *arcade.Range { return &s.Game.InwardSpeed }),
	"DRIFT":              intVar(func(s *Settings) *int { return &s.Game.Drift }),
	"ENEMY_FLOOR":        intVar(func(s *Settings) *int { return &s.Game.EnemyFloor }),
	"FOOD_FLOOR":         intVar(func(s *Settings) *int { return &s.Game.FoodFloor }),
	"GAME_OVER_DELAY": func(s *Settings, v string) error {
		d, err := time.ParseDuration(v)
		s.Game.GameOverDelay = d
		return err
	},
	"SEED": func(s *Settings, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		s.Seed = n
		return err
	},
	"MUTE": func(s *Settings, v string) error {
		b, err := strconv.ParseBool(v)
		s.Mute = b
		return err
	},
}

func floatVar(field func(*Settings) *float64) setter {
	return func(s *Settings, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		*field(s) = f
		return err
	}
}

func intVar(field func(*Settings) *int) setter {
	return func(s *Settings, v string) error {
		n, err := strconv.Atoi(v)
		*field(s) = n
		return err
	}
}

func rangeVar(field func(*Settings) *arcade.Range) setter {
	return func(s *Settings, v string) error {
		r, err := ParseRange(v)
		*field(s) = r
		return err
	}
}

// ParseRange accepts "min-max" or a single value. A leading minus sign
// belongs to the minimum.
func ParseRange(v string) (arcade.Range, error) {
	v = strings.TrimSpace(v)
	cut := strings.Index(v[min(1, len(v)):], "-")
	if cut < 0 {
		n, err := strconv.Atoi(v)
		if err != nil {
			return arcade.Range{}, fmt.Errorf("range %q: %w", v, err)
		}
		return arcade.Range{Min: n, Max: n}, nil
	}
	cut += min(1, len(v))

	lo, err := strconv.Atoi(strings.TrimSpace(v[:cut]))
	if err != nil {
		return arcade.Range{}, fmt.Errorf("range %q: %w", v, err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(v[cut+1:]))
	if err != nil {
		return arcade.Range{}, fmt.Errorf("range %q: %w", v, err)
	}
	return arcade.Range{Min: lo, Max: hi}, nil
}

func Defaults() Settings {
	return Settings{
		Game:   arcade.DefaultConfig(),
		Seed:   time.Now().UnixNano(),
		Volume: 0.8,
	}
}

// Load reads envFile (skipped when empty or missing) and then the process
// environment on top of the defaults.
func Load(envFile string) (Settings, error) {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("reading %s: %w", envFile, err)
		default:
			vars = fileVars
		}
	}
	for key := range setters {
		if v, ok := os.LookupEnv(Prefix + key); ok {
			vars[Prefix+key] = v
		}
	}
	return FromMap(vars)
}

// FromMap applies the GOBBLE_* entries of vars to the defaults and
// validates the result. Unknown GOBBLE_* keys are rejected, as are zero
// gameplay values, which the game would replace with its defaults.
func FromMap(vars map[string]string) (Settings, error) {
	s := Defaults()
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, Prefix)
		if !ok {
			continue
		}
		set, known := setters[name]
		if !known {
			return Settings{}, fmt.Errorf("unknown setting %s", key)
		}
		if err := set(&s, strings.TrimSpace(value)); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", key, err)
		}
		// arcade.Config reads zero as "use the default", so an explicit
		// zero could never take effect.
		if s.Game != s.Game.WithDefaults() {
			return Settings{}, fmt.Errorf("%s=%s: zero selects the default, unset it instead: %w", key, value, arcade.ErrInvalidConfig)
		}
	}

	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	if s.Volume < 0 || s.Volume > 1 {
		return Settings{}, fmt.Errorf("volume %v outside [0, 1]: %w", s.Volume, arcade.ErrInvalidConfig)
	}
	return s, nil
}
