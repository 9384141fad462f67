package arcade

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Range is an inclusive integer interval sampled through RNG.
type Range struct {
	Min, Max int
}

func (r Range) Sample(rng RNG) int {
	return rng.IntInRange(r.Min, r.Max)
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Config holds every gameplay tunable. Zero fields take the defaults below.
type Config struct {
	WorldWidth  float64
	WorldHeight float64

	// BaseSize is the edge length of every body at scale 1.
	BaseSize float64

	PlayerScale float64
	PlayerSpeed float64
	GrowthStep  float64

	EnemyPool        Range
	FoodPool         Range
	EnemyScaleTenths Range
	FoodScale        float64

	SpawnOffset Range
	InwardSpeed Range
	Drift       int

	EnemyFloor  int
	FoodFloor   int
	SweepMargin float64

	GameOverDelay time.Duration
}

const (
	DefaultWorldWidth    = 1600
	DefaultWorldHeight   = 1200
	DefaultBaseSize      = 64
	DefaultPlayerScale   = 0.5
	DefaultPlayerSpeed   = 120
	DefaultGrowthStep    = 0.05
	DefaultFoodScale     = 0.5
	DefaultDrift         = 20
	DefaultEnemyFloor    = 5
	DefaultFoodFloor     = 1
	DefaultSweepMargin   = 101
	DefaultGameOverDelay = 800 * time.Millisecond
)

func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

func (c Config) WithDefaults() Config {
	if c.WorldWidth == 0 {
		c.WorldWidth = DefaultWorldWidth
	}
	if c.WorldHeight == 0 {
		c.WorldHeight = DefaultWorldHeight
	}
	if c.BaseSize == 0 {
		c.BaseSize = DefaultBaseSize
	}
	if c.PlayerScale == 0 {
		c.PlayerScale = DefaultPlayerScale
	}
	if c.PlayerSpeed == 0 {
		c.PlayerSpeed = DefaultPlayerSpeed
	}
	if c.GrowthStep == 0 {
		c.GrowthStep = DefaultGrowthStep
	}
	if c.EnemyPool == (Range{}) {
		c.EnemyPool = Range{Min: 10, Max: 20}
	}
	if c.FoodPool == (Range{}) {
		c.FoodPool = Range{Min: 5, Max: 10}
	}
	if c.EnemyScaleTenths == (Range{}) {
		c.EnemyScaleTenths = Range{Min: 2, Max: 9}
	}
	if c.FoodScale == 0 {
		c.FoodScale = DefaultFoodScale
	}
	if c.SpawnOffset == (Range{}) {
		c.SpawnOffset = Range{Min: 50, Max: 100}
	}
	if c.InwardSpeed == (Range{}) {
		c.InwardSpeed = Range{Min: 20, Max: 60}
	}
	if c.Drift == 0 {
		c.Drift = DefaultDrift
	}
	if c.EnemyFloor == 0 {
		c.EnemyFloor = DefaultEnemyFloor
	}
	if c.FoodFloor == 0 {
		c.FoodFloor = DefaultFoodFloor
	}
	if c.SweepMargin == 0 {
		c.SweepMargin = DefaultSweepMargin
	}
	if c.GameOverDelay == 0 {
		c.GameOverDelay = DefaultGameOverDelay
	}
	return c
}

func (c Config) Validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("world %vx%v: %w", c.WorldWidth, c.WorldHeight, ErrInvalidConfig)
	case c.BaseSize <= 0:
		return fmt.Errorf("base size %v: %w", c.BaseSize, ErrInvalidConfig)
	case c.PlayerScale <= 0 || c.FoodScale <= 0 || c.GrowthStep <= 0:
		return fmt.Errorf("scales must be positive: %w", ErrInvalidConfig)
	case !c.EnemyPool.valid() || c.EnemyPool.Min < 0:
		return fmt.Errorf("enemy pool %v: %w", c.EnemyPool, ErrInvalidConfig)
	case !c.FoodPool.valid() || c.FoodPool.Min < 0:
		return fmt.Errorf("food pool %v: %w", c.FoodPool, ErrInvalidConfig)
	case !c.EnemyScaleTenths.valid() || c.EnemyScaleTenths.Min <= 0:
		return fmt.Errorf("enemy scale %v: %w", c.EnemyScaleTenths, ErrInvalidConfig)
	case !c.SpawnOffset.valid() || c.SpawnOffset.Min <= 0:
		return fmt.Errorf("spawn offset %v: %w", c.SpawnOffset, ErrInvalidConfig)
	case !c.InwardSpeed.valid() || c.InwardSpeed.Min <= 0:
		return fmt.Errorf("inward speed %v: %w", c.InwardSpeed, ErrInvalidConfig)
	case c.Drift < 0:
		return fmt.Errorf("drift %d: %w", c.Drift, ErrInvalidConfig)
	case c.EnemyFloor < 0 || c.FoodFloor < 0:
		return fmt.Errorf("population floors must not be negative: %w", ErrInvalidConfig)
	case c.SweepMargin <= float64(c.SpawnOffset.Max):
		return fmt.Errorf("sweep margin %v within spawn offset %d: %w", c.SweepMargin, c.SpawnOffset.Max, ErrInvalidConfig)
	case c.GameOverDelay < 0:
		return fmt.Errorf("game over delay %v: %w", c.GameOverDelay, ErrInvalidConfig)
	}
	return nil
}

func (c Config) Bounds() Rect {
	return Rect{Width: c.WorldWidth, Height: c.WorldHeight}
}
