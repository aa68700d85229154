// Package config provides YAML-based configuration loading and static
// difficulty presets for the lane runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LaneRunnerConfig contains all tunable scalars of a session.
type LaneRunnerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Road    RoadConfig    `yaml:"road"`
}

// PhysicsConfig defines the host simulation parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`             // Downward acceleration, units/s²
	FixedStep        float64 `yaml:"fixed_step"`          // Seconds per physics step
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // Steps allowed before frame time is dropped
}

// PlayerConfig defines the player body and controller parameters.
type PlayerConfig struct {
	ForwardSpeed   float64 `yaml:"forward_speed"`    // Units per second along the road
	JumpImpulse    float64 `yaml:"jump_impulse"`     // Upward impulse of a grounded jump
	LaneChangeRate float64 `yaml:"lane_change_rate"` // Lateral interpolation rate, 1/s
	Mass           float64 `yaml:"mass"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnHeight    float64 `yaml:"spawn_height"` // Y of the body center at spawn
}

// RoadConfig defines the tile ring.
type RoadConfig struct {
	TileCount   int     `yaml:"tile_count"`
	TileSize    float64 `yaml:"tile_size"`
	LaneWidth   float64 `yaml:"lane_width"`
	RecycleMode string  `yaml:"recycle_mode"` // "single" or "catch-up"
	LeadTiles   int     `yaml:"lead_tiles"`   // Obstacle-free tiles at the ring start
}

// Validate checks the scalars the simulation cannot run without.
func (c LaneRunnerConfig) Validate() error {
	switch {
	case c.Physics.FixedStep <= 0:
		return fmt.Errorf("%w: physics.fixed_step must be positive", ErrInvalidConfig)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity must not be negative", ErrInvalidConfig)
	case c.Player.ForwardSpeed <= 0:
		return fmt.Errorf("%w: player.forward_speed must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Road.TileCount < 1:
		return fmt.Errorf("%w: road.tile_count must be at least 1", ErrInvalidConfig)
	case c.Road.TileSize <= 0:
		return fmt.Errorf("%w: road.tile_size must be positive", ErrInvalidConfig)
	case c.Road.LaneWidth <= 0:
		return fmt.Errorf("%w: road.lane_width must be positive", ErrInvalidConfig)
	case c.Road.LeadTiles < 0 || c.Road.LeadTiles > c.Road.TileCount:
		return fmt.Errorf("%w: road.lead_tiles must be within [0, tile_count]", ErrInvalidConfig)
	}
	switch c.Road.RecycleMode {
	case "", "single", "catch-up":
	default:
		return fmt.Errorf("%w: unknown road.recycle_mode %q", ErrInvalidConfig, c.Road.RecycleMode)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales speed-related scalars once, before the session starts.
func ApplyPreset(cfg *LaneRunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.ForwardSpeed *= 0.75
	case DifficultyHard:
		cfg.Player.ForwardSpeed *= 1.35
		cfg.Player.LaneChangeRate *= 1.25
	}
}
