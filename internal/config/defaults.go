package config

import (
	_ "embed"
)

//go:embed defaults/lanerunner.yaml
var defaultLaneRunnerYAML []byte

// DefaultLaneRunnerConfig returns the built-in configuration. It matches
// defaults/lanerunner.yaml and is used when the embedded file cannot be parsed.
func DefaultLaneRunnerConfig() LaneRunnerConfig {
	return LaneRunnerConfig{
		Physics: PhysicsConfig{
			Gravity:          20,
			FixedStep:        0.02,
			MaxStepsPerFrame: 5,
		},
		Player: PlayerConfig{
			ForwardSpeed:   10,
			JumpImpulse:    8,
			LaneChangeRate: 10,
			Mass:           1,
			Width:          0.8,
			Height:         1,
			SpawnHeight:    0.5,
		},
		Road: RoadConfig{
			TileCount:   6,
			TileSize:    10,
			LaneWidth:   2,
			RecycleMode: "single",
			LeadTiles:   1,
		},
	}
}
