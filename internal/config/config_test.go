package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultLaneRunnerYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultLaneRunnerConfig() {
		t.Errorf("embedded defaults %+v differ from builtin %+v", cfg, DefaultLaneRunnerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  forward_speed: 14\nroad:\n  tile_count: 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := DefaultLaneRunnerConfig()
	if cfg.Player.ForwardSpeed != 14 {
		t.Errorf("forward_speed = %v, want 14", cfg.Player.ForwardSpeed)
	}
	if cfg.Road.TileCount != 3 {
		t.Errorf("tile_count = %d, want 3", cfg.Road.TileCount)
	}
	if cfg.Player.JumpImpulse != def.Player.JumpImpulse {
		t.Errorf("jump_impulse = %v, want default %v", cfg.Player.JumpImpulse, def.Player.JumpImpulse)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("physics changed: %+v", cfg.Physics)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("road:\n  tile_size: 12\n  recycle_mode: catch-up\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Road.TileSize != 12 || cfg.Road.RecycleMode != "catch-up" {
		t.Errorf("road = %+v", cfg.Road)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg != DefaultLaneRunnerConfig() {
		t.Error("missing file should fall back to defaults")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LaneRunnerConfig)
	}{
		{"zero fixed step", func(c *LaneRunnerConfig) { c.Physics.FixedStep = 0 }},
		{"negative gravity", func(c *LaneRunnerConfig) { c.Physics.Gravity = -1 }},
		{"zero speed", func(c *LaneRunnerConfig) { c.Player.ForwardSpeed = 0 }},
		{"zero width", func(c *LaneRunnerConfig) { c.Player.Width = 0 }},
		{"no tiles", func(c *LaneRunnerConfig) { c.Road.TileCount = 0 }},
		{"zero tile size", func(c *LaneRunnerConfig) { c.Road.TileSize = 0 }},
		{"zero lane width", func(c *LaneRunnerConfig) { c.Road.LaneWidth = 0 }},
		{"too many lead tiles", func(c *LaneRunnerConfig) { c.Road.LeadTiles = c.Road.TileCount + 1 }},
		{"unknown mode", func(c *LaneRunnerConfig) { c.Road.RecycleMode = "teleport" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLaneRunnerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	base := DefaultLaneRunnerConfig()

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Player.ForwardSpeed >= base.Player.ForwardSpeed {
		t.Errorf("easy speed %v should be below %v", easy.Player.ForwardSpeed, base.Player.ForwardSpeed)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Player.ForwardSpeed <= base.Player.ForwardSpeed || hard.Player.LaneChangeRate <= base.Player.LaneChangeRate {
		t.Errorf("hard preset should raise speed and lane rate: %+v", hard.Player)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
