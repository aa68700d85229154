// Package lanerunner implements the three-lane endless runner on top of the
// runner session. The player runs forward automatically, switches lanes,
// jumps low hurdles and restarts the scene when touching an obstacle.
package lanerunner

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Game adapts a runner.Session to the platform's Reset/Step/Render contract.
type Game struct {
	track   Track
	runtime core.RuntimeConfig
	cfg     config.LaneRunnerConfig
	session *runner.Session
	err     error // Scene could not be built; shown instead of the road

	paused      bool
	best        int
	runs        int
	lastRun     int
	crashFrames int // Frames left of the crash banner
	last        runner.FrameReport
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on Reset. Unknown values
// clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the configuration the way Reset does.
func LoadConfig() (config.LaneRunnerConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.DefaultLaneRunnerConfig(), err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return config.DefaultLaneRunnerConfig(), err
	}
	return cfg, nil
}

// New creates a game for track.
func New(track Track) *Game {
	return &Game{track: track}
}

// ID returns the track identifier.
func (g *Game) ID() string {
	return g.track.ID
}

// Title returns the track display name.
func (g *Game) Title() string {
	return g.track.Title
}

// Reset loads the configuration and builds a fresh session.
// Best distance and run count survive across resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	// A broken config file falls back to defaults rather than refusing to play.
	cfg, _ := LoadConfig()
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a fresh session from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.LaneRunnerConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.paused = false
	g.crashFrames = 0
	g.last = runner.FrameReport{}

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.session, g.err = runner.NewSession(SessionConfig(cfg, g.track.Pool), rng)
}

// SessionConfig maps the YAML configuration and a prefab pool to a session config.
func SessionConfig(cfg config.LaneRunnerConfig, pool []runner.Prefab) runner.SessionConfig {
	return runner.SessionConfig{
		Player: runner.PlayerConfig{
			ForwardSpeed:   cfg.Player.ForwardSpeed,
			JumpImpulse:    cfg.Player.JumpImpulse,
			LaneChangeRate: cfg.Player.LaneChangeRate,
			LaneWidth:      cfg.Road.LaneWidth,
		},
		Road: runner.RoadConfig{
			TileCount: cfg.Road.TileCount,
			TileSize:  cfg.Road.TileSize,
			LaneWidth: cfg.Road.LaneWidth,
			Mode:      runner.RecycleMode(cfg.Road.RecycleMode),
			LeadTiles: cfg.Road.LeadTiles,
		},
		Pool:             pool,
		Gravity:          cfg.Physics.Gravity,
		FixedStep:        cfg.Physics.FixedStep,
		MaxStepsPerFrame: cfg.Physics.MaxStepsPerFrame,
		PlayerSize:       mgl64.Vec3{cfg.Player.Width, cfg.Player.Height, cfg.Player.Width},
		PlayerMass:       cfg.Player.Mass,
		SpawnHeight:      cfg.Player.SpawnHeight,
	}
}

// Step advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		if err := g.session.Restart(); err != nil {
			g.err = err
		}
		g.crashFrames = 0
		return core.StepResult{State: g.State()}
	}

	if g.crashFrames > 0 {
		g.crashFrames--
	}

	report, err := g.session.Step(g.runtime.FrameTime(), in)
	g.last = report
	if err != nil {
		g.err = err
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if report.Reloaded {
		score := int(report.RunDistance)
		g.runs++
		g.lastRun = score
		if score > g.best {
			g.best = score
		}
		g.crashFrames = g.crashBannerFrames()
		events = append(events, core.Event{
			Kind:     core.EventRunEnded,
			Score:    score,
			Distance: report.RunDistance,
			Jumps:    report.RunJumps,
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// crashBannerFrames is how long the crash banner stays up: half a second.
func (g *Game) crashBannerFrames() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return core.Max(1, rate/2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Best:     g.best,
		Runs:     g.runs,
		GameOver: g.err != nil,
		Paused:   g.paused,
	}
	if g.session != nil {
		st.Score = int(g.session.Distance())
	}
	return st
}

// Session exposes the running session for headless drivers.
func (g *Game) Session() *runner.Session {
	return g.session
}

// LastReport returns the report of the latest stepped frame.
func (g *Game) LastReport() runner.FrameReport {
	return g.last
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.LaneRunnerConfig {
	return g.cfg
}

// Track returns the track being played.
func (g *Game) Track() Track {
	return g.track
}
