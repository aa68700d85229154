package runner

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/engine"
)

// SessionConfig is everything needed to build the level scene.
type SessionConfig struct {
	Player PlayerConfig
	Road   RoadConfig
	Pool   []Prefab

	Gravity          float64    // Downward acceleration magnitude
	FixedStep        float64    // Physics step length in seconds
	MaxStepsPerFrame int        // Physics steps allowed per frame before time is dropped
	PlayerSize       mgl64.Vec3 // Full box extents
	PlayerMass       float64
	SpawnHeight      float64 // Y of the player's center at spawn
}

// FrameReport summarizes one call to Session.Step.
type FrameReport struct {
	Recycled     int     // Tiles moved by the recycler this frame
	PhysicsSteps int     // Fixed steps run this frame
	Reloaded     bool    // The scene was reset at the end of this frame
	RunDistance  float64 // Distance of the run that ended, when Reloaded
	RunJumps     int     // Jumps made in the run that ended, when Reloaded
}

// Session owns the scene and drives it: frame tick first, then physics steps.
// It is also the SceneController handed to the player.
type Session struct {
	cfg SessionConfig
	rng *rand.Rand

	world  *engine.World
	player *PlayerController
	road   *RoadRecycler

	accumulator float64
	reloads     int
	frames      int
}

// NewSession validates cfg and loads the initial scene.
func NewSession(cfg SessionConfig, rng *rand.Rand) (*Session, error) {
	if cfg.FixedStep <= 0 {
		return nil, fmt.Errorf("runner: fixed step must be positive, got %v", cfg.FixedStep)
	}
	if cfg.MaxStepsPerFrame <= 0 {
		cfg.MaxStepsPerFrame = 1
	}
	s := &Session{cfg: cfg, rng: rng}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load builds a fresh scene: road ring first, then the player.
func (s *Session) load() error {
	s.world = engine.NewWorld(mgl64.Vec3{0, -s.cfg.Gravity, 0})

	s.road = NewRoadRecycler(s.world, s.cfg.Road)
	if err := s.road.Initialize(s.cfg.Pool, s.rng); err != nil {
		return err
	}

	body := engine.NewDynamic("player", mgl64.Vec3{0, s.cfg.SpawnHeight, 0}, s.cfg.PlayerSize.Mul(0.5), s.cfg.PlayerMass)
	body.Tags = engine.TagPlayer
	s.world.Add(body)
	s.player = NewPlayerController(body, s, s.cfg.Player)

	s.accumulator = 0
	return nil
}

// Reload requests a reset to the initial scene at the end of the current
// frame by halting the world. Further requests before the reset are ignored.
func (s *Session) Reload() {
	s.world.Halt()
}

// Restart resets the scene immediately without reporting a finished run.
func (s *Session) Restart() error {
	return s.load()
}

// Step advances one frame of dt seconds.
func (s *Session) Step(dt float64, in core.InputFrame) (FrameReport, error) {
	var report FrameReport
	s.frames++

	s.player.Update(in, dt)
	report.Recycled = s.road.Update(s.player.Position().X())

	s.accumulator += dt
	for s.accumulator >= s.cfg.FixedStep && !s.world.Halted() {
		if report.PhysicsSteps == s.cfg.MaxStepsPerFrame {
			s.accumulator = 0
			break
		}
		s.player.FixedUpdate()
		s.world.Step(s.cfg.FixedStep)
		s.accumulator -= s.cfg.FixedStep
		report.PhysicsSteps++
	}

	if s.world.Halted() {
		report.Reloaded = true
		report.RunDistance = s.Distance()
		report.RunJumps = s.player.Jumps()
		s.reloads++
		if err := s.load(); err != nil {
			return report, err
		}
	}
	return report, nil
}

// Distance returns how far the player has run in the current scene.
func (s *Session) Distance() float64 {
	d := s.player.Position().X()
	if d < 0 {
		return 0
	}
	return d
}

// Player returns the current scene's player controller.
func (s *Session) Player() *PlayerController { return s.player }

// Road returns the current scene's road recycler.
func (s *Session) Road() *RoadRecycler { return s.road }

// World returns the current scene's physics world.
func (s *Session) World() *engine.World { return s.world }

// Reloads returns how many obstacle resets have happened.
func (s *Session) Reloads() int { return s.reloads }

// Frames returns the number of frames stepped.
func (s *Session) Frames() int { return s.frames }
