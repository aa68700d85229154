// Package runner holds the lane runner's gameplay components: the player
// controller, the road tile recycler and the session that drives both.
// Components react to frame ticks, physics ticks and contact callbacks; all
// motion integration and collision detection belong to the engine package.
package runner

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/engine"
)

// Lane bounds. Lane +1 is on the runner's left (+Z).
const (
	MinLane = -1
	MaxLane = 1
)

// groundCosine is the minimum dot product between a contact normal and up
// for the surface to count as ground rather than a wall.
const groundCosine = 0.5

// SceneController restarts the level from its initial scene.
type SceneController interface {
	Reload()
}

// PlayerConfig holds the player's tunable scalars.
type PlayerConfig struct {
	ForwardSpeed   float64 // X velocity set every physics step
	JumpImpulse    float64 // Upward impulse applied on a grounded jump
	LaneChangeRate float64 // Interpolation rate toward the target lane, per second
	LaneWidth      float64 // Lateral distance between lane centers
}

// PlayerController turns input edges and contacts into player body updates.
type PlayerController struct {
	cfg   PlayerConfig
	body  *engine.Body
	scene SceneController

	lane          int
	grounded      bool
	jumpRequested bool
	jumps         int
}

// NewPlayerController attaches a controller to body as its contact listener.
func NewPlayerController(body *engine.Body, scene SceneController, cfg PlayerConfig) *PlayerController {
	p := &PlayerController{
		cfg:   cfg,
		body:  body,
		scene: scene,
	}
	body.Listener = p
	return p
}

// Update is the frame tick: lane input, lateral interpolation and jump capture.
func (p *PlayerController) Update(in core.InputFrame, dt float64) {
	if in.Has(core.ActionLaneLeft) {
		p.lane++
	}
	if in.Has(core.ActionLaneRight) {
		p.lane--
	}
	p.lane = core.Clamp(p.lane, MinLane, MaxLane)

	target := float64(p.lane) * p.cfg.LaneWidth
	p.body.Position[2] = core.LerpF(p.body.Position.Z(), target, dt*p.cfg.LaneChangeRate)

	// Consumed by the next physics step, never here.
	if in.Has(core.ActionJump) {
		p.jumpRequested = true
	}
}

// FixedUpdate is the physics tick: forward velocity and the pending jump.
func (p *PlayerController) FixedUpdate() {
	v := p.body.Velocity
	p.body.Velocity = mgl64.Vec3{p.cfg.ForwardSpeed, v.Y(), v.Z()}

	if !p.jumpRequested {
		return
	}
	p.jumpRequested = false
	if p.grounded {
		p.body.ApplyImpulse(engine.Up.Mul(p.cfg.JumpImpulse))
		p.jumps++
	}
}

// OnContactBegin reloads the scene when the other body is an obstacle.
func (p *PlayerController) OnContactBegin(c engine.Contact) {
	if c.Other != nil && c.Other.Tags.Has(engine.TagObstacle) {
		p.scene.Reload()
	}
}

// OnContactStay marks the player grounded if the first normal faces up.
func (p *PlayerController) OnContactStay(c engine.Contact) {
	if len(c.Normals) == 0 {
		return
	}
	if c.Normals[0].Dot(engine.Up) > groundCosine {
		p.grounded = true
	}
}

// OnContactEnd clears grounded. There is no grace period.
func (p *PlayerController) OnContactEnd(engine.Contact) {
	p.grounded = false
}

// Lane returns the target lane index.
func (p *PlayerController) Lane() int { return p.lane }

// Grounded reports whether the player currently rests on ground.
func (p *PlayerController) Grounded() bool { return p.grounded }

// JumpRequested reports whether a jump waits for the next physics step.
func (p *PlayerController) JumpRequested() bool { return p.jumpRequested }

// Jumps returns the number of impulses applied so far.
func (p *PlayerController) Jumps() int { return p.jumps }

// Body returns the player's physics body.
func (p *PlayerController) Body() *engine.Body { return p.body }

// Position returns the player's world position.
func (p *PlayerController) Position() mgl64.Vec3 { return p.body.Position }
