package runner

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/engine"
)

type countingScene struct {
	reloads int
}

func (c *countingScene) Reload() { c.reloads++ }

var testPlayerConfig = PlayerConfig{
	ForwardSpeed:   10,
	JumpImpulse:    8,
	LaneChangeRate: 10,
	LaneWidth:      2,
}

func newTestPlayer() (*PlayerController, *countingScene) {
	scene := &countingScene{}
	body := engine.NewDynamic("player", mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0.4, 0.5, 0.4}, 1)
	return NewPlayerController(body, scene, testPlayerConfig), scene
}

func groundContact() engine.Contact {
	return engine.Contact{
		Other:   engine.NewStatic("road", mgl64.Vec3{}, mgl64.Vec3{5, 0.5, 3}, engine.TagGround),
		Normals: []mgl64.Vec3{engine.Up},
	}
}

func TestLaneIndexClamped(t *testing.T) {
	left := core.NewInputFrame(core.ActionLaneLeft)
	right := core.NewInputFrame(core.ActionLaneRight)
	both := core.NewInputFrame(core.ActionLaneLeft, core.ActionLaneRight)
	none := core.NewInputFrame()

	tests := []struct {
		name   string
		frames []core.InputFrame
		want   int
	}{
		{"no input", []core.InputFrame{none}, 0},
		{"one left", []core.InputFrame{left}, 1},
		{"many left", []core.InputFrame{left, left, left, left, left}, 1},
		{"many right", []core.InputFrame{right, right, right, right}, -1},
		{"left then right back to center", []core.InputFrame{left, left, left, right}, 0},
		{"both in one frame", []core.InputFrame{both}, 0},
		{"right wall then left", []core.InputFrame{right, right, right, left, left}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPlayer()
			for _, in := range tc.frames {
				p.Update(in, 0.02)
				if p.Lane() < MinLane || p.Lane() > MaxLane {
					t.Fatalf("lane %d escaped [%d, %d]", p.Lane(), MinLane, MaxLane)
				}
			}
			if p.Lane() != tc.want {
				t.Errorf("Lane() = %d, expected %d", p.Lane(), tc.want)
			}
		})
	}
}

func TestLaneInterpolation(t *testing.T) {
	p, _ := newTestPlayer()

	// dt * rate = 0.5: halfway to lane +1 (z = 2)
	p.Update(core.NewInputFrame(core.ActionLaneLeft), 0.05)
	if z := p.Position().Z(); math.Abs(z-1) > 1e-9 {
		t.Fatalf("z after half step = %v, expected 1", z)
	}

	p.Update(core.NewInputFrame(), 0.05)
	if z := p.Position().Z(); math.Abs(z-1.5) > 1e-9 {
		t.Errorf("z after second half step = %v, expected 1.5", z)
	}

	// A huge frame clamps t to 1 and lands exactly on the lane.
	p.Update(core.NewInputFrame(core.ActionLaneRight), 10)
	if z := p.Position().Z(); z != 0 {
		t.Errorf("z after long frame = %v, expected 0", z)
	}
}

func TestJumpWhileGrounded(t *testing.T) {
	p, _ := newTestPlayer()
	p.OnContactStay(groundContact())
	if !p.Grounded() {
		t.Fatal("upward contact should ground the player")
	}

	p.Update(core.NewInputFrame(core.ActionJump), 0.02)
	if !p.JumpRequested() {
		t.Fatal("jump input should set the request flag")
	}
	if vy := p.Body().Velocity.Y(); vy != 0 {
		t.Fatalf("frame tick must not apply the impulse, vy = %v", vy)
	}

	p.FixedUpdate()
	if p.JumpRequested() {
		t.Error("physics tick should consume the request")
	}
	if p.Jumps() != 1 {
		t.Errorf("Jumps() = %d, expected 1", p.Jumps())
	}
	if vy := p.Body().Velocity.Y(); vy != 8 {
		t.Errorf("vy after jump = %v, expected 8", vy)
	}

	p.FixedUpdate()
	if p.Jumps() != 1 {
		t.Error("a single request must produce a single impulse")
	}
}

func TestJumpWhileAirborneIsDropped(t *testing.T) {
	p, _ := newTestPlayer()

	p.Update(core.NewInputFrame(core.ActionJump), 0.02)
	p.FixedUpdate()

	if p.Jumps() != 0 || p.Body().Velocity.Y() != 0 {
		t.Error("airborne jump should not apply an impulse")
	}
	if p.JumpRequested() {
		t.Error("airborne jump should still clear the request")
	}

	// Landing afterwards does not resurrect the dropped jump.
	p.OnContactStay(groundContact())
	p.FixedUpdate()
	if p.Jumps() != 0 {
		t.Error("dropped jumps must not be queued")
	}
}

func TestFixedUpdatePreservesVerticalAndLateralVelocity(t *testing.T) {
	p, _ := newTestPlayer()
	p.Body().Velocity = mgl64.Vec3{3, -4, 1.5}

	p.FixedUpdate()

	want := mgl64.Vec3{10, -4, 1.5}
	if p.Body().Velocity != want {
		t.Errorf("velocity = %v, expected %v", p.Body().Velocity, want)
	}
}

func TestGroundedNormalThreshold(t *testing.T) {
	tests := []struct {
		name    string
		normals []mgl64.Vec3
		want    bool
	}{
		{"flat ground", []mgl64.Vec3{{0, 1, 0}}, true},
		{"wall", []mgl64.Vec3{{-1, 0, 0}}, false},
		{"exactly sixty degrees", []mgl64.Vec3{{math.Sqrt(3) / 2, 0.5, 0}}, false},
		{"gentle slope", []mgl64.Vec3{{0, 0.6, 0.8}}, true},
		{"ceiling", []mgl64.Vec3{{0, -1, 0}}, false},
		{"only first normal counts", []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}}, false},
		{"no normals", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPlayer()
			c := groundContact()
			c.Normals = tc.normals
			p.OnContactStay(c)
			if p.Grounded() != tc.want {
				t.Errorf("Grounded() = %v, expected %v", p.Grounded(), tc.want)
			}
		})
	}
}

func TestContactEndClearsGrounded(t *testing.T) {
	p, _ := newTestPlayer()

	p.OnContactStay(groundContact())
	p.OnContactEnd(engine.Contact{Other: groundContact().Other})
	if p.Grounded() {
		t.Error("contact end after stay must leave the player airborne")
	}

	// Last write wins within a frame.
	p.OnContactStay(groundContact())
	p.OnContactEnd(engine.Contact{})
	p.OnContactStay(groundContact())
	if !p.Grounded() {
		t.Error("a later stay should set grounded again")
	}
}

func TestObstacleContactReloads(t *testing.T) {
	p, scene := newTestPlayer()

	p.OnContactBegin(groundContact())
	if scene.reloads != 0 {
		t.Fatal("ground contact must not reload the scene")
	}

	wall := engine.NewStatic("wall", mgl64.Vec3{}, mgl64.Vec3{0.5, 1, 0.8}, engine.TagObstacle)
	p.OnContactBegin(engine.Contact{Other: wall, Normals: []mgl64.Vec3{{-1, 0, 0}}})
	if scene.reloads != 1 {
		t.Errorf("obstacle contact should reload once, got %d", scene.reloads)
	}

	// Stay and end on an obstacle are ordinary contacts.
	p.OnContactStay(engine.Contact{Other: wall, Normals: []mgl64.Vec3{{-1, 0, 0}}})
	p.OnContactEnd(engine.Contact{Other: wall})
	if scene.reloads != 1 {
		t.Error("only contact begin may trigger a reload")
	}
}
