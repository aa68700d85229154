// Package engine is the host side of the lane runner: rigid boxes with
// gravity, impulses, tags and begin/stay/end contact delivery. Gameplay
// code only sees bodies and contact callbacks; it never integrates motion.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up vector. X runs forward along the road, Z across lanes.
var Up = mgl64.Vec3{0, 1, 0}

// Tags is a bit set of markers queryable on the other body of a contact.
type Tags uint8

const (
	TagGround Tags = 1 << iota
	TagObstacle
	TagPlayer
)

// Has reports whether all bits of t are set.
func (g Tags) Has(t Tags) bool {
	return g&t == t
}

// Body is an axis-aligned box. Static bodies never move on their own and
// only change position when gameplay code writes Position directly.
type Body struct {
	ID          int
	Name        string
	Position    mgl64.Vec3 // Box center
	Velocity    mgl64.Vec3
	HalfExtents mgl64.Vec3
	Mass        float64
	Static      bool
	Tags        Tags

	// Listener receives contact callbacks for dynamic bodies. May be nil.
	Listener ContactListener
}

// NewStatic creates an immovable box.
func NewStatic(name string, center, halfExtents mgl64.Vec3, tags Tags) *Body {
	return &Body{
		Name:        name,
		Position:    center,
		HalfExtents: halfExtents,
		Static:      true,
		Tags:        tags,
	}
}

// NewDynamic creates a box that falls under gravity and collides with statics.
func NewDynamic(name string, center, halfExtents mgl64.Vec3, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:        name,
		Position:    center,
		HalfExtents: halfExtents,
		Mass:        mass,
	}
}

// ApplyImpulse changes velocity instantly by impulse/mass.
// Has no effect on static bodies.
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	if b.Static {
		return
	}
	b.Velocity = b.Velocity.Add(impulse.Mul(1 / b.Mass))
}

// Bounds returns the world-space box of the body.
func (b *Body) Bounds() AABB {
	return AABB{
		Min: b.Position.Sub(b.HalfExtents),
		Max: b.Position.Add(b.HalfExtents),
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Overlaps reports whether two boxes share volume. Touching faces do not count.
func (a AABB) Overlaps(b AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Min[i] >= b.Max[i] || b.Min[i] >= a.Max[i] {
			return false
		}
	}
	return true
}

// separation returns the axis-aligned unit normal (pointing from b toward a)
// and depth of the shallowest way to push a out of b.
func separation(a, b AABB) (mgl64.Vec3, float64) {
	var normal mgl64.Vec3
	depth := -1.0
	for i := 0; i < 3; i++ {
		push := b.Max[i] - a.Min[i] // move a along +axis
		pull := a.Max[i] - b.Min[i] // move a along -axis
		d, sign := push, 1.0
		if pull < push {
			d, sign = pull, -1.0
		}
		if depth < 0 || d < depth {
			depth = d
			normal = mgl64.Vec3{}
			normal[i] = sign
		}
	}
	return normal, depth
}
