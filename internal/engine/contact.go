package engine

import "github.com/go-gl/mathgl/mgl64"

// Contact describes a touch between a dynamic body and another body.
type Contact struct {
	Other *Body

	// Normals point from Other toward the receiving body. Begin and stay
	// contacts carry at least one normal; end contacts carry none.
	Normals []mgl64.Vec3
}

// ContactListener receives contact callbacks during World.Step.
// Within one step all begins are delivered first, then stays, then ends.
type ContactListener interface {
	OnContactBegin(c Contact)
	OnContactStay(c Contact)
	OnContactEnd(c Contact)
}
