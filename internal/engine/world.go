package engine

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// World owns all bodies of a scene and advances them in fixed steps.
type World struct {
	Gravity mgl64.Vec3

	bodies   []*Body
	nextID   int
	touching map[int][]Contact // dynamic body ID -> contacts from the previous step
	halted   bool
}

// NewWorld creates an empty world with the given gravity acceleration.
func NewWorld(gravity mgl64.Vec3) *World {
	return &World{
		Gravity:  gravity,
		nextID:   1,
		touching: make(map[int][]Contact),
	}
}

// Add registers a body and assigns its ID.
func (w *World) Add(b *Body) *Body {
	b.ID = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns all bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Halt stops delivery of the remaining contact callbacks of the current step
// and turns later steps into no-ops. Used when the scene is being torn down.
func (w *World) Halt() {
	w.halted = true
}

// Halted reports whether Halt was called.
func (w *World) Halted() bool {
	return w.halted
}

// Step integrates dynamic bodies by dt seconds, resolves penetration against
// static bodies and delivers contact callbacks.
func (w *World) Step(dt float64) {
	if w.halted {
		return
	}
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		current := w.detect(b)
		w.resolve(b, current)
		w.dispatch(b, current)
		if w.halted {
			return
		}
	}
}

// detect collects every static body overlapping b at its integrated position.
func (w *World) detect(b *Body) []Contact {
	var contacts []Contact
	box := b.Bounds()
	for _, other := range w.bodies {
		if !other.Static {
			continue
		}
		if !box.Overlaps(other.Bounds()) {
			continue
		}
		normal, _ := separation(box, other.Bounds())
		contacts = append(contacts, Contact{
			Other:   other,
			Normals: []mgl64.Vec3{normal},
		})
	}
	return contacts
}

// resolve pushes b out of each contacted body and removes the velocity
// component heading into it. Deeper contacts go first, so a box barely
// clipped at a seam is usually cleared by the push out of its neighbour.
func (w *World) resolve(b *Body, contacts []Contact) {
	start := b.Bounds()
	depths := make(map[int]float64, len(contacts))
	for _, c := range contacts {
		_, depths[c.Other.ID] = separation(start, c.Other.Bounds())
	}
	ordered := append([]Contact(nil), contacts...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return depths[ordered[i].Other.ID] > depths[ordered[j].Other.ID]
	})

	for _, c := range ordered {
		box := b.Bounds()
		otherBox := c.Other.Bounds()
		if !box.Overlaps(otherBox) {
			continue // already pushed clear by an earlier contact
		}
		normal, depth := separation(box, otherBox)
		b.Position = b.Position.Add(normal.Mul(depth))
		if into := b.Velocity.Dot(normal); into < 0 {
			b.Velocity = b.Velocity.Sub(normal.Mul(into))
		}
	}
}

func (w *World) dispatch(b *Body, current []Contact) {
	previous := w.touching[b.ID]
	w.touching[b.ID] = current

	if b.Listener == nil {
		return
	}

	wasTouching := make(map[int]bool, len(previous))
	for _, c := range previous {
		wasTouching[c.Other.ID] = true
	}
	isTouching := make(map[int]bool, len(current))
	for _, c := range current {
		isTouching[c.Other.ID] = true
	}

	for _, c := range current {
		if !wasTouching[c.Other.ID] {
			b.Listener.OnContactBegin(c)
			if w.halted {
				return
			}
		}
	}
	for _, c := range current {
		if wasTouching[c.Other.ID] {
			b.Listener.OnContactStay(c)
			if w.halted {
				return
			}
		}
	}
	for _, c := range previous {
		if !isTouching[c.Other.ID] {
			b.Listener.OnContactEnd(Contact{Other: c.Other})
			if w.halted {
				return
			}
		}
	}
}
