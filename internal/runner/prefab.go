package runner

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/engine"
)

// slabThickness is the depth of a road tile below the running surface (y = 0).
const slabThickness = 1.0

// ObstacleSpec places one obstacle box on a tile.
type ObstacleSpec struct {
	Lane   int     // -1, 0 or 1
	Offset float64 // X of the obstacle center relative to the tile center
	Length float64 // Extent along X
	Height float64 // Extent above the road surface
	Glyph  rune
	Color  core.Color
}

// Prefab is a road tile template: a slab spanning all lanes plus obstacles.
type Prefab struct {
	ID        string
	Glyph     rune // Road surface glyph
	Color     core.Color
	Obstacles []ObstacleSpec
}

// TileGeometry is what instantiation needs to know about the road layout.
type TileGeometry struct {
	Size      float64
	LaneWidth float64
}

// Tile is one placed instance of a prefab. Its X is the slab center.
type Tile struct {
	Prefab *Prefab

	x     float64
	slab  *engine.Body
	parts []tilePart
}

type tilePart struct {
	body   *engine.Body
	offset float64 // X relative to the tile center
}

// Instantiate creates the prefab's bodies in w centered at x.
func (p *Prefab) Instantiate(w *engine.World, x float64, geom TileGeometry) *Tile {
	t := &Tile{Prefab: p, x: x}

	roadHalfWidth := 1.5 * geom.LaneWidth
	t.slab = w.Add(engine.NewStatic(
		p.ID,
		mgl64.Vec3{x, -slabThickness / 2, 0},
		mgl64.Vec3{geom.Size / 2, slabThickness / 2, roadHalfWidth},
		engine.TagGround,
	))
	t.parts = append(t.parts, tilePart{body: t.slab})

	for i, o := range p.Obstacles {
		half := mgl64.Vec3{o.Length / 2, o.Height / 2, 0.4 * geom.LaneWidth}
		center := mgl64.Vec3{x + o.Offset, o.Height / 2, float64(o.Lane) * geom.LaneWidth}
		b := w.Add(engine.NewStatic(fmt.Sprintf("%s/%d", p.ID, i), center, half, engine.TagObstacle))
		t.parts = append(t.parts, tilePart{body: b, offset: o.Offset})
	}
	return t
}

// X returns the tile center along the road.
func (t *Tile) X() float64 {
	return t.x
}

// SetX moves the tile and every body on it.
func (t *Tile) SetX(x float64) {
	t.x = x
	for _, part := range t.parts {
		part.body.Position[0] = x + part.offset
	}
}

// Bodies returns the slab followed by the obstacles.
func (t *Tile) Bodies() []*engine.Body {
	bodies := make([]*engine.Body, len(t.parts))
	for i, part := range t.parts {
		bodies[i] = part.body
	}
	return bodies
}

// Obstacles returns the obstacle bodies of this tile, paired with their specs.
func (t *Tile) Obstacles() []PlacedObstacle {
	out := make([]PlacedObstacle, 0, len(t.parts)-1)
	for i, part := range t.parts[1:] {
		out = append(out, PlacedObstacle{Spec: t.Prefab.Obstacles[i], Body: part.body})
	}
	return out
}

// PlacedObstacle is an obstacle body with the spec it was built from.
type PlacedObstacle struct {
	Spec ObstacleSpec
	Body *engine.Body
}
