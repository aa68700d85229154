package runner

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/engine"
)

// RecycleMode selects how many tiles may move in one frame.
type RecycleMode string

const (
	// RecycleSingle moves at most one tile per frame. A player that outruns
	// more than one tile in a frame leaves the extra tiles behind until later frames.
	RecycleSingle RecycleMode = "single"
	// RecycleCatchUp keeps recycling until the head tile is ahead of the player.
	RecycleCatchUp RecycleMode = "catch-up"
)

// ErrEmptyPool is returned when the ring is initialized without prefabs.
var ErrEmptyPool = errors.New("runner: prefab pool is empty")

// RoadConfig holds the ring's tunable scalars.
type RoadConfig struct {
	TileCount int
	TileSize  float64
	LaneWidth float64
	Mode      RecycleMode
	LeadTiles int // Tiles at the ring start that always use pool[0]
}

// RoadRecycler keeps a fixed ring of tiles ahead of the player.
type RoadRecycler struct {
	cfg   RoadConfig
	world *engine.World

	tiles    []*Tile // circular buffer, tiles[head] is the next to recycle
	head     int
	recycled int
}

// NewRoadRecycler creates an empty ring that spawns its tiles into world.
func NewRoadRecycler(world *engine.World, cfg RoadConfig) *RoadRecycler {
	if cfg.Mode == "" {
		cfg.Mode = RecycleSingle
	}
	return &RoadRecycler{cfg: cfg, world: world}
}

// Initialize spawns TileCount tiles at X = 0, S, 2S, ... each picking a
// prefab from pool with rng, and enqueues them in creation order.
func (r *RoadRecycler) Initialize(pool []Prefab, rng *rand.Rand) error {
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	if r.cfg.TileCount < 1 || r.cfg.TileSize <= 0 {
		return fmt.Errorf("runner: invalid ring %d x %v", r.cfg.TileCount, r.cfg.TileSize)
	}

	geom := TileGeometry{Size: r.cfg.TileSize, LaneWidth: r.cfg.LaneWidth}
	r.tiles = make([]*Tile, 0, r.cfg.TileCount)
	r.head = 0
	r.recycled = 0
	for i := 0; i < r.cfg.TileCount; i++ {
		prefab := &pool[0]
		if i >= r.cfg.LeadTiles {
			prefab = &pool[rng.Intn(len(pool))]
		}
		r.tiles = append(r.tiles, prefab.Instantiate(r.world, float64(i)*r.cfg.TileSize, geom))
	}
	return nil
}

// Update recycles the head tile once its trailing edge is behind playerX.
// Returns the number of tiles moved this frame.
func (r *RoadRecycler) Update(playerX float64) int {
	moved := 0
	for len(r.tiles) > 0 && r.behind(r.Head(), playerX) {
		r.recycleHead()
		moved++
		if r.cfg.Mode != RecycleCatchUp {
			break
		}
	}
	return moved
}

func (r *RoadRecycler) behind(t *Tile, playerX float64) bool {
	return t.X()+r.cfg.TileSize/2 < playerX
}

// recycleHead dequeues the head, advances it by the ring span and enqueues it at the tail.
func (r *RoadRecycler) recycleHead() {
	t := r.tiles[r.head]
	t.SetX(t.X() + r.Span())
	r.head = (r.head + 1) % len(r.tiles)
	r.recycled++
}

// Head returns the tile that will be recycled next, or nil before Initialize.
func (r *RoadRecycler) Head() *Tile {
	if len(r.tiles) == 0 {
		return nil
	}
	return r.tiles[r.head]
}

// Tiles returns the ring from head to tail.
func (r *RoadRecycler) Tiles() []*Tile {
	out := make([]*Tile, len(r.tiles))
	for i := range r.tiles {
		out[i] = r.tiles[(r.head+i)%len(r.tiles)]
	}
	return out
}

// Span returns the total ring length, TileCount x TileSize.
func (r *RoadRecycler) Span() float64 {
	return float64(r.cfg.TileCount) * r.cfg.TileSize
}

// Recycled returns how many tiles have been moved since Initialize.
func (r *RoadRecycler) Recycled() int {
	return r.recycled
}

// Config returns the ring configuration.
func (r *RoadRecycler) Config() RoadConfig {
	return r.cfg
}
