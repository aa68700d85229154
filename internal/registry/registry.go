// Package registry provides a global registry of playable tracks.
// Track packages register factories in init() functions, so the platform
// can list and start tracks without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Game is what the platform drives. Implementations contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping, timing and
// terminal output.
type Game interface {
	// ID returns the track identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. The screen is pre-cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// TrackInfo contains metadata about a registered track.
type TrackInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance for a track.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a track factory. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: track %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered tracks sorted by ID.
func List() []TrackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TrackInfo, 0, len(factories))
	for id := range factories {
		result = append(result, TrackInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game for the given track ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown track %q", id)
	}
	return f(), nil
}

// Exists reports whether a track is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
