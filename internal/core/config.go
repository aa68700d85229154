package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameTime returns the duration of one frame in seconds.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Distance covered in the current run
	Best     int  // Best distance of this session
	Runs     int  // Number of finished runs
	GameOver bool // Whether the game has ended for good
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	// EventRunEnded fires when the scene resets after an obstacle hit.
	// Event.Score holds the whole distance of the finished run.
	EventRunEnded EventKind = iota + 1
)

// Event is emitted by Game.Step for the platform to act on (persist, log).
type Event struct {
	Kind     EventKind
	Score    int
	Distance float64
	Jumps    int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
