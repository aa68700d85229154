package lanerunner

import (
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Obstacle glyphs
const (
	BarrierChar = '█'
	HurdleChar  = '▄'
	RockChar    = '▓'
)

// Track is a named prefab pool with its own palette and scoreboard.
// Pool[0] is always an obstacle-free tile; lead tiles use it.
type Track struct {
	ID    string
	Title string
	Pool  []runner.Prefab

	EdgeColor   core.Color // Lane separators
	PlayerColor core.Color
}

func barrier(lane int, offset float64, c core.Color) runner.ObstacleSpec {
	return runner.ObstacleSpec{Lane: lane, Offset: offset, Length: 1, Height: 3, Glyph: BarrierChar, Color: c}
}

func hurdle(lane int, offset float64, c core.Color) runner.ObstacleSpec {
	return runner.ObstacleSpec{Lane: lane, Offset: offset, Length: 0.5, Height: 0.5, Glyph: HurdleChar, Color: c}
}

func rock(lane int, offset float64, c core.Color) runner.ObstacleSpec {
	return runner.ObstacleSpec{Lane: lane, Offset: offset, Length: 1.5, Height: 1, Glyph: RockChar, Color: c}
}

var highway = Track{
	ID:          "highway",
	Title:       "Highway",
	EdgeColor:   core.ColorYellow,
	PlayerColor: core.ColorBrightCyan,
	Pool: []runner.Prefab{
		{ID: "asphalt", Glyph: '·', Color: core.ColorGray},
		{ID: "cone-left", Glyph: '·', Color: core.ColorGray, Obstacles: []runner.ObstacleSpec{
			barrier(1, 0, core.ColorOrange),
		}},
		{ID: "cone-right", Glyph: '·', Color: core.ColorGray, Obstacles: []runner.ObstacleSpec{
			barrier(-1, 0, core.ColorOrange),
		}},
		{ID: "roadblock", Glyph: '·', Color: core.ColorGray, Obstacles: []runner.ObstacleSpec{
			barrier(0, 2, core.ColorRed),
			barrier(1, 2, core.ColorRed),
		}},
		{ID: "speed-bumps", Glyph: '·', Color: core.ColorGray, Obstacles: []runner.ObstacleSpec{
			hurdle(-1, -1, core.ColorYellow),
			hurdle(0, -1, core.ColorYellow),
			hurdle(1, -1, core.ColorYellow),
		}},
		{ID: "chicane", Glyph: '·', Color: core.ColorGray, Obstacles: []runner.ObstacleSpec{
			barrier(-1, -3, core.ColorRed),
			barrier(1, 3, core.ColorRed),
		}},
	},
}

var canyon = Track{
	ID:          "canyon",
	Title:       "Canyon Run",
	EdgeColor:   core.ColorOrange,
	PlayerColor: core.ColorBrightWhite,
	Pool: []runner.Prefab{
		{ID: "sand", Glyph: '░', Color: core.ColorYellow},
		{ID: "boulders", Glyph: '░', Color: core.ColorYellow, Obstacles: []runner.ObstacleSpec{
			rock(-1, 0, core.ColorGray),
			rock(1, 0, core.ColorGray),
		}},
		{ID: "rockslide", Glyph: '░', Color: core.ColorYellow, Obstacles: []runner.ObstacleSpec{
			rock(-1, -2, core.ColorGray),
			rock(0, -2, core.ColorGray),
			barrier(1, 2, core.ColorRed),
		}},
		{ID: "ledges", Glyph: '░', Color: core.ColorYellow, Obstacles: []runner.ObstacleSpec{
			hurdle(0, -3, core.ColorOrange),
			hurdle(0, 3, core.ColorOrange),
		}},
		{ID: "pillar", Glyph: '░', Color: core.ColorYellow, Obstacles: []runner.ObstacleSpec{
			barrier(0, 0, core.ColorRed),
		}},
	},
}

var night = Track{
	ID:          "night",
	Title:       "Night Drive",
	EdgeColor:   core.ColorBlue,
	PlayerColor: core.ColorBrightYellow,
	Pool: []runner.Prefab{
		{ID: "dark", Glyph: ' ', Color: core.ColorDefault},
		{ID: "wall-left", Glyph: ' ', Color: core.ColorDefault, Obstacles: []runner.ObstacleSpec{
			barrier(1, -2, core.ColorBrightMagenta),
			barrier(0, -2, core.ColorBrightMagenta),
		}},
		{ID: "wall-right", Glyph: ' ', Color: core.ColorDefault, Obstacles: []runner.ObstacleSpec{
			barrier(-1, -2, core.ColorBrightMagenta),
			barrier(0, -2, core.ColorBrightMagenta),
		}},
		{ID: "tripwire", Glyph: ' ', Color: core.ColorDefault, Obstacles: []runner.ObstacleSpec{
			hurdle(-1, 0, core.ColorBrightCyan),
			hurdle(0, 0, core.ColorBrightCyan),
			hurdle(1, 0, core.ColorBrightCyan),
		}},
		{ID: "gauntlet", Glyph: ' ', Color: core.ColorDefault, Obstacles: []runner.ObstacleSpec{
			barrier(0, -4, core.ColorBrightMagenta),
			hurdle(1, 0, core.ColorBrightCyan),
			barrier(-1, 4, core.ColorBrightMagenta),
		}},
	},
}

var tracks = []Track{highway, canyon, night}

// Tracks returns all built-in tracks.
func Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

// TrackByID looks a built-in track up.
func TrackByID(id string) (Track, bool) {
	for _, t := range tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}

func init() {
	for _, t := range tracks {
		registry.Register(t.ID, func() registry.Game {
			return New(t)
		})
	}
}
