package lanerunner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Visual characters for rendering
const (
	PlayerGrounded = '◉'
	PlayerAirborne = '○'
	BorderChar     = '─'
	SeparatorChar  = '╌'
	GroundChar     = '═'
)

const (
	viewUnits   = 40.0 // World units visible across the screen width
	rowsPerUnit = 2.0  // Side strip vertical scale
	sideRows    = 7
)

// layout maps world coordinates to screen cells for one frame.
type layout struct {
	w, h      int
	playerCol int
	playerX   float64
	scale     float64 // Columns per world unit
	laneWidth float64

	top   int // Border row above the leftmost lane
	bandH int // Rows per lane band

	sideTop    int // First row of the side strip, -1 when hidden
	sideGround int
}

func newLayout(w, h int, playerX, laneWidth float64) layout {
	l := layout{
		w:         w,
		h:         h,
		playerCol: w / 5,
		playerX:   playerX,
		scale:     float64(w) / viewUnits,
		laneWidth: laneWidth,
		top:       2,
		bandH:     3,
		sideTop:   -1,
	}
	// HUD, borders and help line must fit; shrink lanes before dropping them.
	if l.top+3*(l.bandH+1)+2 > h {
		l.bandH = 1
	}
	if bottom := l.bottom(); bottom+1+sideRows+1 < h {
		l.sideTop = bottom + 2
		l.sideGround = l.sideTop + sideRows - 1
	}
	return l
}

// bottom is the border row below the rightmost lane.
func (l layout) bottom() int {
	return l.top + 3*(l.bandH+1)
}

func (l layout) col(x float64) int {
	return l.playerCol + int(math.Round((x-l.playerX)*l.scale))
}

// span returns the columns covered by [x0, x1), at least one.
func (l layout) span(x0, x1 float64) (int, int) {
	c0, c1 := l.col(x0), l.col(x1)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// bandStart returns the first row of a lane band. Lane +1 is drawn on top.
func (l layout) bandStart(lane int) int {
	return l.top + 1 + (runner.MaxLane-lane)*(l.bandH+1)
}

// laneRow maps a continuous lateral position to a row inside the lane area.
func (l layout) laneRow(z float64) int {
	lane := z / l.laneWidth
	center := float64(l.top+1) + (float64(runner.MaxLane)-lane)*float64(l.bandH+1) + float64(l.bandH/2)
	return int(math.Round(center))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "SCENE ERROR", g.err.Error())
		return
	}
	if g.session == nil {
		return
	}

	player := g.session.Player()
	pos := player.Position()
	l := newLayout(dst.Width(), dst.Height(), pos.X(), g.cfg.Road.LaneWidth)

	g.drawRoad(dst, l)
	g.drawObstacles(dst, l)
	g.drawPlayer(dst, l, player)
	if l.sideTop >= 0 {
		g.drawSideStrip(dst, l, player)
	}
	g.drawHUD(dst, player)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if g.crashFrames > 0 {
		g.drawCenteredMessage(dst, "CRASH!", fmt.Sprintf("Run: %d  Best: %d", g.lastRun, g.best))
	}
}

func (g *Game) drawRoad(dst *core.Screen, l layout) {
	half := g.cfg.Road.TileSize / 2
	for _, tile := range g.session.Road().Tiles() {
		c0, c1 := l.span(tile.X()-half, tile.X()+half)
		width := c1 - c0

		dst.DrawHLineColored(c0, l.top, width, BorderChar, g.track.EdgeColor)
		dst.DrawHLineColored(c0, l.bottom(), width, BorderChar, g.track.EdgeColor)
		for lane := runner.MaxLane; lane >= runner.MinLane; lane-- {
			start := l.bandStart(lane)
			if lane > runner.MinLane {
				dst.DrawHLineColored(c0, start+l.bandH, width, SeparatorChar, g.track.EdgeColor)
			}
			if tile.Prefab.Glyph == ' ' {
				continue
			}
			for row := start; row < start+l.bandH; row++ {
				dst.DrawHLineColored(c0, row, width, tile.Prefab.Glyph, tile.Prefab.Color)
			}
		}
	}
}

func (g *Game) drawObstacles(dst *core.Screen, l layout) {
	for _, tile := range g.session.Road().Tiles() {
		for _, o := range tile.Obstacles() {
			x := o.Body.Position.X()
			c0, c1 := l.span(x-o.Spec.Length/2, x+o.Spec.Length/2)
			start := l.bandStart(o.Spec.Lane)
			for row := start; row < start+l.bandH; row++ {
				dst.DrawHLineColored(c0, row, c1-c0, o.Spec.Glyph, o.Spec.Color)
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout, player *runner.PlayerController) {
	glyph := PlayerAirborne
	if player.Grounded() {
		glyph = PlayerGrounded
	}
	half := g.cfg.Player.Width / 2
	c0, c1 := l.span(l.playerX-half, l.playerX+half)
	dst.DrawHLineColored(c0, l.laneRow(player.Position().Z()), c1-c0, glyph, g.track.PlayerColor)
}

// drawSideStrip shows the height profile of the lane the player is in.
func (g *Game) drawSideStrip(dst *core.Screen, l layout, player *runner.PlayerController) {
	pos := player.Position()
	lane := core.Clamp(int(math.Round(pos.Z()/l.laneWidth)), runner.MinLane, runner.MaxLane)

	half := g.cfg.Road.TileSize / 2
	for _, tile := range g.session.Road().Tiles() {
		c0, c1 := l.span(tile.X()-half, tile.X()+half)
		dst.DrawHLineColored(c0, l.sideGround, c1-c0, GroundChar, g.track.EdgeColor)

		for _, o := range tile.Obstacles() {
			if o.Spec.Lane != lane {
				continue
			}
			x := o.Body.Position.X()
			oc0, oc1 := l.span(x-o.Spec.Length/2, x+o.Spec.Length/2)
			rows := int(math.Ceil(o.Spec.Height * rowsPerUnit))
			for i := 1; i <= rows; i++ {
				row := l.sideGround - i
				if row < l.sideTop {
					break
				}
				dst.DrawHLineColored(oc0, row, oc1-oc0, o.Spec.Glyph, o.Spec.Color)
			}
		}
	}

	glyph := PlayerAirborne
	if player.Grounded() {
		glyph = PlayerGrounded
	}
	bottom := pos.Y() - g.cfg.Player.Height/2
	base := l.sideGround - 1 - int(math.Max(0, bottom)*rowsPerUnit)
	rows := core.Max(1, int(g.cfg.Player.Height*rowsPerUnit))
	pc0, pc1 := l.span(l.playerX-g.cfg.Player.Width/2, l.playerX+g.cfg.Player.Width/2)
	for i := 0; i < rows; i++ {
		row := base - i
		if row < l.sideTop {
			break
		}
		dst.DrawHLineColored(pc0, row, pc1-pc0, glyph, g.track.PlayerColor)
	}
}

var laneNames = map[int]string{1: "L", 0: "C", -1: "R"}

func (g *Game) drawHUD(dst *core.Screen, player *runner.PlayerController) {
	air := "ground"
	if !player.Grounded() {
		air = "air"
	}
	left := fmt.Sprintf(" %s  Dist: %d  Best: %d  Runs: %d ", g.track.Title, int(g.session.Distance()), g.best, g.runs)
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf(" Lane: %s  %s  Recycled: %d ", laneNames[player.Lane()], air, g.session.Road().Recycled())
	if x := dst.Width() - len(right); x > len(left) {
		dst.DrawTextColored(x, 0, right, core.ColorGray)
	}

	help := "a/d lanes  space jump  p pause  r restart  q quit"
	if dst.Height() > 1 && len(help) < dst.Width() {
		dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
