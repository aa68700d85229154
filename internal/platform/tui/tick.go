// Package tui runs tracks in the terminal with Bubble Tea: the frame
// ticker, key mapping, colored screen output, the track menu and the
// scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game frame.
type TickMsg time.Time

// tickCmd schedules the next frame. Rates below one frame per second are
// raised to one.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
