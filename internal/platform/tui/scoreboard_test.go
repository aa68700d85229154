package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

func TestScoreboardShowsRunsPerTrack(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{TrackID: "canyon", Distance: 42.5, Jumps: 2})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.tracks) == 0 || m.tracks[0].ID != "canyon" {
		t.Fatalf("tracks should be sorted by ID, got %v", m.tracks)
	}

	view := m.View()
	if !strings.Contains(view, "Canyon Run") || !strings.Contains(view, "42.5") {
		t.Errorf("canyon view missing run:\n%s", view)
	}
	if !strings.Contains(view, "runs 1") {
		t.Errorf("canyon view missing stats:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("next track should be empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 {
		t.Errorf("prev track should reload canyon runs, got %d", len(m.runs))
	}
}

func TestScoreboardBackAndNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.showSidebar {
		t.Error("narrow screens should not show the sidebar")
	}
	if !strings.Contains(m.View(), "< Canyon Run >") {
		t.Error("narrow layout should show the current track between arrows")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}
