package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *storage.Store, trackID string, distance float64) string {
	t.Helper()
	id, err := store.SaveRun(storage.Run{TrackID: trackID, Distance: distance, Jumps: 2})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	return id
}

func TestPrintScoresShowsRunIDs(t *testing.T) {
	store := openScoresStore(t)
	id := saveRun(t, store, "highway", 42.5)

	var buf bytes.Buffer
	if err := printScores(&buf, store, "highway", "Highway", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Best Runs - Highway", "42.5", id, "Runs: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintAllStats(t *testing.T) {
	store := openScoresStore(t)
	saveRun(t, store, "night", 10)
	saveRun(t, store, "canyon", 30)
	saveRun(t, store, "canyon", 50)

	var buf bytes.Buffer
	if err := printAllStats(&buf, store); err != nil {
		t.Fatalf("printAllStats: %v", err)
	}
	out := buf.String()
	canyon := strings.Index(out, "canyon")
	night := strings.Index(out, "night")
	if canyon < 0 || night < 0 || canyon > night {
		t.Errorf("tracks should be listed in order:\n%s", out)
	}
	if !strings.Contains(out, "40.0") {
		t.Errorf("canyon average missing:\n%s", out)
	}
}

func TestPrintAllStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printAllStats(&buf, openScoresStore(t)); err != nil {
		t.Fatalf("printAllStats: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestPrintRecentRuns(t *testing.T) {
	store := openScoresStore(t)
	saveRun(t, store, "highway", 10)
	saveRun(t, store, "canyon", 20)
	last := saveRun(t, store, "night", 30)

	var buf bytes.Buffer
	if err := printRecentRuns(&buf, store, 2); err != nil {
		t.Fatalf("printRecentRuns: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, last) || !strings.Contains(out, "canyon") {
		t.Errorf("latest runs missing:\n%s", out)
	}
	if strings.Contains(out, "highway") {
		t.Errorf("limit should drop the oldest run:\n%s", out)
	}
}

func TestPrintRun(t *testing.T) {
	store := openScoresStore(t)
	id := saveRun(t, store, "canyon", 77.25)

	var buf bytes.Buffer
	if err := printRun(&buf, store, id); err != nil {
		t.Fatalf("printRun: %v", err)
	}
	for _, want := range []string{id, "canyon", "77.25", "Score:    77"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}

	if err := printRun(&buf, store, "missing"); err == nil {
		t.Error("expected error for unknown run id")
	}
}

func TestClearScores(t *testing.T) {
	store := openScoresStore(t)
	saveRun(t, store, "highway", 10)
	saveRun(t, store, "night", 20)

	var buf bytes.Buffer
	if err := clearScores(&buf, store, "highway", "Highway"); err != nil {
		t.Fatalf("clearScores: %v", err)
	}
	if !strings.Contains(buf.String(), "Cleared all runs for Highway.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if high, _ := store.HighScore("highway"); high != 0 {
		t.Errorf("highway should be empty, high score %d", high)
	}
	if high, _ := store.HighScore("night"); high != 20 {
		t.Errorf("night runs should survive, high score %d", high)
	}
}
