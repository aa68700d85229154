package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Output: &buf, Prefix: "lanerunner", Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()

	logger.Debug("tile recycled", "x", 30)
	out := buf.String()
	if !strings.Contains(out, "lanerunner") || !strings.Contains(out, "tile recycled") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Output: &buf, Level: "warn"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	logger, closeFn, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("run ended", "distance", 42.5)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "run ended") {
		t.Errorf("log file missing entry: %q", data)
	}
}
