package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/lanerunner"
	"github.com/vovakirdan/lane-runner/internal/logging"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// interactiveLogger logs to the --log file; the terminal belongs to Bubble Tea.
func interactiveLogger() (*log.Logger, func() error) {
	logger, closeFn, err := logging.New(logging.Options{
		Path:   flagLogPath,
		Prefix: "lanerunner",
		Level:  flagLogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() error { return nil }
	}
	return logger, closeFn
}

// openStore opens the runs database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config and --difficulty to the track package and
// reports a config that will fall back to defaults.
func applyGameFlags(logger *log.Logger) {
	lanerunner.SetConfigPath(flagConfig)
	lanerunner.SetDifficultyPreset(flagDifficulty)
	if _, err := lanerunner.LoadConfig(); err != nil {
		logger.Warn("using default configuration", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: using default configuration: %v\n", err)
	}
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}
