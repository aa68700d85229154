package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <track>",
	Short: "Play a track",
	Long: `Start running on the specified track.

Controls:
  A/Left         - Move one lane left
  D/Right        - Move one lane right
  Space/W/Up     - Jump (only while on the ground)
  P              - Pause
  R              - Restart the road
  Ctrl+S         - Save a screenshot
  Esc/B          - Back
  Q/Ctrl+C       - Quit

Difficulty presets scale speed once, before the run:
  easy, normal, hard

Examples:
  lanerunner play highway
  lanerunner play canyon --difficulty hard
  lanerunner play night --config ./my-runner.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom lanerunner YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	trackID := args[0]
	if !registry.Exists(trackID) {
		return fmt.Errorf("unknown track %q (run 'lanerunner list' to see tracks)", trackID)
	}

	logger, closeLog := interactiveLogger()
	defer closeLog()
	applyGameFlags(logger)

	game, err := registry.Create(trackID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, logger, terminalConfig()); err != nil {
		logger.Error("track stopped", "track", trackID, "error", err)
		return err
	}
	return nil
}
