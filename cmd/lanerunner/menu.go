package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a track picker menu",
	Long: `Start lane runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a track, Tab for
the scoreboard. Esc during a run returns to the menu.

Examples:
  lanerunner menu
  lanerunner menu --fps 30
  lanerunner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := interactiveLogger()
	defer closeLog()
	applyGameFlags(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.TrackID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = timeSeed()
		}
		backToMenu, err := tui.Run(game, store, logger, runCfg)
		if err != nil {
			logger.Error("track stopped", "track", result.TrackID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
