// lanerunner is an endless three-lane runner for the terminal.
//
// Usage:
//
//	lanerunner list              - List available tracks
//	lanerunner play <track>      - Play a track
//	lanerunner menu              - Pick tracks interactively
//	lanerunner scores [track]    - Show best runs, stats or a single run
//	lanerunner sim <track>       - Run a headless scripted session
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible tracks
//	--db <path>     - Set database path (default: ~/.lanerunner/runs.db)
//	--log <path>    - Set log file for interactive commands (and sim, when given)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import tracks to register them
	_ "github.com/vovakirdan/lane-runner/internal/games/lanerunner"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanerunner",
	Short: "Lane Runner - an endless three-lane runner in your terminal",
	Long: `Lane Runner puts you on an endless road with three lanes.
You run forward on your own: switch lanes to dodge barriers and
jump over low hurdles. Touching an obstacle restarts the road.

Available commands:
  list     - Show all tracks
  play     - Play a track directly
  menu     - Interactive track picker
  scores   - View best runs
  sim      - Headless scripted run

Examples:
  lanerunner list
  lanerunner play highway
  lanerunner play canyon --difficulty hard
  lanerunner menu
  lanerunner sim night --frames 3000 --jump-every 40`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.lanerunner/lanerunner.log", "Log file for interactive commands")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
