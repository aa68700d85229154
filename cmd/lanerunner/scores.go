package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresAll    bool
	flagScoresRecent int
	flagScoresRun    string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [track]",
	Short: "Show best runs for a track",
	Long: `Display the best runs recorded for the specified track.

Without a track, one of --all, --recent or --run selects what to show.

Examples:
  lanerunner scores highway
  lanerunner scores canyon --limit 25
  lanerunner scores --all
  lanerunner scores --recent 5
  lanerunner scores --run 0b9f3c1e-6d0a-4c52-9a57-1f2e3d4c5b6a
  lanerunner scores night --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show statistics for every track")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the latest N runs across all tracks")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its run ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the track")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "recent", "run", "clear")
}

var errNoTrack = errors.New("a track is required (run 'lanerunner list' to see tracks)")

func runScores(cmd *cobra.Command, args []string) error {
	var trackID, title string
	if len(args) == 1 {
		trackID = args[0]
		game, err := registry.Create(trackID)
		if err != nil {
			return fmt.Errorf("%w (run 'lanerunner list' to see tracks)", err)
		}
		title = game.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresAll:
		return printAllStats(out, store)
	case flagScoresRecent > 0:
		return printRecentRuns(out, store, flagScoresRecent)
	case flagScoresRun != "":
		return printRun(out, store, flagScoresRun)
	case trackID == "":
		return errNoTrack
	case flagScoresClear:
		return clearScores(out, store, trackID, title)
	default:
		return printScores(out, store, trackID, title, flagScoresLimit)
	}
}

func printScores(out io.Writer, store *storage.Store, trackID, title string, limit int) error {
	runs, err := store.TopRuns(trackID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'lanerunner play %s' to set the first distance!\n", trackID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-16s  %s\n", "Rank", "Distance", "Jumps", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-16s  %s\n", "----", "--------", "-----", "----", "---")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10.1f  %-5d  %-16s  %s\n",
			i+1, r.Distance, r.Jumps, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	stats, err := store.GetTrackStats(trackID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgDistance)
	return nil
}

func printAllStats(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllTracksStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Track Statistics")
	fmt.Fprintln(out)
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-10s  %-5s  %-6s  %-9s  %-10s  %s\n", "Track", "Runs", "Best", "Average", "Total", "Last Played")
	fmt.Fprintf(out, "  %-10s  %-5s  %-6s  %-9s  %-10s  %s\n", "-----", "----", "----", "-------", "-----", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-10s  %-5d  %-6d  %-9.1f  %-10.1f  %s\n",
			id, s.RunsCount, s.HighScore, s.AvgDistance, s.TotalDistance, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRecentRuns(out io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Recent Runs")
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %-10s  %-5s  %-16s  %s\n", "Track", "Distance", "Jumps", "Date", "Run")
	fmt.Fprintf(out, "  %-10s  %-10s  %-5s  %-16s  %s\n", "-----", "--------", "-----", "----", "---")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-10s  %-10.1f  %-5d  %-16s  %s\n",
			r.TrackID, r.Distance, r.Jumps, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
	return nil
}

func printRun(out io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Fprintf(out, "Run:      %s\n", run.RunID)
	fmt.Fprintf(out, "Track:    %s\n", run.TrackID)
	fmt.Fprintf(out, "Distance: %.2f\n", run.Distance)
	fmt.Fprintf(out, "Score:    %d\n", run.Score)
	fmt.Fprintf(out, "Jumps:    %d\n", run.Jumps)
	fmt.Fprintf(out, "Date:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func clearScores(out io.Writer, store *storage.Store, trackID, title string) error {
	if err := store.ClearRuns(trackID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared all runs for %s.\n", title)
	return nil
}
