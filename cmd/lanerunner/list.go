package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracks",
	Long:  `Shows every track registered in lane runner.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	tracks := registry.List()

	if len(tracks) == 0 {
		fmt.Fprintln(out, "No tracks available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, tr := range tracks {
		maxIDLen = max(maxIDLen, len(tr.ID))
	}

	fmt.Fprintln(out, "Available tracks:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, tr := range tracks {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, tr.ID, tr.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'lanerunner play <id>' to play a track.")
}
