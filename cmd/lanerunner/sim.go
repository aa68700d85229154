package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/lanerunner"
	"github.com/vovakirdan/lane-runner/internal/logging"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagFrames      int
	flagJumpEvery   int
	flagLanePattern string
	flagLaneEvery   int
	flagSave        bool
)

var simCmd = &cobra.Command{
	Use:   "sim <track>",
	Short: "Run a headless scripted session",
	Long: `Run a track without a terminal UI, feeding scripted input, and print
a summary. The same seed and script always give the same result.
Logs go to stderr unless --log is given.

The lane pattern is read one character every --lane-every frames,
cycling: L moves left, R moves right, anything else does nothing.

Examples:
  lanerunner sim highway --seed 7 --frames 3000
  lanerunner sim canyon --jump-every 45 --lane-pattern LR-- --lane-every 30
  lanerunner sim night --log-level debug --save
  lanerunner sim highway --log /tmp/sim.log`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frames to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N frames (0 = never)")
	simCmd.Flags().StringVar(&flagLanePattern, "lane-pattern", "", "Lane script, e.g. LR-")
	simCmd.Flags().IntVar(&flagLaneEvery, "lane-every", 30, "Frames between lane script steps")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store finished runs in the database")
}

// simOptions scripts a headless session.
type simOptions struct {
	TrackID     string
	Frames      int
	JumpEvery   int
	LanePattern string
	LaneEvery   int
	Runtime     core.RuntimeConfig
	Config      config.LaneRunnerConfig
}

// simSummary is what a headless session reports.
type simSummary struct {
	Frames       int
	PhysicsSteps int
	Runs         int
	Best         float64
	Distance     float64
	Recycled     int
	Jumps        int
	Lane         int
}

// simLogger logs to w, or to path when one is given.
func simLogger(w io.Writer, path string) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Path:   path,
		Output: w,
		Prefix: "sim",
		Level:  flagLogLevel,
	})
}

func runSim(cmd *cobra.Command, args []string) error {
	logPath := ""
	if cmd.Flags().Changed("log") {
		logPath = flagLogPath
	}
	logger, closeLog, err := simLogger(cmd.ErrOrStderr(), logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	lanerunner.SetConfigPath(flagConfig)
	lanerunner.SetDifficultyPreset(flagDifficulty)
	cfg, err := lanerunner.LoadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	var store *storage.Store
	if flagSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	sum, err := simulate(simOptions{
		TrackID:     args[0],
		Frames:      flagFrames,
		JumpEvery:   flagJumpEvery,
		LanePattern: flagLanePattern,
		LaneEvery:   flagLaneEvery,
		Runtime:     rt,
		Config:      cfg,
	}, logger, store)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), args[0], sum)
	return nil
}

// simulate runs a scripted session. Finished runs are saved when store is non-nil.
func simulate(opts simOptions, logger *log.Logger, store *storage.Store) (simSummary, error) {
	track, ok := lanerunner.TrackByID(opts.TrackID)
	if !ok {
		return simSummary{}, fmt.Errorf("unknown track %q (run 'lanerunner list' to see tracks)", opts.TrackID)
	}

	g := lanerunner.New(track)
	g.ResetWithConfig(opts.Runtime, opts.Config)
	if err := g.Err(); err != nil {
		return simSummary{}, err
	}

	var sum simSummary
	var best float64
	for f := 0; f < opts.Frames; f++ {
		res := g.Step(scriptedInput(opts, f))
		if err := g.Err(); err != nil {
			return sum, err
		}

		report := g.LastReport()
		sum.Frames++
		sum.PhysicsSteps += report.PhysicsSteps
		sum.Recycled += report.Recycled
		if report.Recycled > 0 {
			logger.Debug("tile recycled", "frame", f, "count", report.Recycled, "head", g.Session().Road().Head().X())
		}

		for _, ev := range res.Events {
			if ev.Kind != core.EventRunEnded {
				continue
			}
			sum.Jumps += ev.Jumps
			best = max(best, ev.Distance)
			logger.Info("run ended", "frame", f, "distance", ev.Distance, "jumps", ev.Jumps)
			if store != nil {
				if _, err := store.SaveRun(storage.Run{TrackID: track.ID, Distance: ev.Distance, Jumps: ev.Jumps}); err != nil {
					logger.Error("could not save run", "error", err)
				}
			}
		}
	}

	s := g.Session()
	sum.Runs = s.Reloads()
	sum.Distance = s.Distance()
	sum.Best = max(best, sum.Distance)
	sum.Jumps += s.Player().Jumps()
	sum.Lane = s.Player().Lane()
	return sum, nil
}

// scriptedInput returns the input for frame f.
func scriptedInput(opts simOptions, f int) core.InputFrame {
	in := core.NewInputFrame()
	if opts.JumpEvery > 0 && f > 0 && f%opts.JumpEvery == 0 {
		in.Set(core.ActionJump)
	}
	if opts.LanePattern != "" && opts.LaneEvery > 0 && f%opts.LaneEvery == 0 {
		switch opts.LanePattern[(f/opts.LaneEvery)%len(opts.LanePattern)] {
		case 'L', 'l':
			in.Set(core.ActionLaneLeft)
		case 'R', 'r':
			in.Set(core.ActionLaneRight)
		}
	}
	return in
}

func printSummary(w io.Writer, trackID string, sum simSummary) {
	fmt.Fprintf(w, "track:         %s\n", trackID)
	fmt.Fprintf(w, "frames:        %d\n", sum.Frames)
	fmt.Fprintf(w, "physics steps: %d\n", sum.PhysicsSteps)
	fmt.Fprintf(w, "runs ended:    %d\n", sum.Runs)
	fmt.Fprintf(w, "best distance: %.2f\n", sum.Best)
	fmt.Fprintf(w, "current run:   %.2f\n", sum.Distance)
	fmt.Fprintf(w, "tiles moved:   %d\n", sum.Recycled)
	fmt.Fprintf(w, "jumps:         %d\n", sum.Jumps)
	fmt.Fprintf(w, "lane:          %d\n", sum.Lane)
}

