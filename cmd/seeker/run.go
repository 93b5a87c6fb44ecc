package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/timewinder-dev/seeker/model"
)

var (
	jobsFlag      int
	algorithmFlag string
	depthFlag     int
	depthSet      bool
	maxExpFlag    int
	quietFlag     bool
)

var runCmd = &cobra.Command{
	Use:   "run SPECFILE...",
	Short: "Run one or more run specs",
	Args:  cobra.MinimumNArgs(1),
	Run:   runCommand,
}

func init() {
	runCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 0, "Number of specs to run in parallel (default: one per CPU)")
	runCmd.Flags().StringVar(&algorithmFlag, "algorithm", "", "Override the algorithm of every spec")
	runCmd.Flags().IntVar(&depthFlag, "depth", 0, "Override the game search depth")
	runCmd.Flags().IntVar(&maxExpFlag, "max-expansions", 0, "Override the search expansion limit")
	runCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print the summary")
}

func override(s *model.Spec) {
	if algorithmFlag != "" {
		if s.Model.Kind == model.KindGame {
			s.Game.Algorithm = algorithmFlag
		} else {
			s.Search.Algorithm = algorithmFlag
		}
	}
	if depthSet {
		depth := depthFlag
		s.Game.Depth = &depth
	}
	if maxExpFlag > 0 {
		s.Search.MaxExpansions = maxExpFlag
	}
}

func runCommand(cmd *cobra.Command, args []string) {
	depthSet = cmd.Flags().Changed("depth")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reporter model.Reporter = &model.SilentReporter{}
	if len(args) > 1 && !quietFlag {
		reporter = &model.ColorReporter{Writer: os.Stderr}
	}
	batch := model.NewBatch(jobsFlag, reporter)
	batch.Override = override

	fmt.Fprintln(os.Stderr, color.Cyan.Sprintf("Running %d spec(s)...", len(args)))
	outcomes := batch.Run(ctx, args)

	failed := false
	for _, o := range outcomes {
		if !o.Success() {
			failed = true
		}
		if o.Err != nil {
			log.Error().Err(o.Err).Str("spec", o.Path).Msg("Couldn't run spec")
			continue
		}
		if quietFlag {
			continue
		}
		fmt.Fprint(os.Stderr, model.FormatResult(o.Result))
		fmt.Fprint(os.Stderr, model.FormatAllViolations(o.Result.Violations))
		fmt.Fprint(os.Stderr, model.FormatStatistics(o.Result))
	}

	if len(outcomes) > 1 || quietFlag {
		fmt.Fprint(os.Stderr, model.FormatBatchSummary(outcomes))
	} else if !failed {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, color.Green.Sprint("✓ Run completed - all expectations met"))
	}
	if failed {
		os.Exit(1)
	}
}
