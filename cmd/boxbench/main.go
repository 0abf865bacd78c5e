package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	boxany "github.com/uccidibuti/box-any"
	"github.com/uccidibuti/box-any/internal/bench"
)

type options struct {
	Count   int
	Rounds  int
	Profile string
	Verbose bool
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:          "boxbench",
		Short:        "Compare boxes against interface values holding slices",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1000*1000, "number of values pushed into each slice per round")
	cmd.Flags().IntVar(&opts.Rounds, "rounds", 20, "number of rounds per workload")
	cmd.Flags().StringVar(&opts.Profile, "profile", "none", "profile to record: cpu, mem or none")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.Count <= 0 || opts.Rounds <= 0 {
		return fmt.Errorf("n and rounds must be positive, got n=%d rounds=%d", opts.Count, opts.Rounds)
	}

	if opts.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "none":
	default:
		return fmt.Errorf("unknown profile %q", opts.Profile)
	}

	dynContainers := bench.NewDynContainers(opts.Count)

	boxContainers := bench.NewBoxContainers(opts.Count)
	defer boxany.DropAll(boxContainers)

	measure("dyn box checked", opts, func() {
		bench.ClearDynContainers(dynContainers)
		bench.FillDynContainers(dynContainers, opts.Count)
	})

	measure("box any checked", opts, func() {
		bench.ClearBoxContainers(boxContainers)
		bench.FillBoxContainers(boxContainers, opts.Count, true)
	})

	measure("box any unchecked", opts, func() {
		bench.ClearBoxContainers(boxContainers)
		bench.FillBoxContainers(boxContainers, opts.Count, false)
	})

	return nil
}

func measure(name string, opts options, round func()) {
	// warm up caches and let the slices reach their final capacity
	round()

	fastest := time.Duration(1<<63 - 1)

	startTime := time.Now()
	for range opts.Rounds {
		roundStart := time.Now()
		round()
		fastest = min(fastest, time.Since(roundStart))
	}

	total := time.Since(startTime)

	slog.Info("Workload finished",
		slog.String("name", name),
		slog.Int("rounds", opts.Rounds),
		slog.Duration("mean", total/time.Duration(opts.Rounds)),
		slog.Duration("fastest", fastest),
	)
}
