package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
	"advent2020/internal/watch"
)

// watchCmd re-solves a day whenever its input file changes
var watchCmd = &cobra.Command{
	Use:   "watch [day]",
	Short: "Re-solve a day whenever its input file changes",
	Long: `Watches the day's input file and re-runs both parts on every save.
Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&inputPath, "input", "", "input file to watch instead of the default")
}

func runWatch(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day must be a number, got %q", args[0])
	}
	sol, err := puzzle.Get(day)
	if err != nil {
		return err
	}

	path := input.Resolve(inputPath, cfg.InputDir, day)
	out := cmd.OutOrStdout()

	solve := func(p string) {
		data, err := input.Read(p)
		if err != nil {
			fmt.Fprintf(out, "day %d: %v\n", day, err)
			return
		}
		for _, part := range []int{1, 2} {
			res := sol.RunPart(part, data)
			if res.Err != nil {
				fmt.Fprintf(out, "day %d part %d: %v\n", res.Day, res.Part, res.Err)
				continue
			}
			fmt.Fprintf(out, "day %d part %d: %d (%s)\n", res.Day, res.Part, res.Answer, res.Duration)
		}
	}

	w, err := watch.New(path, logger, solve)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	// Solve once up front so the first answer doesn't wait for an edit.
	solve(path)

	logger.Info("watching for changes", zap.String("path", path))
	<-ctx.Done()
	return nil
}
