package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2020/internal/input"
	"advent2020/internal/ledger"
	"advent2020/internal/puzzle"
	"advent2020/internal/render"
)

var recordRuns bool

// allCmd runs every registered day
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every day against the configured input directory",
	Long: `Runs both parts of every registered day and prints a summary table.
Days whose input file is missing are reported as errors but do not stop the
run. With --record, successful answers are stored in the run ledger.`,
	RunE: runAll,
}

func init() {
	allCmd.Flags().BoolVar(&recordRuns, "record", false, "record successful answers in the ledger")
}

func runAll(cmd *cobra.Command, args []string) error {
	var store *ledger.Store
	if recordRuns {
		var err error
		store, err = ledger.Open(cfg.LedgerPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var results []puzzle.Result
	for _, sol := range puzzle.All() {
		path := input.Resolve("", cfg.InputDir, sol.Day)
		data, err := input.Read(path)
		if err != nil {
			results = append(results,
				puzzle.Result{Day: sol.Day, Part: 1, Title: sol.Title, Err: err},
				puzzle.Result{Day: sol.Day, Part: 2, Title: sol.Title, Err: err})
			continue
		}
		for _, part := range []int{1, 2} {
			res := sol.RunPart(part, data)
			results = append(results, res)
			if store != nil && res.Err == nil {
				if _, err := store.Record(res, path); err != nil {
					logger.Warn("failed to record run", zap.Int("day", res.Day), zap.Error(err))
				}
			}
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), render.ResultTable(results))
	return nil
}
