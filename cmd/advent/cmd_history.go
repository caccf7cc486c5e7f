package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent2020/internal/ledger"
	"advent2020/internal/render"
)

var (
	historyDay   int
	historyLimit int
)

// historyCmd lists recorded runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List answers recorded in the run ledger",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyDay, "day", 0, "only show this day")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum rows to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := ledger.Open(cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.History(historyDay, historyLimit)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), render.HistoryTable(runs))
	return nil
}
