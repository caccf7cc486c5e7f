package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
)

var solvePart int

// solveCmd runs one day's puzzle
var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Run one day's puzzle and print the answer(s)",
	Long: `Runs the given day against its input file and prints one answer per
part. With --part, only that part runs.

Example:
  advent solve 1
  advent solve 3 --part 2 --input sample.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solvePart, "part", 0, "run only this part (1 or 2)")
	solveCmd.Flags().StringVar(&inputPath, "input", "", "input file (\"-\" for stdin)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day must be a number, got %q", args[0])
	}
	if solvePart < 0 || solvePart > 2 {
		return fmt.Errorf("part must be 1 or 2, got %d", solvePart)
	}

	results, _, err := solveDay(day, solvePart)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("day %d part %d: %w", res.Day, res.Part, res.Err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", res.Answer)
	}
	return nil
}

// solveDay runs the requested parts of a day (part 0 means both) and
// returns the results plus the resolved input path.
func solveDay(day, part int) ([]puzzle.Result, string, error) {
	sol, err := puzzle.Get(day)
	if err != nil {
		return nil, "", err
	}

	path := input.Resolve(inputPath, cfg.InputDir, day)
	data, err := input.Read(path)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("input loaded",
		zap.Int("day", day),
		zap.String("path", path),
		zap.Int("bytes", len(data)))

	parts := []int{1, 2}
	if part != 0 {
		parts = []int{part}
	}
	results := make([]puzzle.Result, 0, len(parts))
	for _, p := range parts {
		res := sol.RunPart(p, data)
		logger.Debug("part finished",
			zap.Int("day", res.Day),
			zap.Int("part", res.Part),
			zap.Duration("took", res.Duration),
			zap.Error(res.Err))
		results = append(results, res)
	}
	return results, path, nil
}
