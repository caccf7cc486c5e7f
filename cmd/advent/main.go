package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advent2020/internal/config"

	// Register daily solutions.
	_ "advent2020/internal/day01"
	_ "advent2020/internal/day02"
	_ "advent2020/internal/day03"
	_ "advent2020/internal/day04"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputDir   string
	inputPath  string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code 2020 solutions (days 1-4)",
	Long: `advent runs the Advent of Code 2020 solutions for days 1 through 4.

Each day reads one plain-text input file, parses it into in-memory
structures, and prints a single numeric answer per part. Inputs resolve to
<input-dir>/day<N>.txt unless --input is given; "-" reads stdin.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if inputDir != "" {
			cfg.InputDir = inputDir
		}

		zapCfg := zap.NewProductionConfig()
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(parsed)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "advent.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&inputDir, "input-dir", "", "directory holding dayN.txt inputs (overrides config)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
