// Package main provides the CLI entry point for dbtable-go.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dbtable-go/pkg/dbtable"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/config"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"go.uber.org/zap"
)

var (
	configPath string
	format     string
	sheet      string
	area       string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbtable",
		Short: "Inspect and edit tables of integers",
		Long: `dbtable loads a table of nullable integers from a delimited text file
or an xlsx sheet, applies one operation, and prints the result.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", "Input format: auto, csv, xlsx")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "Sheet to read from xlsx input (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&area, "range", "", "A1 range to read from xlsx input (default: all data)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newPrintCmd(),
		newSummaryCmd(),
		newRowCmd(),
		newColCmd(),
		newStatsCmd(),
		newSortCmd(),
		newDelRowCmd(),
		newDelColCmd(),
		newAddColCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// session holds what every subcommand needs after start-up.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	table  *table.Table
}

// openSession resolves configuration, builds the logger and loads the
// input file. Flags given on the command line override the config file.
func openSession(cmd *cobra.Command, inputPath string) (*session, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Input.Format = format
	}
	if flags.Changed("sheet") {
		cfg.Input.Sheet = sheet
	}
	if flags.Changed("range") {
		cfg.Input.Range = area
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, err
	}

	inputFormat, err := dbtable.ParseFormat(cfg.Input.Format)
	if err != nil {
		return nil, err
	}
	opts := dbtable.Options{
		Format: inputFormat,
		Sheet:  cfg.Input.Sheet,
		Range:  cfg.Input.Range,
		Logger: logger,
	}

	t, err := dbtable.Load(inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("loading failed: %w", err)
	}

	return &session{cfg: cfg, logger: logger, table: t}, nil
}

// parseIndex converts a command-line index and checks it against
// [0, limit).
func parseIndex(what, s string, limit int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", what, s)
	}
	if i < 0 || i >= limit {
		return 0, fmt.Errorf("%s index %d out of range (table has %d)", what, i, limit)
	}
	return i, nil
}
