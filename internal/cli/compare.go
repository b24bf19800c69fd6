package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ospina115/comparador-excel/pkg/config"
	"github.com/Ospina115/comparador-excel/pkg/match"
	"github.com/Ospina115/comparador-excel/pkg/run"
	"github.com/Ospina115/comparador-excel/pkg/tablediff"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	FolderA    string
	FolderB    string
	OutputDir  string
	Threshold  float64
	KeyColumns []string
	Output     string
	Progress   bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare paired workbooks between two folders",
		Long: `Compare spreadsheet files between folder A (older exports) and folder B
(newer exports). Files are paired by name, exactly or fuzzily, and each pair's
first sheets are diffed row by row. Pairs with added or modified rows produce
a result workbook in the output directory.

Folders can be given as flags or through FOLDER_A / FOLDER_B environment
variables, including a .env file in the working directory.`,
		RunE: runCompare,
	}

	cmd.Flags().StringVarP(&compareFlags.FolderA, "folder-a", "a", "", "folder with the older exports")
	cmd.Flags().StringVarP(&compareFlags.FolderB, "folder-b", "b", "", "folder with the newer exports")
	cmd.Flags().StringVarP(&compareFlags.OutputDir, "output-dir", "o", "", "directory for result workbooks (default comparisons_output)")
	cmd.Flags().Float64VarP(&compareFlags.Threshold, "threshold", "t", config.DefaultFuzzyThreshold, "minimum name similarity for fuzzy pairing, between 0 and 1")
	cmd.Flags().StringSliceVar(&compareFlags.KeyColumns, "key-columns", nil, "header names accepted as key columns")
	cmd.Flags().StringVar(&compareFlags.Output, "output", "", "output format: human, json")
	cmd.Flags().BoolVar(&compareFlags.Progress, "progress", false, "show a progress bar instead of per-pair lines")
	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "", "write a structured run log to this file")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "", "run log format: json, text")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "", "run log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load .env before reading the environment
	if err := config.LoadEnvFile(globalFlags.EnvFile); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	applyFlagsToConfig(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateCompareFolders(cfg); err != nil {
		return err
	}

	operation, err := createOperation(cfg)
	if err != nil {
		return fmt.Errorf("failed to create comparison operation: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	formatter := newFormatter(cfg)

	engine := run.NewEngine(
		match.NewPairer(operation.FuzzyThreshold),
		tablediff.NewDiffer(tablediff.NewKeyDetector(operation.KeyCandidates)),
		formatter,
		logger,
		operation,
	)
	if cfg.Output.Quiet {
		engine.SetOutput(io.Discard)
	}

	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	os.Exit(report.Status.ExitCode())
	return nil
}
