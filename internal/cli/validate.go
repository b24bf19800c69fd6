package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Ospina115/comparador-excel/internal/platform"
	"github.com/Ospina115/comparador-excel/pkg/config"
	"github.com/Ospina115/comparador-excel/pkg/logging"
	"github.com/Ospina115/comparador-excel/pkg/models"
	"github.com/Ospina115/comparador-excel/pkg/output"
)

// validateCompareFolders checks that both input folders are set and usable
func validateCompareFolders(cfg *config.Config) error {
	if cfg.Compare.FolderA == "" || cfg.Compare.FolderB == "" {
		return fmt.Errorf("both input folders are required: pass --folder-a/--folder-b, set FOLDER_A/FOLDER_B, or configure compare.folder_a/compare.folder_b")
	}

	cfg.Compare.FolderA = platform.NormalizePath(cfg.Compare.FolderA)
	cfg.Compare.FolderB = platform.NormalizePath(cfg.Compare.FolderB)

	for _, folder := range []struct {
		flag string
		path string
	}{
		{"folder A", cfg.Compare.FolderA},
		{"folder B", cfg.Compare.FolderB},
	} {
		if err := platform.ValidatePath(folder.path); err != nil {
			return fmt.Errorf("invalid %s: %w", folder.flag, err)
		}

		info, err := os.Stat(folder.path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist: %s", folder.flag, folder.path)
		} else if err != nil {
			return fmt.Errorf("failed to access %s: %w", folder.flag, err)
		} else if !info.IsDir() {
			return fmt.Errorf("%s is not a directory: %s", folder.flag, folder.path)
		}
	}

	// Validate paths are not identical
	aAbs, err := filepath.Abs(cfg.Compare.FolderA)
	if err != nil {
		return fmt.Errorf("failed to resolve folder A path: %w", err)
	}
	bAbs, err := filepath.Abs(cfg.Compare.FolderB)
	if err != nil {
		return fmt.Errorf("failed to resolve folder B path: %w", err)
	}
	if aAbs == bAbs {
		return fmt.Errorf("folder A and folder B cannot be the same: %s", aAbs)
	}

	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if compareFlags.FolderA != "" {
		cfg.Compare.FolderA = compareFlags.FolderA
	}
	if compareFlags.FolderB != "" {
		cfg.Compare.FolderB = compareFlags.FolderB
	}
	if compareFlags.OutputDir != "" {
		cfg.Compare.OutputDir = compareFlags.OutputDir
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Compare.FuzzyThreshold = compareFlags.Threshold
	}
	if len(compareFlags.KeyColumns) > 0 {
		cfg.Keys.Candidates = compareFlags.KeyColumns
	}

	// Output format
	if compareFlags.Output != "" {
		cfg.Output.Format = compareFlags.Output
	}
	if cmd.Flags().Changed("progress") {
		cfg.Output.Progress = compareFlags.Progress
	}

	// Logging
	if compareFlags.LogFile != "" {
		cfg.Logging.File = compareFlags.LogFile
	}
	if compareFlags.LogFormat != "" {
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if compareFlags.LogLevel != "" {
		cfg.Logging.Level = compareFlags.LogLevel
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Verbose mode lowers the log level to debug
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}
}

// createOperation creates a comparison operation from configuration
func createOperation(cfg *config.Config) (*models.CompareOperation, error) {
	operation := &models.CompareOperation{
		ID:             uuid.New().String(),
		FolderA:        cfg.Compare.FolderA,
		FolderB:        cfg.Compare.FolderB,
		OutputDir:      cfg.Compare.OutputDir,
		FuzzyThreshold: cfg.Compare.FuzzyThreshold,
		KeyCandidates:  cfg.Keys.Candidates,
		CreatedAt:      time.Now(),
	}

	if err := operation.Validate(); err != nil {
		return nil, err
	}

	return operation, nil
}

// newLogger builds the run logger described by the logging config
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}

// newFormatter picks the terminal formatter for the configured output mode
func newFormatter(cfg *config.Config) output.Formatter {
	if cfg.Output.Format == "json" {
		return output.NewJSONFormatter()
	}
	if cfg.Output.Progress && !cfg.Output.Quiet {
		return output.NewProgressFormatter()
	}
	return output.NewHumanFormatter()
}
