package config

import (
	"github.com/Ospina115/comparador-excel/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare CompareConfig `yaml:"compare"`
	Keys    KeysConfig    `yaml:"keys"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CompareConfig holds batch comparison settings
type CompareConfig struct {
	// FolderA and FolderB are the directories being compared; both are
	// required before a run can start
	FolderA string `yaml:"folder_a"`
	FolderB string `yaml:"folder_b"`

	// OutputDir is where result workbooks are written
	OutputDir string `yaml:"output_dir"`

	// FuzzyThreshold is the minimum name similarity for fuzzy pairing
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
}

// KeysConfig holds key column detection settings
type KeysConfig struct {
	// Candidates are header names accepted as key columns without a
	// uniqueness check; empty means the built-in defaults
	Candidates []string `yaml:"candidates"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show a progress bar
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// DefaultOutputDir is where result workbooks go when nothing else is set
const DefaultOutputDir = "comparisons_output"

// DefaultFuzzyThreshold is the pairing threshold used when nothing else is set
const DefaultFuzzyThreshold = 0.9

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			OutputDir:      DefaultOutputDir,
			FuzzyThreshold: DefaultFuzzyThreshold,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Compare.FuzzyThreshold < 0 || c.Compare.FuzzyThreshold > 1 {
		return &models.ValidationError{
			Field:   "compare.fuzzy_threshold",
			Message: "must be between 0 and 1",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
