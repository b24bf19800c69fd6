package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the compare command, typically
// set through a .env file next to the exports
const (
	EnvFolderA        = "FOLDER_A"
	EnvFolderB        = "FOLDER_B"
	EnvOutputDir      = "OUTPUT_DIR"
	EnvFuzzyThreshold = "FUZZY_THRESHOLD"
)

// LoadEnvFile loads variables from a .env file into the process environment.
// With an empty path the default ".env" in the working directory is tried
// and a missing file is tolerated; an explicitly named file must exist.
func LoadEnvFile(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays the recognized environment variables onto cfg. Unset or
// empty variables leave the corresponding setting untouched.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvFolderA); v != "" {
		cfg.Compare.FolderA = v
	}
	if v := os.Getenv(EnvFolderB); v != "" {
		cfg.Compare.FolderB = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.Compare.OutputDir = v
	}
	if v := os.Getenv(EnvFuzzyThreshold); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvFuzzyThreshold, v, err)
		}
		cfg.Compare.FuzzyThreshold = threshold
	}
	return nil
}
