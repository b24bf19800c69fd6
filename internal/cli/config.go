package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ospina115/comparador-excel/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify comparador configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.ApplyEnv(cfg); err != nil {
				return err
			}

			fmt.Printf("Folder A: %s\n", orUnset(cfg.Compare.FolderA))
			fmt.Printf("Folder B: %s\n", orUnset(cfg.Compare.FolderB))
			fmt.Printf("Output Dir: %s\n", cfg.Compare.OutputDir)
			fmt.Printf("Fuzzy Threshold: %.2f\n", cfg.Compare.FuzzyThreshold)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}
