package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ospina115/comparador-excel/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "comparador",
		Short: "Batch comparison utility for Excel exports",
		Long: `comparador compares spreadsheet files between two folders.
Files are paired by name, exactly or by fuzzy similarity, then each pair's
first sheets are diffed row by row. Pairs with differences produce a result
workbook listing the added and modified rows.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
