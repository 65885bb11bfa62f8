package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "expensectl",
	Short: "Extract structured expense records from statement files",
	Long: `expensectl runs the expense extraction engine locally.

It accepts PDF statements, CSV/XLSX exports and plain text, and produces
categorized, tax-annotated expense records as JSON or as the accounting
CSV layout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(versionCmd)
}
