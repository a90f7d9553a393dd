package main

import (
	"fmt"
	"os"

	"netioplot/internal/config"
	"netioplot/internal/results"

	"github.com/spf13/cobra"
)

// columnsCmd inspects the inputs without rendering anything, which is
// handy when a chart comes out with a missing series.
var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns present in each results file",
	RunE:  runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	out := cmd.OutOrStdout()

	if _, err := os.Stat(cfg.ResultsDir); err != nil {
		return fmt.Errorf("results directory %q not found", cfg.ResultsDir)
	}

	data := results.Load(cfg.ResultsDir, out)
	if len(data) == 0 {
		return fmt.Errorf("no data loaded from %q", cfg.ResultsDir)
	}

	printColumns(out, data)
	printSummary(out, data)
	return nil
}
