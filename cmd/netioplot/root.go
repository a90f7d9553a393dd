package main

import (
	"fmt"
	"os"

	"netioplot/internal/config"
	"netioplot/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd renders all charts when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "netioplot",
	Short: "Render comparison charts from network I/O benchmark results",
	Long: `netioplot is the reporting stage of the PA02 network I/O benchmark.
It loads the per-variant CSV files written by the measurement stage
(Two-Copy, One-Copy, Zero-Copy) and renders six fixed-name PNG charts
comparing throughput, latency, cache behavior and CPU overhead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("ERROR: %v", err)))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	bindFlags(rootCmd.PersistentFlags())
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfgFile, "config", "", "config file (default is ./.netioplot.yaml)")
	fs.String("results-dir", "results", "directory holding the measurement CSV files")
	fs.String("out-dir", ".", "directory the chart images are written to")
	fs.String("prefix", "MT25033", "identifying prefix shared by all output files")
	fs.BoolP("verbose", "v", false, "Enable verbose output")

	viper.BindPFlag("results_dir", fs.Lookup("results-dir"))
	viper.BindPFlag("out_dir", fs.Lookup("out-dir"))
	viper.BindPFlag("prefix", fs.Lookup("prefix"))
	viper.BindPFlag("verbose", fs.Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
}
