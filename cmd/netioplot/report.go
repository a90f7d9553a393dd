package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"netioplot/internal/charts"
	"netioplot/internal/config"
	"netioplot/internal/results"
	"netioplot/internal/ui"

	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Header("PA02: Network I/O Analysis - Chart Generation"))

	if _, err := os.Stat(cfg.ResultsDir); err != nil {
		return fmt.Errorf("results directory %q not found: run the measurement stage first", cfg.ResultsDir)
	}

	fmt.Fprintln(out, "Loading CSV data...")
	data := results.Load(cfg.ResultsDir, out)
	if len(data) == 0 {
		return fmt.Errorf("no data loaded from %q", cfg.ResultsDir)
	}

	printColumns(out, data)
	printSummary(out, data)

	fmt.Fprintln(out, "Generating charts...")
	for _, g := range charts.Generators(cfg.Prefix) {
		fmt.Fprintf(out, "  Creating %s chart...\n", g.Name)
		path := filepath.Join(cfg.OutDir, g.File)
		if err := g.Render(data, path); err != nil {
			fmt.Fprintln(out, ui.Error(fmt.Sprintf("    ERROR in %s chart: %v", g.Name, err)))
			continue
		}
		fmt.Fprintln(out, ui.Success("    Saved: "+path))
	}

	listOutputs(out, cfg.OutDir, cfg.Prefix)
	return nil
}

// loadedVariants returns the loaded variants in canonical display order.
func loadedVariants(data map[results.Variant]*results.Table) []results.Variant {
	var vs []results.Variant
	for _, v := range results.Variants() {
		if _, ok := data[v]; ok {
			vs = append(vs, v)
		}
	}
	return vs
}

func printColumns(out io.Writer, data map[results.Variant]*results.Table) {
	fmt.Fprintln(out, "CSV columns found:")
	for _, v := range loadedVariants(data) {
		cols := data[v].Columns()
		names := make([]string, len(cols))
		for i, c := range cols {
			names[i] = string(c)
		}
		fmt.Fprintf(out, "  %s: %s\n", v, strings.Join(names, ", "))
	}
}

func printSummary(out io.Writer, data map[results.Variant]*results.Table) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tLABEL\tROWS\tSIZES\tREF SIZE")
	for _, v := range loadedVariants(data) {
		t := data[v]
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			v, v.Label(), t.Len(), len(results.UniqueSizes(t)),
			results.SizeLabel(results.ReferenceSize(t)))
	}
	w.Flush()
}

func listOutputs(out io.Writer, dir, prefix string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".png") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Fprintln(out, ui.Header("DONE! Generated charts:"))
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
}
