package charts

import (
	"netioplot/internal/results"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// RenderFunc renders one chart image from the loaded tables.
type RenderFunc func(data map[results.Variant]*results.Table, path string) error

// Generator binds a chart to its fixed output file name. The file name is
// deterministic so downstream tooling (reports, submission scripts) can
// reference the images without globbing.
type Generator struct {
	Name   string
	File   string
	Render RenderFunc
}

// Generators returns the six chart generators in their canonical run
// order. prefix is the shared identifying prefix of all output files.
func Generators(prefix string) []Generator {
	return []Generator{
		{Name: "throughput", File: prefix + "_Plot1_Throughput.png", Render: Throughput},
		{Name: "latency", File: prefix + "_Plot2_Latency.png", Render: Latency},
		{Name: "cache", File: prefix + "_Plot3_Cache.png", Render: Cache},
		{Name: "overhead", File: prefix + "_Plot4_Overhead.png", Render: Overhead},
		{Name: "context switches", File: prefix + "_Plot5_ContextSwitches.png", Render: ContextSwitches},
		{Name: "summary", File: prefix + "_Plot6_Summary.png", Render: Summary},
	}
}

// Throughput renders the grouped throughput bars at the reference thread
// count.
func Throughput(data map[results.Variant]*results.Table, path string) error {
	return savePanel(throughputPanel(data), 12*vg.Inch, 7*vg.Inch, path)
}

// Latency renders latency against thread count at the reference message
// size.
func Latency(data map[results.Variant]*results.Table, path string) error {
	return savePanel(latencyPanel(data), 10*vg.Inch, 6*vg.Inch, path)
}

// Cache renders cache misses and cache references side by side. Variants
// whose input lacked the cache columns simply contribute no bars.
func Cache(data map[results.Variant]*results.Table, path string) error {
	grid := [][]*plot.Plot{{cacheMissesPanel(data), cacheRefsPanel(data)}}
	return saveGrid(grid, 14*vg.Inch, 6*vg.Inch, path)
}

// Overhead renders cycles-per-byte against message size.
func Overhead(data map[results.Variant]*results.Table, path string) error {
	return savePanel(overheadPanel(data), 12*vg.Inch, 7*vg.Inch, path)
}

// ContextSwitches renders the grouped context-switch bars.
func ContextSwitches(data map[results.Variant]*results.Table, path string) error {
	return savePanel(ctxSwitchPanel(data), 12*vg.Inch, 7*vg.Inch, path)
}

// Summary recomputes the five views above into a single 2x3 grid.
func Summary(data map[results.Variant]*results.Table, path string) error {
	grid := [][]*plot.Plot{
		{throughputPanel(data), latencyPanel(data), overheadPanel(data)},
		{cacheMissesPanel(data), cacheRefsPanel(data), ctxSwitchPanel(data)},
	}
	return saveGrid(grid, 16*vg.Inch, 10*vg.Inch, path)
}
