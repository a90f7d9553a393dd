package charts

import (
	"image/color"

	"netioplot/internal/results"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barWidth is the on-canvas width of one bar in a three-bar group.
const barWidth = 18 // points

func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.BackgroundColor = color.White
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

// loaded returns the variants present in data, in canonical order.
func loaded(data map[results.Variant]*results.Table) []results.Variant {
	return lo.Filter(results.Variants(), func(v results.Variant, _ int) bool {
		_, ok := data[v]
		return ok
	})
}

// categoryAxis derives the shared message-size axis from the first loaded
// variant's reference-thread selection. All grouped charts index their
// bars against this one axis so the groups line up.
func categoryAxis(data map[results.Variant]*results.Table) []int {
	for _, v := range loaded(data) {
		rows := results.AtThreads(data[v], results.ReferenceThreads)
		return lo.Map(rows, func(r results.Row, _ int) int {
			return r.MessageSize
		})
	}
	return nil
}

func sizeLabels(sizes []int) []string {
	return lo.Map(sizes, func(s int, _ int) string {
		return results.SizeLabel(s)
	})
}

// alignedValues maps one variant's reference-thread rows onto the shared
// size axis. Sizes the variant did not measure plot as zero-height bars.
func alignedValues(t *results.Table, sizes []int, pick func(results.Row) float64) plotter.Values {
	bySize := make(map[int]float64)
	for _, r := range results.AtThreads(t, results.ReferenceThreads) {
		if _, ok := bySize[r.MessageSize]; !ok {
			bySize[r.MessageSize] = pick(r)
		}
	}
	vals := make(plotter.Values, len(sizes))
	for i, s := range sizes {
		vals[i] = bySize[s]
	}
	return vals
}

// addBarGroup adds one offset bar series per loaded variant. When need is
// non-empty, variants whose table lacks that column are skipped but keep
// their slot so the remaining bars stay in position.
func addBarGroup(p *plot.Plot, data map[results.Variant]*results.Table, sizes []int, need results.Column, pick func(results.Row) float64) {
	for i, v := range loaded(data) {
		t := data[v]
		if need != "" && !t.HasColumn(need) {
			continue
		}
		bars, err := plotter.NewBarChart(alignedValues(t, sizes, pick), vg.Points(barWidth))
		if err != nil {
			continue
		}
		bars.Color = v.Color()
		bars.LineStyle.Width = 0
		bars.Offset = vg.Points(float64(i-1) * barWidth)
		p.Add(bars)
		p.Legend.Add(v.Label(), bars)
	}
	p.NominalX(sizeLabels(sizes)...)
}

func variantGlyph(v results.Variant) draw.GlyphDrawer {
	switch v {
	case results.TwoCopy:
		return draw.CircleGlyph{}
	case results.OneCopy:
		return draw.BoxGlyph{}
	default:
		return draw.PyramidGlyph{}
	}
}

func addLineSeries(p *plot.Plot, v results.Variant, xys plotter.XYs) {
	line, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return
	}
	line.Color = v.Color()
	line.Width = vg.Points(2)
	pts.Shape = variantGlyph(v)
	pts.Color = v.Color()
	pts.Radius = vg.Points(4)
	p.Add(line, pts)
	p.Legend.Add(v.Label(), line, pts)
}

func throughputPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("Throughput vs Message Size (4 Threads)", "Message Size", "Throughput (Gbps)")
	sizes := categoryAxis(data)
	addBarGroup(p, data, sizes, "", func(r results.Row) float64 {
		return r.ThroughputGbps
	})
	return p
}

func latencyPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("Latency vs Thread Count", "Number of Threads", "Latency (us)")
	for _, v := range loaded(data) {
		t := data[v]
		rows := results.AtSize(t, results.ReferenceSize(t))
		if len(rows) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(rows))
		for i, r := range rows {
			xys[i] = plotter.XY{X: float64(r.Threads), Y: r.LatencyUs}
		}
		addLineSeries(p, v, xys)
	}
	return p
}

func overheadPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("CPU Overhead: Cycles per Byte (4 Threads)", "Message Size", "CPU Cycles per Byte (Lower = Better)")
	sizes := categoryAxis(data)
	for _, v := range loaded(data) {
		t := data[v]
		if !t.HasColumn(results.ColCyclesPerByte) {
			continue
		}
		vals := alignedValues(t, sizes, func(r results.Row) float64 {
			return r.CyclesPerByte
		})
		xys := make(plotter.XYs, len(vals))
		for i, y := range vals {
			xys[i] = plotter.XY{X: float64(i), Y: y}
		}
		addLineSeries(p, v, xys)
	}
	p.NominalX(sizeLabels(sizes)...)
	return p
}

func cacheMissesPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("Cache Misses", "Message Size", "Cache Misses (K)")
	addBarGroup(p, data, categoryAxis(data), results.ColCacheMisses, func(r results.Row) float64 {
		return r.CacheMisses / 1000
	})
	return p
}

func cacheRefsPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("Cache References", "Message Size", "Cache References (K)")
	addBarGroup(p, data, categoryAxis(data), results.ColCacheRefs, func(r results.Row) float64 {
		return r.CacheRefs / 1000
	})
	return p
}

func ctxSwitchPanel(data map[results.Variant]*results.Table) *plot.Plot {
	p := newPanel("Context Switches vs Message Size (4 Threads)", "Message Size", "Context Switches")
	addBarGroup(p, data, categoryAxis(data), results.ColContextSwitches, func(r results.Row) float64 {
		return r.ContextSwitches
	})
	return p
}
