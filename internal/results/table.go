package results

// Column names as they appear in the CSV header.
type Column string

const (
	ColMessageSize     Column = "MessageSize"
	ColThreads         Column = "Threads"
	ColThroughput      Column = "Throughput_Gbps"
	ColLatency         Column = "Latency_us"
	ColCacheMisses     Column = "CacheMisses"
	ColCacheRefs       Column = "CacheRefs"
	ColContextSwitches Column = "ContextSwitches"
	ColCyclesPerByte   Column = "CyclesPerByte"
)

// RequiredColumns must be present in every input file.
var RequiredColumns = []Column{ColMessageSize, ColThreads, ColThroughput, ColLatency}

// OptionalColumns may be absent; charts that need one skip the variant's
// series when the column is missing.
var OptionalColumns = []Column{ColCacheMisses, ColCacheRefs, ColContextSwitches, ColCyclesPerByte}

// Row is one measurement record. Optional metrics are only meaningful when
// the owning Table reports the column as present.
type Row struct {
	MessageSize     int
	Threads         int
	ThroughputGbps  float64
	LatencyUs       float64
	CacheMisses     float64
	CacheRefs       float64
	ContextSwitches float64
	CyclesPerByte   float64
}

// Table holds one variant's measurements, in input order. It is built once
// by the loader and never mutated afterwards.
type Table struct {
	Rows    []Row
	columns map[Column]bool
}

// HasColumn reports whether the input file carried the given column.
func (t *Table) HasColumn(c Column) bool {
	return t.columns[c]
}

// Columns returns the present columns in canonical order.
func (t *Table) Columns() []Column {
	all := append(append([]Column{}, RequiredColumns...), OptionalColumns...)
	var present []Column
	for _, c := range all {
		if t.columns[c] {
			present = append(present, c)
		}
	}
	return present
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
