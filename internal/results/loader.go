package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Load reads the per-variant CSV files from dir. A variant whose file is
// missing or unparsable is reported on out and omitted from the returned
// map; Load itself never fails. The returned map may be empty.
func Load(dir string, out io.Writer) map[Variant]*Table {
	data := make(map[Variant]*Table)

	for _, v := range Variants() {
		path := filepath.Join(dir, v.FileName())
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(out, "  File not found: %s\n", path)
			continue
		}
		t, err := LoadFile(path)
		if err != nil {
			fmt.Fprintf(out, "  Error loading %s: %v\n", path, err)
			continue
		}
		data[v] = t
		fmt.Fprintf(out, "  Loaded %s: %d rows from %s\n", v, t.Len(), path)
	}

	return data
}

// LoadFile parses a single variant CSV file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV records with a header row into a Table. All required
// columns must be present; optional columns are recorded as present only
// when the header names them.
func Parse(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty file, no header row")
	}

	idx := make(map[Column]int)
	for i, name := range records[0] {
		idx[Column(name)] = i
	}
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing required column %q", c)
		}
	}

	t := &Table{columns: make(map[Column]bool)}
	for c := range idx {
		t.columns[c] = true
	}

	for n, rec := range records[1:] {
		row, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseRow(rec []string, idx map[Column]int) (Row, error) {
	var row Row

	intField := func(c Column, dst *int) error {
		i, ok := idx[c]
		if !ok || i >= len(rec) {
			return nil
		}
		v, err := strconv.Atoi(rec[i])
		if err != nil {
			return fmt.Errorf("column %q: %w", c, err)
		}
		*dst = v
		return nil
	}
	floatField := func(c Column, dst *float64) error {
		i, ok := idx[c]
		if !ok || i >= len(rec) {
			return nil
		}
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return fmt.Errorf("column %q: %w", c, err)
		}
		*dst = v
		return nil
	}

	if err := intField(ColMessageSize, &row.MessageSize); err != nil {
		return row, err
	}
	if err := intField(ColThreads, &row.Threads); err != nil {
		return row, err
	}
	if err := floatField(ColThroughput, &row.ThroughputGbps); err != nil {
		return row, err
	}
	if err := floatField(ColLatency, &row.LatencyUs); err != nil {
		return row, err
	}
	if err := floatField(ColCacheMisses, &row.CacheMisses); err != nil {
		return row, err
	}
	if err := floatField(ColCacheRefs, &row.CacheRefs); err != nil {
		return row, err
	}
	if err := floatField(ColContextSwitches, &row.ContextSwitches); err != nil {
		return row, err
	}
	if err := floatField(ColCyclesPerByte, &row.CyclesPerByte); err != nil {
		return row, err
	}
	return row, nil
}
