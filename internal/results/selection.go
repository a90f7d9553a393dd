package results

import (
	"sort"

	"github.com/samber/lo"
)

const (
	// ReferenceThreads selects the representative row set for charts
	// indexed by message size.
	ReferenceThreads = 4

	// ReferenceMessageSize selects the representative row set for charts
	// indexed by thread count, when the size was measured.
	ReferenceMessageSize = 65536
)

// AtThreads returns the table's rows at the given thread count, sorted by
// message size ascending. When no row matches, it falls back to all rows
// deduplicated by message size (first occurrence wins), so a partial sweep
// still produces a chart instead of nothing.
func AtThreads(t *Table, threads int) []Row {
	rows := lo.Filter(t.Rows, func(r Row, _ int) bool {
		return r.Threads == threads
	})
	if len(rows) == 0 {
		rows = dedupeBySize(t.Rows)
	}
	sortBySize(rows)
	return rows
}

// ReferenceSize returns 65536 when the table measured that size, otherwise
// the middle element of the sorted unique size list.
func ReferenceSize(t *Table) int {
	sizes := UniqueSizes(t)
	if len(sizes) == 0 {
		return 0
	}
	if lo.Contains(sizes, ReferenceMessageSize) {
		return ReferenceMessageSize
	}
	return sizes[len(sizes)/2]
}

// AtSize returns the table's rows at the given message size, sorted by
// thread count ascending.
func AtSize(t *Table, size int) []Row {
	rows := lo.Filter(t.Rows, func(r Row, _ int) bool {
		return r.MessageSize == size
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Threads < rows[j].Threads
	})
	return rows
}

// UniqueSizes returns the distinct message sizes in the table, ascending.
func UniqueSizes(t *Table) []int {
	sizes := lo.Uniq(lo.Map(t.Rows, func(r Row, _ int) int {
		return r.MessageSize
	}))
	sort.Ints(sizes)
	return sizes
}

func sortBySize(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MessageSize < rows[j].MessageSize
	})
}

func dedupeBySize(rows []Row) []Row {
	sorted := append([]Row{}, rows...)
	sortBySize(sorted)
	seen := make(map[int]bool)
	var out []Row
	for _, r := range sorted {
		if seen[r.MessageSize] {
			continue
		}
		seen[r.MessageSize] = true
		out = append(out, r)
	}
	return out
}
