package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tableOf(rows ...Row) *Table {
	return &Table{Rows: rows, columns: map[Column]bool{
		ColMessageSize: true, ColThreads: true, ColThroughput: true, ColLatency: true,
	}}
}

func TestAtThreadsFiltersAndSorts(t *testing.T) {
	tab := tableOf(
		Row{MessageSize: 65536, Threads: 4, ThroughputGbps: 9},
		Row{MessageSize: 1024, Threads: 4, ThroughputGbps: 2},
		Row{MessageSize: 1024, Threads: 8, ThroughputGbps: 3},
	)

	rows := AtThreads(tab, 4)

	assert.Len(t, rows, 2)
	assert.Equal(t, 1024, rows[0].MessageSize)
	assert.Equal(t, 65536, rows[1].MessageSize)
	assert.Equal(t, 2.0, rows[0].ThroughputGbps)
}

func TestAtThreadsFallbackDedupes(t *testing.T) {
	// no rows at the reference thread count: fall back to all rows,
	// first occurrence per size wins
	tab := tableOf(
		Row{MessageSize: 4096, Threads: 2, LatencyUs: 10},
		Row{MessageSize: 4096, Threads: 8, LatencyUs: 20},
		Row{MessageSize: 1024, Threads: 2, LatencyUs: 5},
	)

	rows := AtThreads(tab, 4)

	assert.Len(t, rows, 2)
	assert.Equal(t, 1024, rows[0].MessageSize)
	assert.Equal(t, 4096, rows[1].MessageSize)
	assert.Equal(t, 10.0, rows[1].LatencyUs)
}

func TestReferenceSizeExactMatch(t *testing.T) {
	tab := tableOf(
		Row{MessageSize: 1024, Threads: 1},
		Row{MessageSize: 4096, Threads: 1},
		Row{MessageSize: 65536, Threads: 1},
		Row{MessageSize: 262144, Threads: 1},
	)
	assert.Equal(t, 65536, ReferenceSize(tab))
}

func TestReferenceSizeMiddleFallback(t *testing.T) {
	tab := tableOf(
		Row{MessageSize: 16384, Threads: 1},
		Row{MessageSize: 1024, Threads: 1},
		Row{MessageSize: 4096, Threads: 1},
	)
	// middle of the sorted unique list
	assert.Equal(t, 4096, ReferenceSize(tab))
}

func TestReferenceSizeEmptyTable(t *testing.T) {
	assert.Equal(t, 0, ReferenceSize(tableOf()))
}

func TestAtSizeSortsByThreads(t *testing.T) {
	tab := tableOf(
		Row{MessageSize: 65536, Threads: 8, LatencyUs: 40},
		Row{MessageSize: 65536, Threads: 1, LatencyUs: 10},
		Row{MessageSize: 1024, Threads: 4, LatencyUs: 5},
	)

	rows := AtSize(tab, 65536)

	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Threads)
	assert.Equal(t, 8, rows[1].Threads)
}

func TestUniqueSizes(t *testing.T) {
	tab := tableOf(
		Row{MessageSize: 65536, Threads: 1},
		Row{MessageSize: 1024, Threads: 1},
		Row{MessageSize: 65536, Threads: 4},
	)
	assert.Equal(t, []int{1024, 65536}, UniqueSizes(tab))
}
