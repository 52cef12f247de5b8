package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Partitioning N rows across P workers and reassembling by offset must
// reproduce the original row range exactly: no duplication, no gaps.
func TestPartitionRoundTrip(t *testing.T) {
	const n = 24
	for workers := 1; workers <= n; workers++ {
		assignments := Partition(n, workers)
		require.Len(t, assignments, workers)

		covered := make([]int, n)
		offset := 0
		for _, a := range assignments {
			require.Equal(t, offset, a.Offset)
			for row := a.Offset; row != a.Offset+a.Rows; row++ {
				covered[row]++
			}
			offset += a.Rows
		}
		require.Equal(t, n, offset, "workers=%d", workers)
		for row, count := range covered {
			require.Equal(t, 1, count, "row %d workers=%d", row, workers)
		}
	}
}

func TestPartitionBlocksDifferByAtMostOneRow(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{{10, 3}, {17, 5}, {16, 16}, {100, 7}} {
		assignments := Partition(tc.n, tc.workers)
		min, max := tc.n, 0
		for _, a := range assignments {
			if a.Rows < min {
				min = a.Rows
			}
			if a.Rows > max {
				max = a.Rows
			}
		}
		assert.LessOrEqual(t, max-min, 1, "%v", tc)
		// The first n%workers blocks carry the extra row.
		for i, a := range assignments {
			want := tc.n / tc.workers
			if i < tc.n%tc.workers {
				want++
			}
			assert.Equal(t, want, a.Rows)
		}
	}
}

func TestPartitionRingNeighbours(t *testing.T) {
	assignments := Partition(12, 4)
	require.Equal(t, 4, assignments[0].Above)
	require.Equal(t, 2, assignments[0].Below)
	require.Equal(t, 1, assignments[1].Above)
	require.Equal(t, 3, assignments[1].Below)
	require.Equal(t, 3, assignments[3].Above)
	require.Equal(t, 1, assignments[3].Below)
}

// With a single worker the ring closes on itself.
func TestPartitionSingleWorkerSelfLoop(t *testing.T) {
	assignments := Partition(8, 1)
	require.Len(t, assignments, 1)
	assert.Equal(t, 1, assignments[0].Above)
	assert.Equal(t, 1, assignments[0].Below)
	assert.Equal(t, 8, assignments[0].Rows)
}

func TestPartitionTwoWorkers(t *testing.T) {
	assignments := Partition(8, 2)
	assert.Equal(t, Assignment{Offset: 0, Rows: 4, Above: 2, Below: 2}, assignments[0])
	assert.Equal(t, Assignment{Offset: 4, Rows: 4, Above: 1, Below: 1}, assignments[1])
}
