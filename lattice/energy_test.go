package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairEnergy(t *testing.T) {
	// Parallel directors minimise the pair energy at -1.
	assert.InDelta(t, -1.0, PairEnergy(0.3, 0.3), 1e-12)
	// Perpendicular directors maximise it at 0.5.
	assert.InDelta(t, 0.5, PairEnergy(0, math.Pi/2), 1e-12)
	// Directors are headless: a pi rotation changes nothing.
	assert.InDelta(t, PairEnergy(0.7, 1.9), PairEnergy(0.7, 1.9+math.Pi), 1e-12)
	// Any real angle is acceptable input.
	assert.False(t, math.IsNaN(PairEnergy(-17.3, 1e6)))
}

func TestTotalEnergyAligned(t *testing.T) {
	// Every cell of a fully aligned lattice has four bonds of energy -1.
	l := New(6)
	assert.InDelta(t, -4.0*36, l.TotalEnergy(), 1e-9)
}

func TestEnergyFieldShape(t *testing.T) {
	l := NewRandom(5, 1)
	field := l.EnergyField()
	require.Len(t, field, 5)
	for _, row := range field {
		require.Len(t, row, 5)
	}
}

// Global energy is invariant under row partitioning once ghost rows hold the
// neighbouring blocks' boundary rows.
func TestPartitionInvariance(t *testing.T) {
	const n = 12
	l := NewRandom(n, 99)
	want := l.TotalEnergy()

	for _, rows := range [][]int{{12}, {6, 6}, {5, 4, 3}, {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}} {
		total := 0.0
		offset := 0
		for _, count := range rows {
			block := NewBlockFromRows(l.Rows()[offset : offset+count])
			copy(block.TopGhost(), l.Row((offset-1+n)%n))
			copy(block.BottomGhost(), l.Row((offset+count)%n))
			total += block.TotalEnergy()
			offset += count
		}
		require.Equal(t, n, offset)
		assert.InDelta(t, want, total, 1e-9, "partition %v", rows)
	}
}

func TestWrapGhostsMatchesPeriodicLattice(t *testing.T) {
	// A single block covering the whole lattice with wrapped ghosts must
	// reproduce the periodic total exactly.
	l := NewRandom(8, 7)
	block := NewBlockFromRows(l.Rows())
	block.WrapGhosts()
	assert.InDelta(t, l.TotalEnergy(), block.TotalEnergy(), 1e-12)
}
