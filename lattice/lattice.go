// Package lattice implements the physics of the 2D Lebwohl-Lasher model:
// the lattice and block data structures, the reduced pair energy, the
// Q-tensor order parameter and the checkerboard Metropolis sweep.
package lattice

import (
	"math"

	"golang.org/x/exp/rand"
)

// Lattice is a square grid of orientation angles with periodic boundaries
// in both dimensions. Only the coordinator ever holds one: before the
// scatter and after the final gather.
type Lattice struct {
	n     int
	cells [][]float64
}

// New makes an n x n lattice with all angles zero.
func New(n int) *Lattice {
	lattice := &Lattice{
		n:     n,
		cells: make([][]float64, n),
	}
	data := make([]float64, n*n)
	for i := 0; i != n; i++ {
		lattice.cells[i] = data[0:n]
		data = data[n:]
	}
	return lattice
}

// NewRandom makes an n x n lattice initialised with uniform random
// orientations in [0, 2pi), drawn from the given seed.
func NewRandom(n int, seed uint64) *Lattice {
	lattice := New(n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i != n; i++ {
		for j := 0; j != n; j++ {
			lattice.cells[i][j] = rng.Float64() * 2.0 * math.Pi
		}
	}
	return lattice
}

// Size returns the side length.
func (lattice *Lattice) Size() int {
	return lattice.n
}

// Rows returns the underlying row slices. Callers treat the result as
// read-only once the simulation has started.
func (lattice *Lattice) Rows() [][]float64 {
	return lattice.cells
}

// Row returns a single row.
func (lattice *Lattice) Row(i int) []float64 {
	return lattice.cells[i]
}

// CopyRows copies the rows [offset, offset+len(rows)) out of the lattice.
// The returned rows share no memory with the lattice.
func (lattice *Lattice) CopyRows(offset, count int) [][]float64 {
	rows := make([][]float64, count)
	data := make([]float64, count*lattice.n)
	for i := 0; i != count; i++ {
		rows[i] = data[0:lattice.n]
		data = data[lattice.n:]
		copy(rows[i], lattice.cells[offset+i])
	}
	return rows
}

// SetRows writes the given rows back into the lattice starting at offset,
// used by the coordinator when reassembling gathered blocks.
func (lattice *Lattice) SetRows(offset int, rows [][]float64) {
	for i, row := range rows {
		copy(lattice.cells[offset+i], row)
	}
}
