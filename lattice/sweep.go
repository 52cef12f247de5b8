package lattice

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sweeper performs checkerboard Metropolis sweeps over one block. Each
// worker owns exactly one Sweeper seeded from the run seed and its worker
// id, so runs are reproducible without any global random state.
type Sweeper struct {
	src rand.Source

	// Scratch buffers reused across steps.
	delta  [][]float64
	metro  [][]float64
	before [][]float64
}

// NewSweeper makes a sweeper for blocks with the given interior shape.
func NewSweeper(interior, width int, seed uint64) *Sweeper {
	sweeper := &Sweeper{src: rand.NewSource(seed)}
	sweeper.delta = makeField(interior, width)
	sweeper.metro = makeField(interior, width)
	sweeper.before = makeField(interior, width)
	return sweeper
}

func makeField(rows, width int) [][]float64 {
	field := make([][]float64, rows)
	data := make([]float64, rows*width)
	for i := range field {
		field[i] = data[0:width]
		data = data[width:]
	}
	return field
}

// Step performs one Monte Carlo sweep at reduced temperature temp: on
// average one attempted change per interior cell. The block is mutated in
// place. Returns the acceptance ratio, the fraction of attempts accepted.
//
// The interior is split into the two checkerboard colour classes by parity
// of row+column and the classes are processed strictly one after the other.
// Same-coloured cells never share a lattice edge, so within one phase every
// cell's energy can be evaluated against neighbours that are not being
// modified; the second colour sees the first colour's finalised values.
func (sweeper *Sweeper) Step(block *Block, temp float64) float64 {
	interior := block.InteriorRows()
	width := block.Width()

	// Pre-draw the proposal perturbations and Metropolis deviates for the
	// whole sweep. The proposal width grows with temperature.
	normal := distuv.Normal{Mu: 0, Sigma: 0.1 + temp, Src: sweeper.src}
	for i := 0; i != interior; i++ {
		for j := 0; j != width; j++ {
			sweeper.delta[i][j] = normal.Rand()
		}
	}
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: sweeper.src}
	for i := 0; i != interior; i++ {
		for j := 0; j != width; j++ {
			sweeper.metro[i][j] = uniform.Rand()
		}
	}

	accepted := 0
	for parity := 0; parity != 2; parity++ {
		accepted += sweeper.updateColour(block, temp, parity)
	}
	return float64(accepted) / float64(interior*width)
}

// updateColour perturbs every interior cell of one checkerboard colour and
// accepts or reverts each independently.
func (sweeper *Sweeper) updateColour(block *Block, temp float64, parity int) int {
	interior := block.InteriorRows()
	width := block.Width()
	rows := block.Interior()

	// Energies before perturbation, then perturb the whole colour class.
	for i := 0; i != interior; i++ {
		for j := (i + parity) % 2; j < width; j += 2 {
			sweeper.before[i][j] = block.CellEnergy(i, j)
		}
	}
	for i := 0; i != interior; i++ {
		for j := (i + parity) % 2; j < width; j += 2 {
			rows[i][j] += sweeper.delta[i][j]
		}
	}

	accepted := 0
	for i := 0; i != interior; i++ {
		for j := (i + parity) % 2; j < width; j += 2 {
			after := block.CellEnergy(i, j)
			if after <= sweeper.before[i][j] ||
				math.Exp(-(after-sweeper.before[i][j])/temp) >= sweeper.metro[i][j] {
				accepted++
			} else {
				rows[i][j] -= sweeper.delta[i][j]
			}
		}
	}
	return accepted
}
