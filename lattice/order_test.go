package lattice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderParameterAligned(t *testing.T) {
	// A fully aligned lattice is perfectly nematic.
	l := New(8)
	assert.InDelta(t, 1.0, l.OrderParameter(), 1e-9)
}

func TestOrderParameterBounds(t *testing.T) {
	for seed := uint64(0); seed != 20; seed++ {
		s := NewRandom(10, seed).OrderParameter()
		assert.GreaterOrEqual(t, s, -0.5-1e-12)
		assert.LessOrEqual(t, s, 1.0+1e-12)
	}
}

func TestOrderParameterRotationInvariance(t *testing.T) {
	l := NewRandom(9, 4)
	want := l.OrderParameter()
	for _, shift := range []float64{0.1, math.Pi / 3, -2.7, 11.0} {
		shifted := New(9)
		for i, row := range l.Rows() {
			for j, angle := range row {
				shifted.Row(i)[j] = angle + shift
			}
		}
		assert.InDelta(t, want, shifted.OrderParameter(), 1e-9, "shift %v", shift)
	}
}

func TestOrderParameterLargeRandomNearIsotropic(t *testing.T) {
	// Uncorrelated in-plane orientations give Q ~ diag(1/4, 1/4, -1/2),
	// so S approaches 0.25 for large lattices.
	s := NewRandom(64, 123).OrderParameter()
	assert.InDelta(t, 0.25, s, 0.05)
}

func TestBlockOrderParameterUsesInteriorOnly(t *testing.T) {
	block := NewBlock(4, 4)
	// Poison the ghosts; interior stays aligned at zero.
	for j := 0; j != 4; j++ {
		block.TopGhost()[j] = 1.1
		block.BottomGhost()[j] = 2.2
	}
	assert.InDelta(t, 1.0, block.OrderParameter(), 1e-9)
}
