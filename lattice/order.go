package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// OrderParameter returns the nematic order parameter S of the given rows:
// the largest eigenvalue of the Q tensor
//
//	Q = (3*sum(v (x) v) - N*I) / (2N)
//
// where v = (cos t, sin t, 0) is the unit director of each cell and N the
// cell count. S lies in [-0.5, 1]: 0 for an isotropic configuration, close
// to 1 for full alignment.
func OrderParameter(rows [][]float64) float64 {
	var qxx, qxy, qyy float64
	n := 0
	for _, row := range rows {
		for _, angle := range row {
			vx := math.Cos(angle)
			vy := math.Sin(angle)
			qxx += vx * vx
			qxy += vx * vy
			qyy += vy * vy
			n++
		}
	}

	norm := 2.0 * float64(n)
	q := mat.NewSymDense(3, []float64{
		(3.0*qxx - float64(n)) / norm, 3.0 * qxy / norm, 0,
		3.0 * qxy / norm, (3.0*qyy - float64(n)) / norm, 0,
		0, 0, -float64(n) / norm,
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(q, false); !ok {
		panic("lattice: mat.EigenSym Factorize failed")
	}
	values := eig.Values(nil)
	// Values are ordered lowest to highest.
	return values[len(values)-1]
}

// OrderParameter returns the order parameter of a worker's interior rows.
func (block *Block) OrderParameter() float64 {
	return OrderParameter(block.Interior())
}

// OrderParameter returns the order parameter of the full lattice.
func (lattice *Lattice) OrderParameter() float64 {
	return OrderParameter(lattice.cells)
}
