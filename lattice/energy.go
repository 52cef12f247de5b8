package lattice

import "math"

// PairEnergy returns the reduced interaction energy between two
// orientations, 0.5*(1 - 3*cos^2(t1-t2)). Angles may be any real value:
// proposed updates are unbounded Gaussian perturbations.
func PairEnergy(t1, t2 float64) float64 {
	c := math.Cos(t1 - t2)
	return 0.5 * (1.0 - 3.0*c*c)
}

// CellEnergy returns the reduced energy of the interior cell (i, j) of a
// block, summing the four pairwise terms with its up/down/left/right
// neighbours. Row index i is in interior coordinates (0-based), so the
// vertical neighbours of edge rows resolve into the ghost rows. Columns
// wrap periodically.
func (block *Block) CellEnergy(i, j int) float64 {
	row := block.rows[i+1]
	up := block.rows[i]
	down := block.rows[i+2]
	left := row[(j-1+block.width)%block.width]
	right := row[(j+1)%block.width]

	angle := row[j]
	en := PairEnergy(angle, up[j])
	en += PairEnergy(angle, down[j])
	en += PairEnergy(angle, left)
	en += PairEnergy(angle, right)
	return en
}

// EnergyField returns the per-cell reduced energy of every interior cell,
// in the same shape as the interior.
func (block *Block) EnergyField() [][]float64 {
	interior := block.InteriorRows()
	field := make([][]float64, interior)
	data := make([]float64, interior*block.width)
	for i := 0; i != interior; i++ {
		field[i] = data[0:block.width]
		data = data[block.width:]
		for j := 0; j != block.width; j++ {
			field[i][j] = block.CellEnergy(i, j)
		}
	}
	return field
}

// TotalEnergy returns the sum of the interior energy field. With correctly
// populated ghost rows, block totals over a row partition sum to the full
// lattice energy.
func (block *Block) TotalEnergy() float64 {
	total := 0.0
	for i := 0; i != block.InteriorRows(); i++ {
		for j := 0; j != block.width; j++ {
			total += block.CellEnergy(i, j)
		}
	}
	return total
}

// EnergyField returns the per-cell reduced energy of the full lattice with
// periodic wraparound along both axes.
func (lattice *Lattice) EnergyField() [][]float64 {
	block := NewBlockFromRows(lattice.cells)
	block.WrapGhosts()
	return block.EnergyField()
}

// TotalEnergy returns the reduced energy of the full lattice.
func (lattice *Lattice) TotalEnergy() float64 {
	block := NewBlockFromRows(lattice.cells)
	block.WrapGhosts()
	return block.TotalEnergy()
}
