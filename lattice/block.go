package lattice

// Block is a worker's contiguous band of lattice rows plus one ghost row
// above and one below. Interior rows are owned and mutated only by that
// worker; the ghost rows are read-only copies of the neighbouring workers'
// boundary rows, refreshed once per step by the halo exchange.
//
// rows[0] is the top ghost, rows[len(rows)-1] the bottom ghost and
// rows[1:len(rows)-1] the interior.
type Block struct {
	width int
	rows  [][]float64
}

// NewBlock makes a block with the given interior row count and width, all
// angles zero.
func NewBlock(interior, width int) *Block {
	block := &Block{
		width: width,
		rows:  make([][]float64, interior+2),
	}
	data := make([]float64, (interior+2)*width)
	for i := range block.rows {
		block.rows[i] = data[0:width]
		data = data[width:]
	}
	return block
}

// NewBlockFromRows makes a block whose interior is a copy of the given rows.
// Ghost rows start zeroed and are only meaningful after the first exchange.
func NewBlockFromRows(rows [][]float64) *Block {
	block := NewBlock(len(rows), len(rows[0]))
	for i, row := range rows {
		copy(block.rows[i+1], row)
	}
	return block
}

// Width returns the row length.
func (block *Block) Width() int {
	return block.width
}

// InteriorRows returns the number of owned rows.
func (block *Block) InteriorRows() int {
	return len(block.rows) - 2
}

// Interior returns the owned rows, excluding ghosts.
func (block *Block) Interior() [][]float64 {
	return block.rows[1 : len(block.rows)-1]
}

// CopyInterior returns a copy of the interior rows sharing no memory with
// the block, suitable for sending to the coordinator.
func (block *Block) CopyInterior() [][]float64 {
	interior := block.Interior()
	rows := make([][]float64, len(interior))
	data := make([]float64, len(interior)*block.width)
	for i := range interior {
		rows[i] = data[0:block.width]
		data = data[block.width:]
		copy(rows[i], interior[i])
	}
	return rows
}

// FirstInterior returns the topmost owned row (sent to the above
// neighbour during the halo exchange).
func (block *Block) FirstInterior() []float64 {
	return block.rows[1]
}

// LastInterior returns the bottommost owned row (sent to the below
// neighbour during the halo exchange).
func (block *Block) LastInterior() []float64 {
	return block.rows[len(block.rows)-2]
}

// TopGhost returns the ghost row caching the above neighbour's bottom edge.
func (block *Block) TopGhost() []float64 {
	return block.rows[0]
}

// BottomGhost returns the ghost row caching the below neighbour's top edge.
func (block *Block) BottomGhost() []float64 {
	return block.rows[len(block.rows)-1]
}

// WrapGhosts fills the ghost rows from the block's own boundary rows. For a
// single block covering the whole lattice this is the periodic boundary
// condition; it is also what the halo exchange degenerates to when a worker
// is its own ring neighbour.
func (block *Block) WrapGhosts() {
	copy(block.TopGhost(), block.LastInterior())
	copy(block.BottomGhost(), block.FirstInterior())
}
