package ll

import "github.com/nicolaegues/LL-acceleration/lattice"

// exchangeHalos refreshes a block's ghost rows with its ring neighbours'
// current boundary rows. Executed once per step after the local sweep.
//
// The worker first posts both of its boundary rows to its neighbours'
// mailboxes (buffered, so both sends complete immediately), then blocks
// receiving its own two ghost rows. This mirrors the non-blocking
// send/receive pair with a trailing wait of the reference protocol; with a
// single worker both sends land in the worker's own mailbox and the
// exchange reduces to an in-place periodic wrap.
func (f *fabric) exchangeHalos(id int, a Assignment, block *lattice.Block) {
	// Rows are copied before sending: the receiver reads them while this
	// worker is already mutating its interior.
	f.boxes[a.Below].fromAbove <- copyRow(block.LastInterior())
	f.boxes[a.Above].fromBelow <- copyRow(block.FirstInterior())

	copy(block.TopGhost(), <-f.boxes[id].fromAbove)
	copy(block.BottomGhost(), <-f.boxes[id].fromBelow)
}

func copyRow(row []float64) []float64 {
	copied := make([]float64, len(row))
	copy(copied, row)
	return copied
}
