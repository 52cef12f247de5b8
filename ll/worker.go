package ll

import "github.com/nicolaegues/LL-acceleration/lattice"

// worker runs one block of the lattice. It blocks until its assignment
// arrives, then performs sweep -> halo exchange -> measurement for every
// step, and finally sends its interior rows and statistics series back to
// the coordinator.
//
// The sweep for step t reads ghost rows as they were at the end of step
// t-1; the exchange then refreshes them, so the step's energy and order
// measurements see the neighbours' current boundary rows.
func worker(p Params, id int, f *fabric) {
	msg := <-f.boxes[id].assignment

	block := lattice.NewBlockFromRows(msg.rows)
	sweeper := lattice.NewSweeper(block.InteriorRows(), block.Width(), p.Seed+uint64(id))
	series := newSeries(p.Steps)

	for step := 0; step != p.Steps; step++ {
		series.Ratio[step] = sweeper.Step(block, p.Temp)
		f.exchangeHalos(id, msg.assignment, block)
		series.Energy[step] = block.TotalEnergy()
		series.Order[step] = block.OrderParameter()
	}

	f.results <- workerResult{
		id:     id,
		offset: msg.assignment.Offset,
		rows:   block.CopyInterior(),
		series: series,
	}
}
