package ll

// Assignment describes one worker's share of the lattice: its contiguous
// band of rows and its two ring neighbours. Assigned once at startup and
// immutable for the run. Worker ids run 1..P; id 0 is the coordinator and
// owns no block.
type Assignment struct {
	Offset int // first global row of the block
	Rows   int // number of interior rows
	Above  int // worker id owning the rows above, wrapping periodically
	Below  int // worker id owning the rows below, wrapping periodically
}

// Partition splits size rows across workers in contiguous blocks differing
// by at most one row, and assigns ring neighbours with periodic wraparound.
// Entry i of the result is the assignment for worker id i+1. With a single
// worker the ring closes on itself: the worker is its own above and below.
func Partition(size, workers int) []Assignment {
	average := size / workers
	extra := size % workers

	assignments := make([]Assignment, workers)
	offset := 0
	for i := 0; i != workers; i++ {
		id := i + 1
		rows := average
		if id <= extra {
			rows++
		}

		above := id - 1
		below := id + 1
		if id == 1 {
			above = workers
		}
		if id == workers {
			below = 1
		}

		assignments[i] = Assignment{
			Offset: offset,
			Rows:   rows,
			Above:  above,
			Below:  below,
		}
		offset += rows
	}
	return assignments
}
