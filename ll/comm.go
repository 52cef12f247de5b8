package ll

// The fabric is the in-process message-passing layer between the
// coordinator and the workers. Every worker owns a mailbox of channels;
// blocks and halo rows only ever move between goroutines as copies through
// these channels, so no lattice memory is shared.

// assignmentMsg carries a worker's startup information: its assignment and
// a copy of its rows of the lattice.
type assignmentMsg struct {
	assignment Assignment
	rows       [][]float64
}

// workerResult carries a worker's final interior rows and its per-step
// statistics back to the coordinator.
type workerResult struct {
	id     int
	offset int
	rows   [][]float64
	series Series
}

// mailbox holds one worker's inbound channels. The halo channels are
// buffered so that a step's two boundary sends complete without waiting for
// the receiver, which is what keeps the closed ring free of deadlock: no
// worker ever blocks on a send while its neighbour is also mid-send.
type mailbox struct {
	assignment chan assignmentMsg
	fromAbove  chan []float64 // above neighbour's bottom edge, fills the top ghost
	fromBelow  chan []float64 // below neighbour's top edge, fills the bottom ghost
}

type fabric struct {
	boxes   []*mailbox // indexed by worker id; index 0 unused (coordinator)
	results chan workerResult
}

func newFabric(workers int) *fabric {
	f := &fabric{
		boxes:   make([]*mailbox, workers+1),
		results: make(chan workerResult, workers),
	}
	for id := 1; id != workers+1; id++ {
		f.boxes[id] = &mailbox{
			assignment: make(chan assignmentMsg, 1),
			// Capacity 2 bounds neighbour skew to one step: a worker one
			// full step ahead blocks on its next halo send until the
			// slower neighbour drains its mailbox.
			fromAbove: make(chan []float64, 2),
			fromBelow: make(chan []float64, 2),
		}
	}
	return f
}
