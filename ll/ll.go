package ll

import "sync"

// Run starts the simulation. It validates the parameters, spawns the io
// goroutine and the workers and blocks until the run completes. Events are
// sent on the events channel throughout and the channel is closed when the
// run quits, so a caller must drain it concurrently.
func Run(p Params, events chan<- Event) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	io := &ioState{
		cond: sync.NewCond(new(sync.Mutex)),
	}
	io.cond.L.Lock()
	go startIo(io) // transfer ownership of lock to startIo

	return distributor(p, io, events), nil
}
