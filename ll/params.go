// Package ll runs the distributed Lebwohl-Lasher simulation: it partitions
// the lattice into row blocks, runs one worker goroutine per block with a
// ring halo exchange between neighbours, and gathers the final state and
// per-step statistics back at the coordinator.
package ll

import (
	"errors"
	"fmt"
)

const (
	// MinWorkers and MaxWorkers bound the number of worker tasks; the
	// coordinator is not counted.
	MinWorkers = 1
	MaxWorkers = 17
)

// Params provides the details of how to run the simulation.
type Params struct {
	Steps    int     // Monte Carlo steps, one attempted change per cell on average
	Size     int     // side length of the square lattice
	Temp     float64 // reduced temperature, 0 < T* <= 2
	Workers  int     // number of worker tasks
	Seed     uint64  // run seed; worker i derives its own seed as Seed+i
	PlotFlag int     // 0 none, 1 energy, 2 angle, 3 plain
	LogDir   string  // directory for the run log; empty disables it
}

// Validate reports the first fatal configuration error, or nil. A failed
// validation aborts the whole run before any worker starts.
func (p Params) Validate() error {
	if p.Steps <= 0 {
		return fmt.Errorf("iteration count must be positive, got %d", p.Steps)
	}
	if p.Size <= 0 {
		return fmt.Errorf("lattice size must be positive, got %d", p.Size)
	}
	if p.Temp <= 0 {
		// T = 0 makes the Boltzmann factor undefined.
		return fmt.Errorf("reduced temperature must be positive, got %g", p.Temp)
	}
	if p.Workers < MinWorkers || p.Workers > MaxWorkers {
		return fmt.Errorf("number of workers must be between %d and %d, got %d",
			MinWorkers, MaxWorkers, p.Workers)
	}
	if p.Workers > p.Size {
		return errors.New("more workers than lattice rows")
	}
	if p.PlotFlag < 0 || p.PlotFlag > 3 {
		return fmt.Errorf("plot flag must be 0-3, got %d", p.PlotFlag)
	}
	return nil
}
