package ll

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/nicolaegues/LL-acceleration/lattice"
)

// Result holds everything a caller may want after a run.
type Result struct {
	Lattice *lattice.Lattice // final gathered lattice
	Ratio   []float64        // acceptance ratio per step, index 0 = initial
	Energy  []float64        // reduced energy per step, index 0 = initial
	Order   []float64        // order parameter per step, index 0 = initial
	Runtime time.Duration
	LogFile string // empty if the run log could not be written
}

// distributor is the coordinator: it initialises and scatters the lattice,
// gathers the workers' blocks and series, performs the final reduction and
// writes the run log.
func distributor(p Params, io *ioState, events chan<- Event) Result {
	defer io.quit()

	// Create and initialise the full lattice. Only exists here and after
	// the final gather.
	full := lattice.NewRandom(p.Size, p.Seed)

	// Global per-step series; index 0 is the pre-simulation state. The 0.5
	// initial ratio is the ideal acceptance value.
	ratio := make([]float64, p.Steps+1)
	energy := make([]float64, p.Steps+1)
	order := make([]float64, p.Steps+1)
	ratio[0] = 0.5
	energy[0] = full.TotalEnergy()
	order[0] = full.OrderParameter()

	start := time.Now()
	events <- StateChange{0, Executing}

	// Scatter: worker goroutines block until their assignment arrives.
	assignments := Partition(p.Size, p.Workers)
	f := newFabric(p.Workers)
	for id := 1; id != p.Workers+1; id++ {
		go worker(p, id, f)
	}
	for i, a := range assignments {
		f.boxes[i+1].assignment <- assignmentMsg{
			assignment: a,
			rows:       full.CopyRows(a.Offset, a.Rows),
		}
	}

	// Gather: reinsert every block at its global row offset and accumulate
	// the series sums.
	sums := newSeries(p.Steps)
	for i := 0; i != p.Workers; i++ {
		result := <-f.results
		full.SetRows(result.offset, result.rows)
		sums.accumulate(result.series)
	}
	sums.reduce(p.Workers)
	copy(ratio[1:], sums.Ratio)
	copy(energy[1:], sums.Energy)
	copy(order[1:], sums.Order)

	runtime := time.Since(start)

	for step := 1; step != p.Steps+1; step++ {
		events <- StepComplete{step, ratio[step], energy[step], order[step]}
	}
	events <- FinalStateComplete{p.Steps, full}

	// Write the run log. An io failure loses the file, not the result.
	filename := ""
	if p.LogDir != "" {
		filename = filepath.Join(p.LogDir,
			fmt.Sprintf("LL-Output-%s.txt", time.Now().Format("Mon-02-Jan-2006-at-03-04-05PM")))
		operation := &ioOperation{
			command:  ioOutput,
			filename: filename,
			params:   p,
			runtime:  runtime,
			ratio:    ratio,
			energy:   energy,
			order:    order,
		}
		io.sendIoRequest(operation)
		io.waitIoRequest()
		if operation.err != nil {
			log.Printf("run log not written: %v", operation.err)
			filename = ""
		} else {
			events <- OutputComplete{filename}
		}
	}

	events <- StateChange{p.Steps, Quitting}
	close(events)

	return Result{
		Lattice: full,
		Ratio:   ratio,
		Energy:  energy,
		Order:   order,
		Runtime: runtime,
		LogFile: filename,
	}
}
