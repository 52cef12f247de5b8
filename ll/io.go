package ll

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// ioState is the internal state of the io goroutine. All file output goes
// through it so the coordinator never blocks on the filesystem mid-run.
type ioState struct {
	operation *ioOperation
	cond      *sync.Cond
}

// ioCommand allows requesting behaviour from the io goroutine.
type ioCommand uint8

const (
	ioOutput ioCommand = iota
	ioQuit
)

type ioOperation struct {
	command   ioCommand
	filename  string
	params    Params
	runtime   time.Duration
	ratio     []float64
	energy    []float64
	order     []float64
	completed bool
	err       error
}

// writeRunLog writes the run header and the per-step statistics columns.
// Failure is recorded on the operation, not fatal: the in-memory result is
// unaffected.
func (io *ioState) writeRunLog() {
	file, err := os.Create(io.operation.filename)
	if err != nil {
		io.operation.err = err
		return
	}
	defer file.Close()

	p := io.operation.params
	created := time.Now().Format("Mon-02-Jan-2006-at-03-04-05PM")
	fmt.Fprintln(file, "#=====================================================")
	fmt.Fprintf(file, "# File created:        %s\n", created)
	fmt.Fprintf(file, "# Size of lattice:     %dx%d\n", p.Size, p.Size)
	fmt.Fprintf(file, "# Number of MC steps:  %d\n", p.Steps)
	fmt.Fprintf(file, "# Reduced temperature: %5.3f\n", p.Temp)
	fmt.Fprintf(file, "# Run time (s):        %8.6f\n", io.operation.runtime.Seconds())
	fmt.Fprintln(file, "#=====================================================")
	fmt.Fprintln(file, "# MC step:  Ratio:     Energy:   Order:")
	fmt.Fprintln(file, "#=====================================================")
	for i := range io.operation.ratio {
		fmt.Fprintf(file, "   %05d    %6.4f %12.4f  %6.4f \n",
			i, io.operation.ratio[i], io.operation.energy[i], io.operation.order[i])
	}

	io.operation.err = file.Sync()
}

// startIo should be the entrypoint of the io goroutine.
func startIo(io *ioState) {
	for {
		io.cond.Wait()
		switch io.operation.command {
		case ioOutput:
			io.writeRunLog()
		case ioQuit:
			io.cond.L.Unlock()
			return
		}
		io.operation.completed = true
		io.cond.Signal()
	}
}

// Initiate an IO request
func (io *ioState) sendIoRequest(operation *ioOperation) {
	io.cond.L.Lock()
	io.operation = operation
	io.cond.Signal()
	io.cond.L.Unlock()
}

// Wait until last IO operation completed
func (io *ioState) waitIoRequest() {
	io.cond.L.Lock()
	for !io.operation.completed {
		io.cond.Wait()
	}
	io.cond.L.Unlock()
}

// Send a signal to the io goroutine to quit
func (io *ioState) quit() {
	io.cond.L.Lock()
	io.operation = &ioOperation{command: ioQuit}
	io.cond.Signal()
	io.cond.L.Unlock()
}
