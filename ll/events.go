package ll

import (
	"fmt"

	"github.com/nicolaegues/LL-acceleration/lattice"
)

// Event is sent by the simulation to the caller over the events channel.
type Event interface {
	String() string
}

// State represents a change in the state of the run.
type State int

const (
	Executing State = iota
	Quitting
)

func (state State) String() string {
	switch state {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent every time the run changes state.
type StateChange struct {
	CompletedSteps int
	NewState       State
}

func (event StateChange) String() string {
	return fmt.Sprintf("Step %d - %v", event.CompletedSteps, event.NewState)
}

// StepComplete carries the reduced global statistics for one step.
type StepComplete struct {
	CompletedSteps int
	Ratio          float64
	Energy         float64
	Order          float64
}

func (event StepComplete) String() string {
	return fmt.Sprintf("Step %d - ratio %.4f energy %.4f order %.4f",
		event.CompletedSteps, event.Ratio, event.Energy, event.Order)
}

// FinalStateComplete is sent once the coordinator has gathered every block
// back into the full lattice.
type FinalStateComplete struct {
	CompletedSteps int
	Lattice        *lattice.Lattice
}

func (event FinalStateComplete) String() string {
	return fmt.Sprintf("Final State - %d steps", event.CompletedSteps)
}

// OutputComplete is sent once the run log file has been written.
type OutputComplete struct {
	Filename string
}

func (event OutputComplete) String() string {
	return "File " + event.Filename + " output done"
}
