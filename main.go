package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/nicolaegues/LL-acceleration/ll"
	"github.com/nicolaegues/LL-acceleration/sdl"
)

// defaultSeed matches the reference run configuration for reproducibility.
const defaultSeed = 42

func usage() {
	fmt.Printf("Usage: %s <ITERATIONS> <SIZE> <TEMPERATURE> <PLOTFLAG> [WORKERS]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	if len(os.Args) != 5 && len(os.Args) != 6 {
		usage()
	}

	steps, err := strconv.Atoi(os.Args[1])
	if err != nil {
		usage()
	}
	size, err := strconv.Atoi(os.Args[2])
	if err != nil {
		usage()
	}
	temp, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		usage()
	}
	pflag, err := strconv.Atoi(os.Args[4])
	if err != nil {
		usage()
	}

	// The reference takes the task count from its launcher; here an
	// optional trailing argument sets it, defaulting to the free CPUs.
	workers := 0
	if len(os.Args) == 6 {
		workers, err = strconv.Atoi(os.Args[5])
		if err != nil {
			usage()
		}
	} else {
		workers = runtime.NumCPU() - 1
		if workers < ll.MinWorkers {
			workers = ll.MinWorkers
		}
		if workers > ll.MaxWorkers {
			workers = ll.MaxWorkers
		}
		if workers > size {
			workers = size
		}
	}

	p := ll.Params{
		Steps:    steps,
		Size:     size,
		Temp:     temp,
		Workers:  workers,
		Seed:     defaultSeed,
		PlotFlag: pflag,
		LogDir:   ".",
	}
	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Starting %s with %d worker tasks", os.Args[0], p.Workers)

	events := make(chan ll.Event)
	go func() {
		for range events {
		}
	}()
	result, err := ll.Run(p, events)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: Size: %d, Steps: %d, T*: %5.3f: Order: %5.3f, Mean ratio: %5.3f, Time: %8.6f s\n",
		os.Args[0], p.Size, p.Steps, p.Temp,
		result.Order[p.Steps], stat.Mean(result.Ratio, nil), result.Runtime.Seconds())

	if p.PlotFlag != 0 {
		if err := sdl.Show(result.Lattice, p.PlotFlag); err != nil {
			log.Printf("viewer: %v", err)
		}
	}
}
