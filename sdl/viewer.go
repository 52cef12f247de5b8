// Package sdl shows the final lattice frame in a window, standing in for
// the reference implementation's quiver plots.
package sdl

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nicolaegues/LL-acceleration/lattice"
)

const windowSize = 640

// Show opens a window displaying the lattice and blocks until it is closed
// or a key is pressed. Mode selects the colouring: 1 per-cell energy,
// 2 orientation angle, 3 plain. Mode 0 returns immediately.
func Show(l *lattice.Lattice, mode int) error {
	if mode == 0 {
		return nil
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer(windowSize, windowSize, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	defer window.Destroy()
	defer renderer.Destroy()
	window.SetTitle("Lebwohl-Lasher")

	n := l.Size()
	cell := float32(windowSize) / float32(n)

	var energies [][]float64
	emin, emax := 0.0, 1.0
	if mode == 1 {
		energies = l.EnergyField()
		emin, emax = math.Inf(1), math.Inf(-1)
		for _, row := range energies {
			for _, e := range row {
				emin = math.Min(emin, e)
				emax = math.Max(emax, e)
			}
		}
		if emax == emin {
			emax = emin + 1
		}
	}

	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()
	for i := 0; i != n; i++ {
		for j := 0; j != n; j++ {
			var r, g, b uint8
			switch mode {
			case 1:
				// Normalised to the energy range of the frame.
				t := (energies[i][j] - emin) / (emax - emin)
				r, g, b = heatColour(t)
			case 2:
				// Cyclic colouring of the director angle over [0, pi).
				angle := math.Mod(l.Row(i)[j], math.Pi)
				if angle < 0 {
					angle += math.Pi
				}
				r, g, b = hueColour(angle / math.Pi)
			default:
				r, g, b = 200, 200, 200
			}
			renderer.SetDrawColor(r, g, b, 255)
			renderer.FillRectF(&sdl.FRect{
				X: float32(j) * cell,
				Y: float32(i) * cell,
				W: cell,
				H: cell,
			})
		}
	}
	renderer.Present()

	for {
		event := sdl.WaitEvent()
		switch event.(type) {
		case *sdl.QuitEvent, *sdl.KeyboardEvent:
			return nil
		}
	}
}

// heatColour maps t in [0,1] to a blue-to-red ramp.
func heatColour(t float64) (uint8, uint8, uint8) {
	return uint8(255 * t), uint8(64 * (1 - math.Abs(2*t-1))), uint8(255 * (1 - t))
}

// hueColour maps t in [0,1) around the hue circle at full saturation.
func hueColour(t float64) (uint8, uint8, uint8) {
	h := t * 6
	x := uint8(255 * (1 - math.Abs(math.Mod(h, 2)-1)))
	switch int(h) {
	case 0:
		return 255, x, 0
	case 1:
		return x, 255, 0
	case 2:
		return 0, 255, x
	case 3:
		return 0, x, 255
	case 4:
		return x, 0, 255
	default:
		return 255, 0, x
	}
}
