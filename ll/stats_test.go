package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesAccumulateAndReduce(t *testing.T) {
	sums := newSeries(3)

	a := Series{
		Ratio:  []float64{0.2, 0.4, 0.6},
		Energy: []float64{-10, -12, -14},
		Order:  []float64{0.3, 0.5, 0.7},
	}
	b := Series{
		Ratio:  []float64{0.6, 0.2, 0.2},
		Energy: []float64{-20, -24, -28},
		Order:  []float64{0.5, 0.3, 0.1},
	}
	sums.accumulate(a)
	sums.accumulate(b)
	sums.reduce(2)

	// Energy is a global sum, ratio and order are means over workers.
	assert.InDeltaSlice(t, []float64{-30, -36, -42}, sums.Energy, 1e-12)
	assert.InDeltaSlice(t, []float64{0.4, 0.3, 0.4}, sums.Ratio, 1e-12)
	assert.InDeltaSlice(t, []float64{0.4, 0.4, 0.4}, sums.Order, 1e-12)
}

func TestSeriesSingleWorkerReduceIsIdentity(t *testing.T) {
	sums := newSeries(2)
	sums.accumulate(Series{
		Ratio:  []float64{0.5, 0.25},
		Energy: []float64{-1, -2},
		Order:  []float64{0.9, 0.8},
	})
	sums.reduce(1)
	assert.Equal(t, []float64{0.5, 0.25}, sums.Ratio)
	assert.Equal(t, []float64{-1.0, -2.0}, sums.Energy)
	assert.Equal(t, []float64{0.9, 0.8}, sums.Order)
}
