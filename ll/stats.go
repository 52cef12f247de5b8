package ll

// Series holds one scalar triple per step. Workers record their own block's
// values during the run; the coordinator reduces all worker series once at
// the end, after the final gather.
type Series struct {
	Ratio  []float64
	Energy []float64
	Order  []float64
}

func newSeries(steps int) Series {
	return Series{
		Ratio:  make([]float64, steps),
		Energy: make([]float64, steps),
		Order:  make([]float64, steps),
	}
}

// accumulate adds another worker's series element-wise.
func (series *Series) accumulate(other Series) {
	for i := range series.Ratio {
		series.Ratio[i] += other.Ratio[i]
		series.Energy[i] += other.Energy[i]
		series.Order[i] += other.Order[i]
	}
}

// reduce finishes the sum-reduction: energy stays a global sum while ratio
// and order become means over the workers. Only worker contributions are
// reduced; the coordinator owns no block, so the denominator is exactly the
// worker count.
func (series *Series) reduce(workers int) {
	for i := range series.Ratio {
		series.Ratio[i] /= float64(workers)
		series.Order[i] /= float64(workers)
	}
}
