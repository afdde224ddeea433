package stats

import (
	"math/rand"
	"sort"
)

// BoxSummary holds the five number summary drawn by a box plot
type BoxSummary struct {
	Count  int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
}

// Quartiles summarises values using linear interpolation between closest ranks.
// values is not modified.
func Quartiles(values []float64) BoxSummary {
	if len(values) == 0 {
		return BoxSummary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return BoxSummary{
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.5),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
	}
}

func percentile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Shuffled returns a shuffled copy of values. Aggregation results stay in
// traversal order; only exporters decorrelate columns with this.
func Shuffled(values []float64, rng *rand.Rand) []float64 {
	out := append([]float64(nil), values...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
