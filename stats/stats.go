// Package stats reduces a simulation ensemble to descriptive statistics of
// its terminal price distribution.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/rustyeddy/mcsim/gbm"
)

// Summary describes the distribution of terminal prices across an ensemble.
type Summary struct {
	Mean   float64
	StdDev float64 // population standard deviation (divide by N)
	Min    float64
	Max    float64
	P5     float64 // 5th percentile of terminal prices
	P95    float64 // 95th percentile
}

// Compute reduces the terminal value of every path to a Summary. The ensemble
// is treated as an unordered collection; path order never affects the result.
// An empty ensemble is a contract violation and returns an error rather than
// NaN from a zero division.
func Compute(ens gbm.Ensemble) (Summary, error) {
	if len(ens) == 0 {
		return Summary{}, fmt.Errorf("compute statistics: empty ensemble")
	}

	terminals := ens.Terminals()

	sorted := append([]float64(nil), terminals...)
	sort.Float64s(sorted)

	return Summary{
		Mean:   Mean(terminals),
		StdDev: StdDev(terminals),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P5:     Percentile(sorted, 0.05),
		P95:    Percentile(sorted, 0.95),
	}, nil
}

// Mean returns the arithmetic mean. Panics on an empty slice; callers
// validate first.
func Mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation (divisor N, not N-1).
func StdDev(xs []float64) float64 {
	mean := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// Percentile selects the element at index floor(p*N) of an ascending-sorted
// slice. No interpolation. The index is clamped to [0, N-1]: for p close to
// 1 the raw index can equal N, which must map to the last element rather
// than read out of bounds.
func Percentile(sorted []float64, p float64) float64 {
	idx := int(math.Floor(p * float64(len(sorted))))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
