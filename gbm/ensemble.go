package gbm

import (
	"math/rand"
	"sync"
)

// Ensemble is the full set of paths from one simulation run. It is built once
// by Run or RunParallel and read-only afterwards.
type Ensemble []Path

// Terminals returns the final price of every path.
func (e Ensemble) Terminals() []float64 {
	out := make([]float64, len(e))
	for i, p := range e {
		out[i] = p.Terminal()
	}
	return out
}

// Run generates Paths independent trajectories sequentially, advancing the
// single shared source in path-major order. For a fixed seed the draw order
// is fully deterministic, so repeated runs reproduce bit-identical output.
func Run(p Params, rng *rand.Rand) (Ensemble, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ens := make(Ensemble, p.Paths)
	for i := range ens {
		ens[i] = Generate(p, rng)
	}
	return ens, nil
}

// RunSeeded is Run with a source seeded from the given value.
func RunSeeded(p Params, seed int64) (Ensemble, error) {
	return Run(p, rand.New(rand.NewSource(seed)))
}

// RunParallel splits path generation across workers. Worker w owns a private
// source seeded seed+w and fills a contiguous slice of the ensemble, so no
// two goroutines share mutable state and the result is deterministic for a
// fixed (seed, workers) pair. Statistical independence across workers holds
// for the same reason it holds within one stream: the derived seeds start
// 2^63-period generators at unrelated points.
//
// workers is clamped to [1, Paths].
func RunParallel(p Params, seed int64, workers int) (Ensemble, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}
	if workers > p.Paths {
		workers = p.Paths
	}

	ens := make(Ensemble, p.Paths)

	// Contiguous chunks; the first (paths % workers) workers take one extra.
	chunk := p.Paths / workers
	extra := p.Paths % workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		n := chunk
		if w < extra {
			n++
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			for i := lo; i < hi; i++ {
				ens[i] = Generate(p, rng)
			}
		}(w, start, start+n)

		start += n
	}
	wg.Wait()

	return ens, nil
}
