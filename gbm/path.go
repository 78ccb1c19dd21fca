package gbm

import (
	"math"
	"math/rand"
)

// Path is one simulated price trajectory: Steps+1 values, index 0 being the
// initial price, index i the price at time i * Horizon/Steps.
type Path []float64

// Terminal returns the price at the final time step.
func (p Path) Terminal() float64 {
	return p[len(p)-1]
}

// Generate advances a single path through all time steps using the exact
// one-step GBM transition:
//
//	S[i] = S[i-1] * exp((mu - sigma^2/2)*dt + sigma*sqrt(dt)*Z)
//
// with Z drawn from rng. Stepping through the closed-form transition (rather
// than an Euler approximation) means there is no accumulating discretization
// bias regardless of step size.
//
// A shock is drawn on every step even when Volatility is zero, so the random
// stream advances identically for all parameter sets: with a fixed seed,
// changing sigma never shifts the draws seen by later paths.
//
// Very large drift/volatility/horizon combinations can overflow the
// exponential; the +Inf propagates into downstream statistics rather than
// being caught here.
func Generate(p Params, rng *rand.Rand) Path {
	path := make(Path, p.Steps+1)
	path[0] = p.InitialPrice

	dt := p.Dt()
	drift := (p.Drift - 0.5*p.Volatility*p.Volatility) * dt
	vol := p.Volatility * math.Sqrt(dt)

	for i := 1; i <= p.Steps; i++ {
		z := rng.NormFloat64()
		path[i] = path[i-1] * math.Exp(drift+vol*z)
	}

	return path
}
