// Package gbm simulates asset price paths under geometric Brownian motion.
package gbm

import "fmt"

// Params holds the inputs for one simulation run. Values are annualized:
// a Drift of 0.08 means 8% expected return per year, a Horizon of 0.5 is
// six months.
type Params struct {
	InitialPrice float64 `json:"initial_price" yaml:"initial_price"`
	Drift        float64 `json:"drift" yaml:"drift"`
	Volatility   float64 `json:"volatility" yaml:"volatility"`
	Horizon      float64 `json:"horizon" yaml:"horizon"` // years
	Steps        int     `json:"steps" yaml:"steps"`
	Paths        int     `json:"paths" yaml:"paths"`
}

// Validate checks the parameter invariants. Invalid parameters are rejected
// before any simulation runs; nothing downstream clamps or corrects them.
func (p Params) Validate() error {
	if p.InitialPrice <= 0 {
		return fmt.Errorf("initial_price must be positive, got %g", p.InitialPrice)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("volatility must be non-negative, got %g", p.Volatility)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %g", p.Horizon)
	}
	if p.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", p.Steps)
	}
	if p.Paths < 1 {
		return fmt.Errorf("paths must be at least 1, got %d", p.Paths)
	}
	return nil
}

// Dt returns the size of one time increment in years.
func (p Params) Dt() float64 {
	return p.Horizon / float64(p.Steps)
}

// TimePoints returns the Steps+1 discrete times t_i = i * Horizon/Steps,
// starting at 0 and ending at Horizon.
func (p Params) TimePoints() []float64 {
	ts := make([]float64, p.Steps+1)
	dt := p.Dt()
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	return ts
}
