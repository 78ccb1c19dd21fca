package gbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() Params {
	return Params{
		InitialPrice: 100,
		Drift:        0.08,
		Volatility:   0.20,
		Horizon:      1,
		Steps:        252,
		Paths:        100,
	}
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, validParams().Validate())
}

func TestParamsValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero price", func(p *Params) { p.InitialPrice = 0 }},
		{"negative price", func(p *Params) { p.InitialPrice = -1 }},
		{"negative volatility", func(p *Params) { p.Volatility = -0.1 }},
		{"zero horizon", func(p *Params) { p.Horizon = 0 }},
		{"negative horizon", func(p *Params) { p.Horizon = -1 }},
		{"zero steps", func(p *Params) { p.Steps = 0 }},
		{"zero paths", func(p *Params) { p.Paths = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestParamsValidateAllowsZeroVolatility(t *testing.T) {
	p := validParams()
	p.Volatility = 0
	assert.NoError(t, p.Validate())
}

func TestParamsTimePoints(t *testing.T) {
	p := Params{InitialPrice: 100, Horizon: 2, Steps: 4, Paths: 1}
	ts := p.TimePoints()

	assert.Len(t, ts, 5)
	assert.Equal(t, 0.0, ts[0])
	assert.InDelta(t, 0.5, ts[1], 1e-12)
	assert.InDelta(t, 2.0, ts[4], 1e-12)
}
