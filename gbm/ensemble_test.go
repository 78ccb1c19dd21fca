package gbm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPathCount(t *testing.T) {
	p := validParams()
	p.Paths = 37

	ens, err := RunSeeded(p, 1)
	require.NoError(t, err)
	assert.Len(t, ens, 37)
	for _, path := range ens {
		assert.Len(t, path, p.Steps+1)
	}
}

func TestRunRejectsInvalidParams(t *testing.T) {
	p := validParams()
	p.Paths = 0

	_, err := RunSeeded(p, 1)
	assert.Error(t, err)

	_, err = RunParallel(p, 1, 4)
	assert.Error(t, err)
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	p := validParams()

	a, err := RunSeeded(p, 123)
	require.NoError(t, err)
	b, err := RunSeeded(p, 123)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := RunSeeded(p, 124)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunPathsAreIndependent(t *testing.T) {
	// The shared source advances across paths, never re-seeding, so two
	// paths of the same run must differ.
	p := validParams()
	p.Paths = 2

	ens, err := RunSeeded(p, 55)
	require.NoError(t, err)
	assert.NotEqual(t, ens[0], ens[1])
}

func TestRunIdenticalPathsAtZeroVolatility(t *testing.T) {
	p := Params{
		InitialPrice: 100,
		Drift:        0.08,
		Volatility:   0,
		Horizon:      1,
		Steps:        252,
		Paths:        5,
	}

	ens, err := RunSeeded(p, 9)
	require.NoError(t, err)
	require.Len(t, ens, 5)

	for i, path := range ens {
		assert.Equal(t, ens[0], path, "path %d", i)
	}

	wantTerminal := 100 * math.Exp(0.08)
	assert.InDelta(t, wantTerminal, ens[0].Terminal(), 1e-9)
}

func TestRunParallelDeterministicForFixedSeedAndWorkers(t *testing.T) {
	p := validParams()
	p.Paths = 51 // not a multiple of the worker count

	a, err := RunParallel(p, 77, 4)
	require.NoError(t, err)
	b, err := RunParallel(p, 77, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := RunParallel(p, 78, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunParallelClampsWorkers(t *testing.T) {
	p := validParams()
	p.Paths = 3

	ens, err := RunParallel(p, 1, 16)
	require.NoError(t, err)
	assert.Len(t, ens, 3)

	ens, err = RunParallel(p, 1, 0)
	require.NoError(t, err)
	assert.Len(t, ens, 3)
}

func TestRunParallelOneWorkerMatchesSequential(t *testing.T) {
	// A single worker owns the whole range with source seed+0, which is the
	// sequential run with the same seed.
	p := validParams()
	p.Paths = 17

	seq, err := RunSeeded(p, 31)
	require.NoError(t, err)
	par, err := RunParallel(p, 31, 1)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestEnsembleTerminals(t *testing.T) {
	ens := Ensemble{
		Path{100, 110},
		Path{100, 95},
		Path{100, 102.5},
	}
	assert.Equal(t, []float64{110, 95, 102.5}, ens.Terminals())
}
