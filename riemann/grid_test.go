package riemann

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateGrid(t *testing.T) {
	qv, err := NewStateGrid(0.1, 0.6, 6)
	require.NoError(t, err)
	require.Equal(t, 6, qv.Len())
	assert.Equal(t, 0.1, qv.AtVec(0))
	assert.Equal(t, 0.6, qv.AtVec(5))
	assert.InDelta(t, 0.2, qv.AtVec(1), 1.e-12)

	// grid ascends in q regardless of state ordering
	rev, err := NewStateGrid(0.6, 0.1, 6)
	require.NoError(t, err)
	assert.Equal(t, qv.RawVector().Data, rev.RawVector().Data)

	// degenerate data collapses to a repeated value, no division by zero
	deg, err := NewStateGrid(2, 2, 4)
	require.NoError(t, err)
	for i := 0; i < deg.Len(); i++ {
		assert.Equal(t, 2., deg.AtVec(i))
	}

	_, err = NewStateGrid(0, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidGrid))
	_, err = NewStateGrid(0, 1, 0)
	assert.True(t, errors.Is(err, ErrInvalidGrid))
}

func TestShockSpeed(t *testing.T) {
	// traffic flux, Rankine-Hugoniot: (f(0.6)-f(0.1))/(0.6-0.1) = 0.3
	f := Flux(func(q float64) float64 { return q * (1. - q) })
	assert.InDelta(t, 0.3, ShockSpeed(f, 0.6, 0.1), 1.e-12)
	assert.InDelta(t, 0.3, ShockSpeed(f, 0.1, 0.6), 1.e-12)
	// Burgers
	b := Flux(func(q float64) float64 { return 0.5 * q * q })
	assert.InDelta(t, 0.5, ShockSpeed(b, 1, 0), 1.e-12)
}

func TestFluxSample(t *testing.T) {
	qv, err := NewStateGrid(-1, 1, 101)
	require.NoError(t, err)
	fv, err := Flux(func(q float64) float64 { return q * q }).Sample(qv)
	require.NoError(t, err)
	assert.Equal(t, 101, fv.Len())
	assert.InDelta(t, 1., fv.AtVec(0), 1.e-12)
	assert.InDelta(t, 0., fv.AtVec(50), 1.e-12)

	_, err = Flux(math.Log).Sample(qv) // NaN for q < 0
	assert.True(t, errors.Is(err, ErrNonFiniteFlux))
}
