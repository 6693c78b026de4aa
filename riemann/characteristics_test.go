package riemann

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goriemann/utils"
)

func blFlux(q float64) float64 {
	return q * q / (q*q + 0.5*(1.-q)*(1.-q))
}

func TestTraceCharacteristics(t *testing.T) {
	var (
		n = 11
		d = Domain{XiLeft: -2, XiRight: 3}
	)
	qv, err := NewStateGrid(0.1, 0.6, n)
	require.NoError(t, err)
	tr, err := TraceCharacteristics(trafficFlux, 0.1, 0.6, qv, d)
	require.NoError(t, err)
	// grid midpoints plus the two boundary entries
	require.Equal(t, n+1, len(tr.Q))
	require.Equal(t, n+1, len(tr.Xi))
	assert.Equal(t, 0.1, tr.Q[0])
	assert.Equal(t, 0.6, tr.Q[n])
	assert.InDelta(t, 0.125, tr.Q[1], 1.e-12) // first midpoint
	// qLeft <= qRight: low-end pad is xiLeft, high-end pad is xiRight
	assert.Equal(t, -2., tr.Xi[0])
	assert.Equal(t, 3., tr.Xi[n])

	// qLeft > qRight traverses q -> xi in reverse, so the pads swap
	tr, err = TraceCharacteristics(trafficFlux, 0.6, 0.1, qv, d)
	require.NoError(t, err)
	assert.Equal(t, 3., tr.Xi[0])
	assert.Equal(t, -2., tr.Xi[n])
	// q stays ascending either way
	assert.Equal(t, 0.1, tr.Q[0])
	assert.Equal(t, 0.6, tr.Q[n])
}

func TestTraceIsMultivalued(t *testing.T) {
	// the Buckley-Leverett speeds rise then fall across the inflection, so
	// the naive trace is non-monotone in xi - exactly the multivaluedness
	// the entropy solution resolves away
	qv, err := NewStateGrid(0, 1, 201)
	require.NoError(t, err)
	d, err := EstimateDomain(blFlux, qv)
	require.NoError(t, err)
	tr, err := TraceCharacteristics(blFlux, 1, 0, qv, d)
	require.NoError(t, err)
	assert.False(t, sort.Float64sAreSorted(tr.Xi))
	assert.False(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(tr.Xi))))
}

func TestTraceDegenerate(t *testing.T) {
	deg := utils.NewVector(5).Set(1)
	_, err := TraceCharacteristics(trafficFlux, 1, 1, deg, Domain{XiLeft: -1, XiRight: 1})
	assert.Error(t, err)
}
