package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v1 := NewVector(3).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[2])
	v1.Set(2)
	require.Equal(t, 2., v1.AtVec(0))

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(5).Linspace(0, 1)
		assert.Equal(t, 0., req.AtVec(0))
		assert.Equal(t, 0.25, req.AtVec(1))
		assert.Equal(t, 0.75, req.AtVec(3))
		assert.Equal(t, 1., req.AtVec(4))
		// zero-width interval collapses to a repeated value
		req = NewVector(4).Linspace(2, 2)
		for i := 0; i < req.Len(); i++ {
			assert.Equal(t, 2., req.AtVec(i))
		}
	}
	// Diff
	{
		v := NewVector(4, []float64{1, 2, 4, 8})
		d := v.Diff()
		require.Equal(t, 3, d.Len())
		assert.Equal(t, []float64{1, 2, 4}, d.RawVector().Data)
	}
	// Concat
	{
		v := NewVector(2, []float64{1, 2}).Concat(NewVector(3, []float64{3, 4, 5}))
		require.Equal(t, 5, v.Len())
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.RawVector().Data)
	}
	// Min / Max / Apply / Scale / AddScalar
	{
		v := NewVector(4, []float64{3, -1, 2, 0})
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 3., v.Max())
		w := v.Copy().Apply(func(x float64) float64 { return x * x })
		assert.Equal(t, []float64{9, 1, 4, 0}, w.RawVector().Data)
		// Copy did not alias the source
		assert.Equal(t, []float64{3, -1, 2, 0}, v.RawVector().Data)
		v.Scale(2).AddScalar(1)
		assert.Equal(t, []float64{7, -1, 5, 1}, v.RawVector().Data)
	}
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.Equal(t, 1., POW(17, 0))
	assert.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
	assert.False(t, IsNan([]float64{0, 1, 2}))
	assert.True(t, IsNan([]float64{0, math.NaN(), 2}))
	assert.True(t, IsFinite([]float64{0, 1, 2}))
	assert.False(t, IsFinite([]float64{0, math.Inf(1), 2}))
	assert.False(t, IsFinite([]float64{math.NaN()}))
}
