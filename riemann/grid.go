package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/goriemann/utils"
)

// DefaultNumSamples is the default resolution of the state grid and of the
// similarity-variable sample produced by ComputeSolution.
const DefaultNumSamples = 1000

// NewStateGrid returns numSamples uniformly spaced states spanning
// [min(qLeft,qRight), max(qLeft,qRight)], both endpoints included. The grid
// is ascending in q regardless of the ordering of qLeft and qRight. For
// qLeft == qRight the grid collapses to numSamples copies of the same value.
func NewStateGrid(qLeft, qRight float64, numSamples int) (qv utils.Vector, err error) {
	if numSamples < 2 {
		err = fmt.Errorf("%w: need at least 2 state samples, got %d", ErrInvalidGrid, numSamples)
		return
	}
	var (
		qMin = math.Min(qLeft, qRight)
		qMax = math.Max(qLeft, qRight)
	)
	qv = utils.NewVector(numSamples).Linspace(qMin, qMax)
	return
}
