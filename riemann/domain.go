package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/goriemann/utils"
)

// Domain bounds the similarity variable ξ = x/t over which the solution is
// evaluated. Supplied by the caller or derived by EstimateDomain.
type Domain struct {
	XiLeft, XiRight float64
}

// CharacteristicSpeeds approximates f'(q) at each adjacent pair of grid
// points by forward finite differences, yielding qv.Len()-1 speeds. The grid
// must have nonzero spacing (degenerate data has none).
func CharacteristicSpeeds(f Flux, qv utils.Vector) (speeds utils.Vector, err error) {
	if qv.Len() < 2 {
		err = fmt.Errorf("%w: need at least 2 grid points for finite differences", ErrInvalidGrid)
		return
	}
	dq := qv.AtVec(1) - qv.AtVec(0)
	if dq == 0 {
		err = fmt.Errorf("%w: zero grid spacing", ErrDegenerateData)
		return
	}
	fv, err := f.Sample(qv)
	if err != nil {
		return
	}
	speeds = fv.Diff().Scale(1. / dq)
	return
}

// EstimateDomain proposes default ξ bounds when the caller supplies none:
// the characteristic-speed range on the grid, padded by 10% on each side and
// widened to always include ξ = 0.
func EstimateDomain(f Flux, qv utils.Vector) (d Domain, err error) {
	speeds, err := CharacteristicSpeeds(f, qv)
	if err != nil {
		return
	}
	var (
		dfMin, dfMax = speeds.Min(), speeds.Max()
		dfRange      = dfMax - dfMin
	)
	d.XiLeft = math.Min(0, dfMin) - 0.1*dfRange
	d.XiRight = math.Max(0, dfMax) + 0.1*dfRange
	return
}
