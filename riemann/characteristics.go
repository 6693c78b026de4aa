package riemann

import (
	"github.com/notargets/goriemann/utils"
)

// CharacteristicTrace is what characteristic tracing alone would produce:
// each state q carried at its own speed f'(q). For a nonconvex flux the
// trace is non-monotone in Xi - the multivalued picture the entropy
// solution resolves away. Overlay/diagnostic data only; it must never stand
// in for the similarity solution.
type CharacteristicTrace struct {
	Q, Xi []float64 // index-aligned, length numSamples+1
}

// TraceCharacteristics builds the diagnostic trace on the given state grid.
// Q holds the grid midpoints padded by qMin and qMax; Xi holds the
// finite-difference speeds padded by the outer domain bound on each side.
// For qLeft > qRight the q -> ξ mapping is traversed in reverse, so the
// pads are swapped.
func TraceCharacteristics(f Flux, qLeft, qRight float64, qv utils.Vector, d Domain) (tr CharacteristicTrace, err error) {
	speeds, err := CharacteristicSpeeds(f, qv)
	if err != nil {
		return
	}
	var (
		N    = qv.Len()
		qD   = qv.RawVector().Data
		qMid = utils.NewVector(N - 1)
		mD   = qMid.RawVector().Data
	)
	for i := range mD {
		mD[i] = 0.5 * (qD[i] + qD[i+1])
	}
	qLo := utils.NewVector(1).Set(qv.Min())
	qHi := utils.NewVector(1).Set(qv.Max())
	tr.Q = qLo.Concat(qMid).Concat(qHi).RawVector().Data

	xiLo, xiHi := d.XiLeft, d.XiRight
	if qLeft > qRight {
		xiLo, xiHi = d.XiRight, d.XiLeft
	}
	lo := utils.NewVector(1).Set(xiLo)
	hi := utils.NewVector(1).Set(xiHi)
	tr.Xi = lo.Concat(speeds).Concat(hi).RawVector().Data
	return
}
