package riemann

import (
	"fmt"

	"github.com/notargets/goriemann/utils"
)

// Solution is the full output bundle of one solve, consumed by external
// renderers. Xi and Q are the index-aligned similarity-solution samples;
// QChar and XiChar are the index-aligned characteristic trace
// (overlay-only, possibly multivalued).
type Solution struct {
	Xi, Q         []float64
	QChar, XiChar []float64
}

// ComputeSolution runs a full solve: state grid, ξ bounds (estimated from
// the characteristic-speed range when domain is nil), the Osher evaluator
// applied to a dense uniform ξ sample of numSamples points, and the
// characteristic trace. Pure and deterministic; any failure propagates
// immediately, nothing is retried.
func ComputeSolution(f Flux, qLeft, qRight float64, numSamples int, domain *Domain) (sol *Solution, err error) {
	if domain != nil && domain.XiLeft >= domain.XiRight {
		err = fmt.Errorf("%w: xiLeft=%g >= xiRight=%g", ErrInvalidDomain, domain.XiLeft, domain.XiRight)
		return
	}
	eval, err := OsherSolution(f, qLeft, qRight, numSamples)
	if err != nil {
		return
	}
	qv, err := NewStateGrid(qLeft, qRight, numSamples)
	if err != nil {
		return
	}
	var d Domain
	if domain != nil {
		d = *domain
	} else {
		if d, err = EstimateDomain(f, qv); err != nil {
			return
		}
	}
	tr, err := TraceCharacteristics(f, qLeft, qRight, qv, d)
	if err != nil {
		return
	}
	xi := NewSimilaritySample(d, numSamples)
	sol = &Solution{
		Xi:     xi,
		Q:      eval(xi),
		QChar:  tr.Q,
		XiChar: tr.Xi,
	}
	return
}

// NewSimilaritySample returns n uniformly spaced ξ query points spanning the
// domain, endpoints included.
func NewSimilaritySample(d Domain, n int) (xi []float64) {
	xi = utils.NewVector(n).Linspace(d.XiLeft, d.XiRight).RawVector().Data
	return
}
