package riemann

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/goriemann/utils"
)

/*
Osher's similarity-solution formula gives the unique entropy-satisfying weak
solution of the scalar Riemann problem for an arbitrary continuous flux:

	Q(ξ) = argmin_{qMin <= q <= qMax} [ f(q) - ξq ]   if qLeft <= qRight
	Q(ξ) = argmax_{qMin <= q <= qMax} [ f(q) - ξq ]   if qLeft >  qRight

with ξ = x/t. The extremization selects shocks, rarefactions and composites
of both automatically, with no convexity assumption on f - it is equivalent
to the convex-hull construction on the sampled (q, f(q)) graph.

The implementation is a dense-sampling approximation: f is evaluated once
over the whole state grid and each ξ query scans the grid for the extremum.
Shock locations and rarefaction smoothness therefore resolve to within one
grid spacing; accuracy scales with numSamples. This trades exactness for
generality over nonconvex fluxes where f' has no closed-form inverse.
*/

// Evaluator is the similarity solution ξ -> Q(ξ), vectorized over an ordered
// sequence of ξ query values. The returned slice is index-aligned with the
// input and freshly allocated on each call. Evaluators are pure: identical
// inputs produce bit-identical outputs.
type Evaluator func(xi []float64) (q []float64)

// OsherSolution builds the similarity-solution evaluator for the Riemann
// problem (qLeft, qRight) with the given flux, using a state grid of
// numSamples points.
//
// When several grid points attain the extremal value of f(q)-ξq (an artifact
// of the dense sampling), the first point in ascending-q grid order wins.
// This tie-break is the canonical, deterministic behavior.
//
// qLeft == qRight is rejected with ErrDegenerateData; the constant solution
// remains available explicitly via ConstantSolution.
func OsherSolution(f Flux, qLeft, qRight float64, numSamples int) (eval Evaluator, err error) {
	qD, fD, err := sampleStates(f, qLeft, qRight, numSamples)
	if err != nil {
		return
	}
	argMin := qLeft <= qRight
	eval = func(xi []float64) (q []float64) {
		q = make([]float64, len(xi))
		for j, xij := range xi {
			q[j] = qD[scanExtremum(fD, qD, xij, argMin)]
		}
		return
	}
	return
}

// OsherSolutionParallel is the concurrent variant of OsherSolution. The ξ
// query range is split across parallelDegree workers (<= 0 selects
// runtime.NumCPU), each writing a disjoint index range of the output. Every
// query still performs the identical sequential grid scan, so results are
// bit-identical to OsherSolution, tie-break included.
func OsherSolutionParallel(f Flux, qLeft, qRight float64, numSamples, parallelDegree int) (eval Evaluator, err error) {
	qD, fD, err := sampleStates(f, qLeft, qRight, numSamples)
	if err != nil {
		return
	}
	if parallelDegree <= 0 {
		parallelDegree = runtime.NumCPU()
	}
	argMin := qLeft <= qRight
	eval = func(xi []float64) (q []float64) {
		q = make([]float64, len(xi))
		NP := parallelDegree
		if NP > len(xi) {
			NP = len(xi)
		}
		if NP < 2 {
			for j, xij := range xi {
				q[j] = qD[scanExtremum(fD, qD, xij, argMin)]
			}
			return
		}
		pm := utils.NewPartitionMap(NP, len(xi))
		wg := sync.WaitGroup{}
		for np := 0; np < NP; np++ {
			wg.Add(1)
			go func(np int) {
				defer wg.Done()
				jMin, jMax := pm.GetBucketRange(np)
				for j := jMin; j < jMax; j++ {
					q[j] = qD[scanExtremum(fD, qD, xi[j], argMin)]
				}
			}(np)
		}
		wg.Wait()
		return
	}
	return
}

// ConstantSolution is the documented fallback for degenerate data
// qLeft == qRight == c: the solution is the constant c for every ξ.
func ConstantSolution(c float64) (eval Evaluator) {
	eval = func(xi []float64) (q []float64) {
		q = utils.ConstArray(len(xi), c)
		return
	}
	return
}

// sampleStates builds the shared read-only state grid and flux samples used
// by every evaluator query.
func sampleStates(f Flux, qLeft, qRight float64, numSamples int) (qD, fD []float64, err error) {
	if qLeft == qRight {
		err = fmt.Errorf("%w: qLeft = qRight = %g", ErrDegenerateData, qLeft)
		return
	}
	qv, err := NewStateGrid(qLeft, qRight, numSamples)
	if err != nil {
		return
	}
	fv, err := f.Sample(qv)
	if err != nil {
		return
	}
	qD, fD = qv.RawVector().Data, fv.RawVector().Data
	return
}

// scanExtremum returns the index of the first grid point minimizing
// (argMin) or maximizing f(q)-ξq. Strict comparison keeps the first
// occurrence on ties.
func scanExtremum(fD, qD []float64, xi float64, argMin bool) (iBest int) {
	best := fD[0] - xi*qD[0]
	if argMin {
		for i := 1; i < len(qD); i++ {
			if g := fD[i] - xi*qD[i]; g < best {
				best, iBest = g, i
			}
		}
	} else {
		for i := 1; i < len(qD); i++ {
			if g := fD[i] - xi*qD[i]; g > best {
				best, iBest = g, i
			}
		}
	}
	return
}
