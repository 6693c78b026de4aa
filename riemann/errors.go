package riemann

import "errors"

// Sentinel errors returned by the solver constructors. All are detected at
// solve time and surfaced immediately; nothing is retried, the computation
// is deterministic.
var (
	// ErrInvalidGrid - requested state sample count < 2, or fewer than 2
	// points available for finite-difference speed estimation.
	ErrInvalidGrid = errors.New("invalid state grid")

	// ErrDegenerateData - qLeft equals qRight, so the state grid collapses
	// to a single repeated value. Callers that want the constant solution
	// must opt in via ConstantSolution.
	ErrDegenerateData = errors.New("degenerate riemann data")

	// ErrNonFiniteFlux - flux evaluation produced NaN or Inf on the grid.
	ErrNonFiniteFlux = errors.New("non-finite flux value")

	// ErrInvalidDomain - supplied xiLeft >= xiRight.
	ErrInvalidDomain = errors.New("invalid similarity domain")
)
