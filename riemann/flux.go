package riemann

import (
	"fmt"

	"github.com/notargets/goriemann/utils"
)

// Flux is the scalar flux f(q) of the conservation law
//
//	q_t + f(q)_x = 0
//
// It must be continuous on the closed interval between the two boundary
// states; it may be nonconvex, non-monotonic or oscillatory.
type Flux func(q float64) float64

// Sample evaluates f over every entry of qv and validates the result.
func (f Flux) Sample(qv utils.Vector) (fv utils.Vector, err error) {
	fv = qv.Copy().Apply(f)
	if !utils.IsFinite(fv.RawVector().Data) {
		err = fmt.Errorf("%w: flux is NaN or Inf on the state grid", ErrNonFiniteFlux)
	}
	return
}
