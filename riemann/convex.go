package riemann

// ShockSpeed returns the Rankine-Hugoniot jump speed s = [f]/[q] of a
// discontinuity between qLeft and qRight. For a convex (or concave) flux
// this is the exact speed of the single shock; for nonconvex fluxes it is
// only the speed of an isolated jump between the two states.
func ShockSpeed(f Flux, qLeft, qRight float64) (s float64) {
	s = (f(qLeft) - f(qRight)) / (qLeft - qRight)
	return
}
