package problems

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/goriemann/riemann"
	"github.com/notargets/goriemann/utils"
)

/*
Canonical scalar Riemann problems, used by the command line runner and the
scenario tests.

	Traffic:          f(q) = q(1-q), concave. The LWR traffic-flow flux;
	                  qLeft < qRight gives a single shock, qLeft > qRight a
	                  single rarefaction.
	Buckley-Leverett: f(q) = q^2 / (q^2 + a(1-q)^2), S-shaped (one inflection).
	                  Two-phase flow in porous media; the solution from q=1 to
	                  q=0 is a rarefaction attached to a shock.
	Sinusoidal:       f(q) = q sin(q), oscillatory. Multiple inflections
	                  produce composite waves with several shocks embedded in
	                  rarefaction segments.
*/

type Problem struct {
	Name          string
	Description   string
	Flux          riemann.Flux
	QLeft, QRight float64
}

// TrafficFlux is the Lighthill-Whitham-Richards flux q(1-q).
func TrafficFlux(q float64) float64 {
	return q * (1. - q)
}

// BuckleyLeverettFlux returns the two-phase flux q^2/(q^2 + a(1-q)^2) with
// viscosity ratio a.
func BuckleyLeverettFlux(a float64) riemann.Flux {
	return func(q float64) float64 {
		return utils.POW(q, 2) / (utils.POW(q, 2) + a*utils.POW(1.-q, 2))
	}
}

// SinusoidalFlux is the oscillatory flux q sin(q).
func SinusoidalFlux(q float64) float64 {
	return q * math.Sin(q)
}

var registry = map[string]Problem{
	"traffic-shock": {
		Name:        "traffic-shock",
		Description: "Traffic flow, congestion ahead: single shock at s = 0.3",
		Flux:        TrafficFlux,
		QLeft:       0.1,
		QRight:      0.6,
	},
	"traffic-rarefaction": {
		Name:        "traffic-rarefaction",
		Description: "Traffic flow, jam clearing downstream: single rarefaction fan",
		Flux:        TrafficFlux,
		QLeft:       0.6,
		QRight:      0.1,
	},
	"buckley-leverett": {
		Name:        "buckley-leverett",
		Description: "Buckley-Leverett two-phase flow (a = 0.5): rarefaction attached to a shock",
		Flux:        BuckleyLeverettFlux(0.5),
		QLeft:       1,
		QRight:      0,
	},
	"sinusoidal": {
		Name:        "sinusoidal",
		Description: "Oscillatory flux q sin(q): composite waves with embedded shocks",
		Flux:        SinusoidalFlux,
		QLeft:       0.25 * math.Pi,
		QRight:      3.75 * math.Pi,
	},
}

// FluxByName resolves the flux names accepted in YAML input files. ratio is
// the Buckley-Leverett viscosity ratio; zero selects the default 0.5.
func FluxByName(name string, ratio float64) (f riemann.Flux, err error) {
	switch name {
	case "Traffic":
		f = TrafficFlux
	case "BuckleyLeverett":
		if ratio == 0 {
			ratio = 0.5
		}
		f = BuckleyLeverettFlux(ratio)
	case "Sinusoidal":
		f = SinusoidalFlux
	default:
		err = fmt.Errorf("unknown flux %q, have [Traffic BuckleyLeverett Sinusoidal]", name)
	}
	return
}

// Get returns the named problem.
func Get(name string) (p Problem, err error) {
	var ok bool
	if p, ok = registry[name]; !ok {
		err = fmt.Errorf("unknown problem %q, have %v", name, Names())
	}
	return
}

// Names lists the registered problem names in sorted order.
func Names() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
