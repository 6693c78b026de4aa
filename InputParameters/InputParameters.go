package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type RiemannParameters struct {
	Title      string   `yaml:"Title"`
	Flux       string   `yaml:"Flux"`      // named flux: Traffic, BuckleyLeverett, Sinusoidal
	FluxRatio  float64  `yaml:"FluxRatio"` // viscosity ratio a for BuckleyLeverett
	QLeft      float64  `yaml:"QLeft"`
	QRight     float64  `yaml:"QRight"`
	NumSamples int      `yaml:"NumSamples"`
	XiLeft     *float64 `yaml:"XiLeft"`  // nil -> estimated from characteristic speeds
	XiRight    *float64 `yaml:"XiRight"` // nil -> estimated from characteristic speeds
}

func (rp *RiemannParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RiemannParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t\t= Flux\n", rp.Flux)
	fmt.Printf("%8.5f\t\t= QLeft\n", rp.QLeft)
	fmt.Printf("%8.5f\t\t= QRight\n", rp.QRight)
	fmt.Printf("[%d]\t\t\t= NumSamples\n", rp.NumSamples)
	if rp.XiLeft != nil && rp.XiRight != nil {
		fmt.Printf("[%8.5f,%8.5f]\t= Xi Range\n", *rp.XiLeft, *rp.XiRight)
	} else {
		fmt.Printf("[estimated]\t\t= Xi Range\n")
	}
}
