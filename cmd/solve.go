/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goriemann/InputParameters"
	"github.com/notargets/goriemann/problems"
	"github.com/notargets/goriemann/riemann"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scalar Riemann problem",
	Long: `
Computes the entropy-satisfying similarity solution for a named worked
problem or for a problem defined in a YAML input file,

goriemann solve -p traffic-shock -o traffic`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSolve{}
		ms.ProblemName, _ = cmd.Flags().GetString("problem")
		ms.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		ms.OutputPrefix, _ = cmd.Flags().GetString("output")
		ms.NumSamples, _ = cmd.Flags().GetInt("numSamples")
		ms.XiLeft, _ = cmd.Flags().GetFloat64("xiLeft")
		ms.XiRight, _ = cmd.Flags().GetFloat64("xiRight")
		ms.ParallelDegree, _ = cmd.Flags().GetInt("parallel")
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		if err := RunSolve(ms); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("problem", "p", "traffic-shock",
		fmt.Sprintf("named problem to solve, one of %v", problems.Names()))
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file defining the problem, overrides -p:\n\t- Flux\n\t- QLeft / QRight\n\t- NumSamples\n\t- XiLeft / XiRight")
	SolveCmd.Flags().StringP("output", "o", "", "prefix for CSV output files; stdout summary only when empty")
	SolveCmd.Flags().IntP("numSamples", "n", riemann.DefaultNumSamples, "number of state grid samples and xi query points")
	SolveCmd.Flags().Float64("xiLeft", math.NaN(), "left bound of the similarity domain (default estimated)")
	SolveCmd.Flags().Float64("xiRight", math.NaN(), "right bound of the similarity domain (default estimated)")
	SolveCmd.Flags().Int("parallel", 1, "number of workers for the xi query scan")
	SolveCmd.Flags().Bool("profile", false, "write a CPU profile to the current directory")
}

type ModelSolve struct {
	ProblemName     string
	ParamFile       string
	OutputPrefix    string
	NumSamples      int
	XiLeft, XiRight float64 // NaN when not supplied
	ParallelDegree  int
	Profile         bool
}

func RunSolve(ms *ModelSolve) (err error) {
	if ms.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		flux          riemann.Flux
		qLeft, qRight float64
		domain        *riemann.Domain
		title         string
	)
	if ms.ParamFile != "" {
		rp := &InputParameters.RiemannParameters{}
		var data []byte
		if data, err = os.ReadFile(ms.ParamFile); err != nil {
			return
		}
		if err = rp.Parse(data); err != nil {
			return
		}
		rp.Print()
		if flux, err = problems.FluxByName(rp.Flux, rp.FluxRatio); err != nil {
			return
		}
		qLeft, qRight = rp.QLeft, rp.QRight
		title = rp.Title
		if rp.NumSamples != 0 {
			ms.NumSamples = rp.NumSamples
		}
		if rp.XiLeft != nil && rp.XiRight != nil {
			domain = &riemann.Domain{XiLeft: *rp.XiLeft, XiRight: *rp.XiRight}
		}
	} else {
		var p problems.Problem
		if p, err = problems.Get(ms.ProblemName); err != nil {
			return
		}
		flux, qLeft, qRight = p.Flux, p.QLeft, p.QRight
		title = p.Description
	}
	if !math.IsNaN(ms.XiLeft) && !math.IsNaN(ms.XiRight) {
		domain = &riemann.Domain{XiLeft: ms.XiLeft, XiRight: ms.XiRight}
	}
	fmt.Printf("Scalar Riemann Problem\n%s\n", title)
	fmt.Printf("QLeft = %8.4f, QRight = %8.4f, NumSamples = %d\n", qLeft, qRight, ms.NumSamples)

	sol, err := riemann.ComputeSolution(flux, qLeft, qRight, ms.NumSamples, domain)
	if err != nil {
		return
	}
	if ms.ParallelDegree > 1 {
		// Bit-identical to the sequential scan, queries are partitioned by index
		var eval riemann.Evaluator
		if eval, err = riemann.OsherSolutionParallel(flux, qLeft, qRight, ms.NumSamples, ms.ParallelDegree); err != nil {
			return
		}
		sol.Q = eval(sol.Xi)
	}
	fmt.Printf("Xi Range = [%8.4f,%8.4f]\n", sol.Xi[0], sol.Xi[len(sol.Xi)-1])
	fmt.Printf("Q(XiLeft) = %8.4f, Q(XiRight) = %8.4f\n", sol.Q[0], sol.Q[len(sol.Q)-1])
	if ms.OutputPrefix != "" {
		err = writeSolution(ms.OutputPrefix, sol)
	}
	return
}

// writeSolution writes the solution bundle as two CSV files: the similarity
// solution samples and the (overlay-only) characteristic trace.
func writeSolution(prefix string, sol *riemann.Solution) (err error) {
	write := func(name, header string, x, y []float64) (err error) {
		var f *os.File
		if f, err = os.Create(name); err != nil {
			return
		}
		defer f.Close()
		fmt.Fprintf(f, "%s\n", header)
		for i := range x {
			fmt.Fprintf(f, "%g,%g\n", x[i], y[i])
		}
		fmt.Printf("wrote %s\n", name)
		return
	}
	if err = write(prefix+"_solution.csv", "xi,q", sol.Xi, sol.Q); err != nil {
		return
	}
	err = write(prefix+"_characteristics.csv", "xi_char,q_char", sol.XiChar, sol.QChar)
	return
}
