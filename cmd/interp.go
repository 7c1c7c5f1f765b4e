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
	"io/ioutil"
	"math"
	"os"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/notargets/gosem/InputParameters"
	"github.com/notargets/gosem/SE1D"
	"github.com/notargets/gosem/utils"

	"github.com/spf13/cobra"
)

type ModelInterp struct {
	ParamFile string
}

// interpCmd represents the interp command
var interpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate a sampled function from collocation nodes to a fine grid",
	Long: `
Samples a named function at the collocation nodes, interpolates the nodal data
to a target grid through the barycentric interpolation matrix and reports the
pointwise error against the analytic function,

gosem interp `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mi  = &ModelInterp{}
		)
		fmt.Println("interp called")
		if mi.ParamFile, err = cmd.Flags().GetString("paramFile"); err != nil {
			panic(err)
		}
		sp := processInput(mi)
		RunInterp(sp)
	},
}

func init() {
	rootCmd.AddCommand(interpCmd)
	interpCmd.Flags().StringP("paramFile", "I", "", "YAML file for input parameters like:\n\t- Basis\n\t- NumPoints\n\t- Function")
}

func processInput(mi *ModelInterp) (sp *InputParameters.SpectralParameters) {
	var (
		err error
	)
	if len(mi.ParamFile) == 0 {
		err := fmt.Errorf("must supply a parameters file (-I, --paramFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Runge Function"
Basis: legendre
Quadrature: gausslobatto
NumPoints: 12
Function: runge # Can be "sine", "step", "gaussian", "cubic"
TargetPoints: 101
CutoffMode: 0 # Optional: scale modes at and above this index by CutoffFrac
CutoffFrac: 0.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mi.ParamFile); err != nil {
		panic(err)
	}
	sp = &InputParameters.SpectralParameters{}
	if err = sp.Parse(data); err != nil {
		panic(err)
	}
	sp.Print()
	return
}

func RunInterp(sp *InputParameters.SpectralParameters) {
	var (
		b  = SE1D.NewBasisType(sp.Basis)
		q  = SE1D.NewQuadratureType(sp.Quadrature)
		sc = SE1D.NewCache()
		f  = sampleFunction(sp.Function)
	)
	X := sc.CollocationPoints(b, q, sp.NumPoints)
	u := X.Copy().Apply(f)
	if sp.CutoffMode > 0 {
		F := sc.CutoffFilterMatrix(b, q, sp.NumPoints, sp.CutoffMode, sp.CutoffFrac)
		u = utils.NewVector(sp.NumPoints, F.Mul(u.ToMatrix()).DataP)
	}

	targets := sp.Targets
	if len(targets) == 0 {
		np := sp.TargetPoints
		if np == 0 {
			np = 101
		}
		targets = utils.NewVector(np).Linspace(-1, 1).DataP
	}
	IM := sc.InterpolationMatrix(b, q, sp.NumPoints, targets)
	ut := IM.Mul(u.ToMatrix())
	utils.IsNanPanic(ut)

	errs := make([]float64, len(targets))
	for i, xt := range targets {
		errs[i] = math.Abs(ut.DataP[i] - f(xt))
	}
	if len(targets) <= 16 {
		fmt.Printf("%12s %14s %14s %12s\n", "x", "exact", "interpolated", "error")
		for i, xt := range targets {
			fmt.Printf("%12.6f %14.8f %14.8f %12.3e\n", xt, f(xt), ut.DataP[i], errs[i])
		}
	}
	maxErr, _ := stats.Max(errs)
	meanErr, _ := stats.Mean(errs)
	fmt.Printf("interpolated %d nodal values to %d targets\n", sp.NumPoints, len(targets))
	fmt.Printf("max error  = %12.5e\n", maxErr)
	fmt.Printf("mean error = %12.5e\n", meanErr)
}

func sampleFunction(name string) func(float64) float64 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "runge":
		return func(x float64) float64 { return 1. / (1. + 25.*x*x) }
	case "sine":
		return func(x float64) float64 { return math.Sin(math.Pi * x) }
	case "step":
		return func(x float64) float64 {
			if x < 0 {
				return 0
			}
			return 1
		}
	case "gaussian":
		return func(x float64) float64 { return math.Exp(-16. * x * x) }
	case "cubic":
		return func(x float64) float64 { return x*x*x - 0.5*x }
	default:
		err := fmt.Errorf("unable to use function named [%s]", name)
		panic(err)
	}
}
