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
	"time"

	"github.com/notargets/gosem/InputParameters"
	"github.com/notargets/gosem/SE1D"
	"github.com/notargets/gosem/utils"

	"github.com/spf13/cobra"
)

type ModelPlot struct {
	Basis      string
	Quadrature string
	NumPoints  int
	Function   string
	Filtered   bool
	PM         *InputParameters.PlotMeta
}

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a sampled function, its interpolant and the collocation nodes",
	Long: `
Displays the analytic function, its nodal interpolant on a fine grid and the
collocation node locations, optionally with the mode filtered interpolant,

gosem plot `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mp  = &ModelPlot{PM: &InputParameters.PlotMeta{
				Graph:  true,
				Width:  1920,
				Height: 1280,
			}}
		)
		fmt.Println("plot called")
		if mp.Basis, err = cmd.Flags().GetString("basis"); err != nil {
			panic(err)
		}
		if mp.Quadrature, err = cmd.Flags().GetString("quadrature"); err != nil {
			panic(err)
		}
		mp.NumPoints, _ = cmd.Flags().GetInt("numPoints")
		mp.Function, _ = cmd.Flags().GetString("function")
		mp.Filtered, _ = cmd.Flags().GetBool("filtered")
		dr, _ := cmd.Flags().GetInt("delay")
		mp.PM.FrameTime = time.Duration(dr) * time.Millisecond
		hold, _ := cmd.Flags().GetInt("hold")
		mp.PM.HoldTime = time.Duration(hold) * time.Millisecond
		RunPlot(mp)
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringP("basis", "b", "legendre", "polynomial basis for the operators")
	plotCmd.Flags().StringP("quadrature", "q", "gausslobatto", "quadrature rule: gauss or gausslobatto")
	plotCmd.Flags().IntP("numPoints", "n", 12, "number of collocation points")
	plotCmd.Flags().StringP("function", "f", "runge", "function to sample: runge, sine, step, gaussian, cubic")
	plotCmd.Flags().BoolP("filtered", "F", false, "also plot the linear mode filtered interpolant")
	plotCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	plotCmd.Flags().IntP("hold", "H", 10000, "milliseconds to hold the plot window open")
}

func RunPlot(mp *ModelPlot) {
	var (
		b  = SE1D.NewBasisType(mp.Basis)
		q  = SE1D.NewQuadratureType(mp.Quadrature)
		sc = SE1D.NewCache()
		f  = sampleFunction(mp.Function)
	)
	X := sc.CollocationPoints(b, q, mp.NumPoints)
	u := X.Copy().Apply(f)
	fine := utils.NewVector(301).Linspace(-1, 1)
	IM := sc.InterpolationMatrix(b, q, mp.NumPoints, fine.DataP)
	ut := IM.Mul(u.ToMatrix())
	exact := fine.Copy().Apply(f)

	fmin := math.Min(ut.Min(), exact.Min())
	fmax := math.Max(ut.Max(), exact.Max())
	pad := 0.1 * (fmax - fmin)
	if pad == 0 {
		pad = 0.1
	}
	lc := utils.NewLineChart(mp.PM.Width, mp.PM.Height, -1, 1, fmin-pad, fmax+pad)
	lc.Plot(mp.PM.FrameTime, fine.DataP, exact.DataP, -0.7, mp.Function)
	lc.Plot(mp.PM.FrameTime, fine.DataP, ut.DataP, 0.7, "interpolant")
	if mp.Filtered {
		FL := sc.LinearFilterMatrix(b, q, mp.NumPoints)
		uf := FL.Mul(u.ToMatrix())
		utf := IM.Mul(uf)
		lc.Plot(mp.PM.FrameTime, fine.DataP, utf.DataP, 0.0, "filtered")
	}
	lc.PlotMarkers(X.DataP, u.DataP, 1.0, "nodes")
	utils.SleepFor(int(mp.PM.HoldTime.Milliseconds()))
}
