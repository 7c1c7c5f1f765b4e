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

	"github.com/montanaflynn/stats"
	"github.com/pkg/profile"

	"github.com/notargets/gosem/SE1D"
	"github.com/notargets/gosem/utils"

	"github.com/spf13/cobra"
)

type ModelBench struct {
	Basis      string
	Quadrature string
	MaxPoints  int
	Iterations int
	Profile    string
	Counters   bool
}

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time operator construction and application across point counts",
	Long: `
Times the first build of the operator set and repeated applications of the
derivative and filter matrices for each point count up to the maximum,

gosem bench `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mb  = &ModelBench{}
		)
		fmt.Println("bench called")
		if mb.Basis, err = cmd.Flags().GetString("basis"); err != nil {
			panic(err)
		}
		if mb.Quadrature, err = cmd.Flags().GetString("quadrature"); err != nil {
			panic(err)
		}
		mb.MaxPoints, _ = cmd.Flags().GetInt("maxPoints")
		mb.Iterations, _ = cmd.Flags().GetInt("iterations")
		mb.Profile, _ = cmd.Flags().GetString("profile")
		mb.Counters, _ = cmd.Flags().GetBool("counters")
		RunBench(mb)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringP("basis", "b", "legendre", "polynomial basis for the operators")
	benchCmd.Flags().StringP("quadrature", "q", "gausslobatto", "quadrature rule: gauss or gausslobatto")
	benchCmd.Flags().IntP("maxPoints", "m", SE1D.MaxCollocationPoints, "largest point count to time")
	benchCmd.Flags().IntP("iterations", "i", 1000, "operator applications per point count")
	benchCmd.Flags().StringP("profile", "p", "", "write a profile to the current directory: cpu or mem")
	benchCmd.Flags().BoolP("counters", "c", false, "report hardware counters for the largest point count (linux)")
}

func RunBench(mb *ModelBench) {
	switch mb.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		b = SE1D.NewBasisType(mb.Basis)
		q = SE1D.NewQuadratureType(mb.Quadrature)
		f = func(x float64) float64 { return math.Sin(math.Pi * x) }
	)
	fmt.Printf("%4s %12s %12s %12s %12s\n", "n", "build (s)", "mean (s)", "stddev (s)", "p99 (s)")
	for n := q.MinimumPoints(); n <= mb.MaxPoints; n++ {
		// Fresh cache per size so the first build cost stays visible
		sc := SE1D.NewCache()
		start := time.Now()
		Dr := sc.DifferentiationMatrix(b, q, n)
		FL := sc.LinearFilterMatrix(b, q, n)
		build := time.Since(start).Seconds()

		X := sc.CollocationPoints(b, q, n)
		U := X.Copy().Apply(f).ToMatrix()
		dU := utils.NewMatrix(n, 1)
		fU := utils.NewMatrix(n, 1)
		samples := make([]float64, mb.Iterations)
		for k := 0; k < mb.Iterations; k++ {
			t0 := time.Now()
			Dr.Mul(U, dU)
			FL.Mul(U, fU)
			samples[k] = time.Since(t0).Seconds()
		}
		mean, _ := stats.Mean(samples)
		sd, _ := stats.StandardDeviation(samples)
		p99, _ := stats.Percentile(samples, 99)
		fmt.Printf("%4d %12.3e %12.3e %12.3e %12.3e\n", n, build, mean, sd, p99)
	}
	fmt.Println(utils.GetMemUsage())

	if mb.Counters {
		var (
			n  = mb.MaxPoints
			sc = SE1D.NewCache()
		)
		Dr := sc.DifferentiationMatrix(b, q, n)
		X := sc.CollocationPoints(b, q, n)
		U := X.Copy().Apply(f).ToMatrix()
		dU := utils.NewMatrix(n, 1)
		fmt.Printf("hardware counters for %d applications at n=%d\n", mb.Iterations, n)
		hardwareCounters(func() {
			for k := 0; k < mb.Iterations; k++ {
				Dr.Mul(U, dU)
			}
		})
	}
}
