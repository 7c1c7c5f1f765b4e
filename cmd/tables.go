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

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gosem/SE1D"

	"github.com/spf13/cobra"
)

type ModelTables struct {
	Basis      string
	Quadrature string
	NumPoints  int
	All        bool
}

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the operator set for one basis, quadrature and point count",
	Long: `
Prints the collocation points, quadrature weights and the dense operator
matrices for a single basis / quadrature / point count combination,

gosem tables `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			mt  = &ModelTables{}
		)
		fmt.Println("tables called")
		if mt.Basis, err = cmd.Flags().GetString("basis"); err != nil {
			panic(err)
		}
		if mt.Quadrature, err = cmd.Flags().GetString("quadrature"); err != nil {
			panic(err)
		}
		mt.NumPoints, _ = cmd.Flags().GetInt("numPoints")
		mt.All, _ = cmd.Flags().GetBool("all")
		RunTables(mt)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().StringP("basis", "b", "legendre", "polynomial basis for the operators")
	tablesCmd.Flags().StringP("quadrature", "q", "gausslobatto", "quadrature rule: gauss or gausslobatto")
	tablesCmd.Flags().IntP("numPoints", "n", 8, "number of collocation points")
	tablesCmd.Flags().BoolP("all", "a", false, "also print the modal transform and filter matrices")
}

func RunTables(mt *ModelTables) {
	var (
		b  = SE1D.NewBasisType(mt.Basis)
		q  = SE1D.NewQuadratureType(mt.Quadrature)
		sc = SE1D.NewCache()
	)
	m := SE1D.NewMesh1D(mt.NumPoints, b, q)
	X := sc.CollocationPointsForMesh(m)
	W := sc.QuadratureWeightsForMesh(m)
	fmt.Printf("%v quadrature on the %v basis, %d points\n", q, b, mt.NumPoints)
	fmt.Printf("X = \n%v\n", mat.Formatted(X.ToMatrix().Transpose(), mat.Squeeze()))
	fmt.Printf("W = \n%v\n", mat.Formatted(W.ToMatrix().Transpose(), mat.Squeeze()))
	fmt.Printf("sum(W) = %8.5f\n", W.Sum())

	Dr := sc.DifferentiationMatrixForMesh(m)
	fmt.Printf("Dr = \n%v\n", mat.Formatted(Dr, mat.Squeeze()))

	if mt.All {
		V := sc.SpectralToGridPointsMatrixForMesh(m)
		Vinv := sc.GridPointsToSpectralMatrixForMesh(m)
		FL := sc.LinearFilterMatrixForMesh(m)
		fmt.Printf("V = \n%v\n", mat.Formatted(V, mat.Squeeze()))
		fmt.Printf("Vinv = \n%v\n", mat.Formatted(Vinv, mat.Squeeze()))
		fmt.Printf("FL = \n%v\n", mat.Formatted(FL, mat.Squeeze()))
	}
}
