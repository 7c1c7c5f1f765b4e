package SE1D

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gosem/utils"

	"github.com/stretchr/testify/assert"
)

func TestCollocationPointsAndWeights(t *testing.T) {
	var (
		sc  = NewCache()
		tol = 1e-12
	)
	{ // Gauss rules reproduce the classical tables
		X := sc.CollocationPoints(Legendre, Gauss, 1)
		W := sc.QuadratureWeights(Legendre, Gauss, 1)
		assert.InDeltaSlicef(t, []float64{0}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{2}, W.DataP, tol, "")

		X = sc.CollocationPoints(Legendre, Gauss, 2)
		W = sc.QuadratureWeights(Legendre, Gauss, 2)
		sr3 := 1. / math.Sqrt(3)
		assert.InDeltaSlicef(t, []float64{-sr3, sr3}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{1, 1}, W.DataP, tol, "")

		X = sc.CollocationPoints(Legendre, Gauss, 3)
		W = sc.QuadratureWeights(Legendre, Gauss, 3)
		sr35 := math.Sqrt(3. / 5.)
		assert.InDeltaSlicef(t, []float64{-sr35, 0, sr35}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{5. / 9., 8. / 9., 5. / 9.}, W.DataP, tol, "")
	}
	{ // GaussLobatto rules include the endpoints
		X := sc.CollocationPoints(Legendre, GaussLobatto, 2)
		W := sc.QuadratureWeights(Legendre, GaussLobatto, 2)
		assert.InDeltaSlicef(t, []float64{-1, 1}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{1, 1}, W.DataP, tol, "")

		X = sc.CollocationPoints(Legendre, GaussLobatto, 3)
		W = sc.QuadratureWeights(Legendre, GaussLobatto, 3)
		assert.InDeltaSlicef(t, []float64{-1, 0, 1}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{1. / 3., 4. / 3., 1. / 3.}, W.DataP, tol, "")

		// The four point rule has the closed form {±1, ±1/√5} with
		// weights {1/6, 5/6}
		X = sc.CollocationPoints(Legendre, GaussLobatto, 4)
		W = sc.QuadratureWeights(Legendre, GaussLobatto, 4)
		sr5 := 1. / math.Sqrt(5)
		assert.InDeltaSlicef(t, []float64{-1, -sr5, sr5, 1}, X.DataP, tol, "")
		assert.InDeltaSlicef(t, []float64{1. / 6., 5. / 6., 5. / 6., 1. / 6.}, W.DataP, tol, "")
	}
	{ // Every supported size: increasing nodes, positive weights, total
		// measure 2
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			for n := q.MinimumPoints(); n <= Legendre.MaximumPoints(); n++ {
				X := sc.CollocationPoints(Legendre, q, n)
				W := sc.QuadratureWeights(Legendre, q, n)
				for i := 1; i < n; i++ {
					assert.Truef(t, X.DataP[i] > X.DataP[i-1],
						"%v nodes must increase at n=%d", q, n)
				}
				assert.Truef(t, W.Min() > 0,
					"%v weights at n=%d must be positive, min = %g", q, n, W.Min())
				assert.InDeltaf(t, 2., W.Sum(), tol,
					"%v weights at n=%d sum to %g", q, n, W.Sum())
			}
		}
	}
}

func TestBarycentricWeights(t *testing.T) {
	// Hand checked weights for the node set {-1, 0, 1}:
	// w_0 = 1/((-1-0)(-1-1)) = 1/2
	// w_1 = 1/((0+1)(0-1))   = -1
	// w_2 = 1/((1+1)(1-0))   = 1/2
	W := BarycentricWeights(utils.NewVector(3, []float64{-1, 0, 1}))
	assert.InDeltaSlicef(t, []float64{0.5, -1, 0.5}, W.DataP, 1e-15, "")

	// Lobatto nodes inherit the grid symmetry up to sign
	sc := NewCache()
	X := sc.CollocationPoints(Legendre, GaussLobatto, 5)
	Wb := BarycentricWeights(X)
	for i := 0; i < 5; i++ {
		j := 4 - i
		assert.InDeltaf(t, math.Abs(Wb.DataP[i]), math.Abs(Wb.DataP[j]), 1e-13,
			"|w_%d| = %g, |w_%d| = %g", i, Wb.DataP[i], j, Wb.DataP[j])
	}
}

func TestDifferentiationMatrix(t *testing.T) {
	var (
		sc = NewCache()
	)
	{ // Cubic data on four Lobatto points differentiates exactly:
		// d/dx x^3 = 3x^2 to roundoff
		n := 4
		Dr := sc.DifferentiationMatrix(Legendre, GaussLobatto, n)
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		u := X.Copy().POW(3)
		du := Dr.Mul(u.ToMatrix())
		for i, xi := range X.DataP {
			assert.InDeltaf(t, 3*xi*xi, du.DataP[i], 1e-12,
				"du[%d] = %g, want %g", i, du.DataP[i], 3*xi*xi)
		}
		fmt.Printf("Dr = \n%v\n", mat.Formatted(Dr, mat.Squeeze()))
	}
	{ // Rows sum to zero, so constants are annihilated by construction
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			for _, n := range []int{2, 5, 12, 20} {
				Dr := sc.DifferentiationMatrix(Legendre, q, n)
				rs := Dr.SumRows()
				for i := 0; i < n; i++ {
					assert.InDeltaf(t, 0., rs.AtVec(i), 1e-11,
						"%v n=%d row %d sums to %g", q, n, i, rs.AtVec(i))
				}
			}
		}
	}
	{ // Exact for every representable monomial degree
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			n := 7
			Dr := sc.DifferentiationMatrix(Legendre, q, n)
			X := sc.CollocationPoints(Legendre, q, n)
			for p := 1; p < n; p++ {
				u := X.Copy().POW(p)
				du := Dr.Mul(u.ToMatrix())
				for i, xi := range X.DataP {
					want := float64(p) * utils.POW(xi, p-1)
					assert.InDeltaf(t, want, du.DataP[i], 1e-10,
						"%v d/dx x^%d at node %d", q, p, i)
				}
			}
		}
	}
}

func TestModalTransforms(t *testing.T) {
	var (
		sc  = NewCache()
		tol = 1e-12
	)
	{ // V columns tabulate the basis functions at the nodes
		n := 5
		V := sc.SpectralToGridPointsMatrix(Legendre, GaussLobatto, n)
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		for j := 0; j < n; j++ {
			col := V.Col(j)
			for i, xi := range X.DataP {
				assert.InDeltaf(t, LegendreP(j, xi), col.AtVec(i), tol,
					"V[%d,%d]", i, j)
			}
		}
	}
	{ // Vinv * V = I for all supported sizes, both quadratures
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			for n := q.MinimumPoints(); n <= Legendre.MaximumPoints(); n++ {
				V := sc.SpectralToGridPointsMatrix(Legendre, q, n)
				Vinv := sc.GridPointsToSpectralMatrix(Legendre, q, n)
				I := Vinv.Mul(V)
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						var want float64
						if i == j {
							want = 1.
						}
						assert.InDeltaf(t, want, I.At(i, j), 1e-9,
							"%v n=%d I[%d,%d] = %g", q, n, i, j, I.At(i, j))
					}
				}
			}
		}
	}
	{ // The Gauss inverse from orthogonality matches the factorized
		// inverse
		for _, n := range []int{1, 4, 9} {
			Vinv := sc.GridPointsToSpectralMatrix(Legendre, Gauss, n)
			V := sc.SpectralToGridPointsMatrix(Legendre, Gauss, n)
			numeric, err := V.Inverse()
			assert.Nil(t, err)
			assert.InDeltaSlicef(t, numeric.DataP, Vinv.DataP, 1e-10, "")
		}
	}
	{ // Round trip: modal -> nodal -> modal returns the coefficients
		n := 6
		V := sc.SpectralToGridPointsMatrix(Legendre, Gauss, n)
		Vinv := sc.GridPointsToSpectralMatrix(Legendre, Gauss, n)
		chat := utils.NewVector(n, []float64{1, -0.5, 0.25, 0, 2, -1})
		u := V.Mul(chat.ToMatrix())
		back := Vinv.Mul(u)
		assert.InDeltaSlicef(t, chat.DataP, back.DataP, tol, "")
	}
}

func TestLinearFilter(t *testing.T) {
	var (
		sc  = NewCache()
		tol = 1e-12
	)
	{ // Linear nodal data passes through unchanged
		n := 6
		FL := sc.LinearFilterMatrix(Legendre, GaussLobatto, n)
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		u := X.Copy().Scale(-2).AddScalar(3) // u = 3 - 2x
		fu := FL.Mul(u.ToMatrix())
		assert.InDeltaSlicef(t, u.DataP, fu.DataP, tol, "")
	}
	{ // Pure quadratic mode content is removed entirely
		n := 5
		FL := sc.LinearFilterMatrix(Legendre, Gauss, n)
		X := sc.CollocationPoints(Legendre, Gauss, n)
		u := make([]float64, n)
		for i, xi := range X.DataP {
			u[i] = LegendreP(2, xi)
		}
		fu := FL.Mul(utils.NewVector(n, u).ToMatrix())
		for i := range fu.DataP {
			assert.InDeltaf(t, 0., fu.DataP[i], tol,
				"filtered P_2 residual at node %d = %g", i, fu.DataP[i])
		}
	}
	{ // The filter is an idempotent projector: F*F = F
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			n := 8
			FL := sc.LinearFilterMatrix(Legendre, q, n)
			FF := FL.Mul(FL)
			assert.InDeltaSlicef(t, FL.DataP, FF.DataP, 1e-11, "")
		}
	}
	{ // A single point rule keeps only the constant mode
		FL := sc.LinearFilterMatrix(Legendre, Gauss, 1)
		assert.InDeltaf(t, 1., FL.At(0, 0), tol,
			"FL[0,0] = %g", FL.At(0, 0))
	}
}

func TestCutoffFilter(t *testing.T) {
	var (
		sc  = NewCache()
		tol = 1e-11
	)
	{ // frac = 1 keeps every mode: the filter is the identity
		n := 7
		F := sc.CutoffFilterMatrix(Legendre, GaussLobatto, n, 3, 1.)
		I := utils.NewDiagMatrix(n, nil, 1.)
		assert.InDeltaSlicef(t, I.DataP, F.DataP, tol, "")
	}
	{ // Cutoff at mode 2 with frac = 0 reproduces the linear filter
		for _, q := range []QuadratureType{Gauss, GaussLobatto} {
			n := 6
			F := sc.CutoffFilterMatrix(Legendre, q, n, 2, 0.)
			FL := sc.LinearFilterMatrix(Legendre, q, n)
			assert.InDeltaSlicef(t, FL.DataP, F.DataP, tol, "")
		}
	}
	{ // Clipping the top mode removes P_{n-1} content and keeps the rest
		n := 5
		F := sc.CutoffFilterMatrix(Legendre, GaussLobatto, n, n-1, 0.)
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		utop := make([]float64, n)
		ulow := make([]float64, n)
		for i, xi := range X.DataP {
			utop[i] = LegendreP(n-1, xi)
			ulow[i] = LegendreP(n-2, xi)
		}
		ftop := F.Mul(utils.NewVector(n, utop).ToMatrix())
		flow := F.Mul(utils.NewVector(n, ulow).ToMatrix())
		for i := 0; i < n; i++ {
			assert.InDeltaf(t, 0., ftop.DataP[i], tol,
				"clipped top mode at node %d = %g", i, ftop.DataP[i])
			assert.InDeltaf(t, ulow[i], flow.DataP[i], tol,
				"kept mode at node %d = %g", i, flow.DataP[i])
		}
	}
}

func TestInterpolationMatrix(t *testing.T) {
	var (
		sc  = NewCache()
		tol = 1e-12
	)
	{ // Interpolating a grid to itself is exactly the identity
		n := 6
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		IM := sc.InterpolationMatrix(Legendre, GaussLobatto, n, X.DataP)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				var want float64
				if i == j {
					want = 1.
				}
				assert.Equal(t, want, IM.At(i, j), "IM[%d,%d]", i, j)
			}
		}
	}
	{ // Rows always sum to one, so constants are preserved exactly
		n := 5
		targets := utils.NewVector(11).Linspace(-1, 1)
		IM := sc.InterpolationMatrix(Legendre, Gauss, n, targets.DataP)
		rs := IM.SumRows()
		for i := 0; i < targets.Len(); i++ {
			assert.InDeltaf(t, 1., rs.AtVec(i), tol,
				"row %d sums to %g", i, rs.AtVec(i))
		}
	}
	{ // Degree n-1 data interpolates exactly to arbitrary targets
		n := 5
		f := func(x float64) float64 {
			return 2*utils.POW(x, 4) - utils.POW(x, 2) + 0.5*x - 1
		}
		X := sc.CollocationPoints(Legendre, Gauss, n)
		u := X.Copy().Apply(f)
		targets := utils.NewVector(21).Linspace(-1, 1)
		IM := sc.InterpolationMatrix(Legendre, Gauss, n, targets.DataP)
		ut := IM.Mul(u.ToMatrix())
		for i, xt := range targets.DataP {
			assert.InDeltaf(t, f(xt), ut.DataP[i], tol,
				"interpolant at %g = %g, want %g", xt, ut.DataP[i], f(xt))
		}
	}
	{ // A target that lands on a node gets a one hot row even among off
		// node targets
		n := 4
		X := sc.CollocationPoints(Legendre, GaussLobatto, n)
		targets := []float64{-0.9, X.DataP[2], 0.33}
		IM := sc.InterpolationMatrix(Legendre, GaussLobatto, n, targets)
		assert.Equal(t, 1., IM.At(1, 2))
		assert.Equal(t, 0., IM.At(1, 0))
		assert.Equal(t, 0., IM.At(1, 1))
		assert.Equal(t, 0., IM.At(1, 3))
	}
}
