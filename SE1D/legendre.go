package SE1D

import (
	"github.com/notargets/gosem/utils"
)

// LegendreP evaluates the classical (unnormalized) Legendre polynomial
// P_j at r by the three term recurrence
//
//	(k+1) P_{k+1}(r) = (2k+1) r P_k(r) - k P_{k-1}(r)
//
// so that P_j(1) = 1 for all j.
func LegendreP(j int, r float64) (p float64) {
	p = 1.
	if j == 0 {
		return
	}
	var pm1 float64
	pm1, p = p, r
	for k := 1; k < j; k++ {
		fk := float64(k)
		pm1, p = p, ((2.*fk+1.)*r*p-fk*pm1)/(fk+1.)
	}
	return
}

/*
legendreBasis supplies the modal basis shared by both Legendre rules. The
normalization square is the L2 norm of P_j on [-1,1]:

	integral P_j^2 dx = 2/(2j+1)
*/
type legendreBasis struct{}

func (legendreBasis) BasisFunction(j int, r float64) float64 {
	return LegendreP(j, r)
}

func (legendreBasis) BasisNormalizationSquare(j int) float64 {
	return 2. / (2.*float64(j) + 1.)
}

// legendreGauss: interior-only nodes at the roots of P_numPoints.
type legendreGauss struct {
	legendreBasis
}

func (legendreGauss) CollocationPointsAndWeights(numPoints int) (X, W utils.Vector) {
	return JacobiGQ(0, 0, numPoints-1)
}

// legendreGaussLobatto: both endpoints included, interior nodes at the
// extrema of P_{numPoints-1}.
type legendreGaussLobatto struct {
	legendreBasis
}

func (legendreGaussLobatto) CollocationPointsAndWeights(numPoints int) (X, W utils.Vector) {
	var (
		N = numPoints - 1
	)
	X = JacobiGL(0, 0, N)
	// w_i = 2/(N(N+1)) / P_N(x_i)^2
	w := make([]float64, numPoints)
	fac := 2. / (float64(N) * float64(N+1))
	for i, xi := range X.DataP {
		w[i] = fac / utils.POW(LegendreP(N, xi), 2)
	}
	W = utils.NewVector(numPoints, w)
	return
}
