package SE1D

import (
	"math"

	"github.com/notargets/gosem/utils"
)

/*
BarycentricWeights computes the weights of the barycentric form of the
Lagrange interpolating polynomial through the nodes X, by incremental
pairwise difference products:

	w_j = 1 / prod_{k!=j} (x_j - x_k)

Any strictly increasing node set is valid input.
*/
func BarycentricWeights(X utils.Vector) (W utils.Vector) {
	var (
		n = X.Len()
		x = X.DataP
		w = utils.ConstArray(1., n)
	)
	for j := 1; j < n; j++ {
		for k := 0; k < j; k++ {
			w[k] *= x[k] - x[j]
			w[j] *= x[j] - x[k]
		}
	}
	for i := range w {
		w[i] = 1. / w[i]
	}
	W = utils.NewVector(n, w)
	return
}

/*
DifferentiationMatrix1D builds the first derivative operator on the nodes
X from their barycentric weights Wb:

	D(i,j) = (w_j/w_i) / (x_i - x_j)   for i != j
	D(i,i) = -sum_{j!=i} D(i,j)

The diagonal by negative row sum makes each row annihilate constants
exactly, which keeps the operator exact for all representable
polynomials.
*/
func DifferentiationMatrix1D(X, Wb utils.Vector) (Dr utils.Matrix) {
	var (
		n  = X.Len()
		x  = X.DataP
		wb = Wb.DataP
	)
	Dr = utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			val := wb[j] / (wb[i] * (x[i] - x[j]))
			Dr.DataP[i*n+j] = val
			sum += val
		}
		Dr.DataP[i*n+i] = -sum
	}
	return
}

// Vandermonde1D builds the modal-to-nodal matrix V(i,j) = Phi_j(x_i) for
// the basis functions of rule r on the nodes X.
func Vandermonde1D(r quadratureRule, X utils.Vector) (V utils.Matrix) {
	var (
		n   = X.Len()
		col = make([]float64, n)
	)
	V = utils.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		for i, xi := range X.DataP {
			col[i] = r.BasisFunction(j, xi)
		}
		V.SetCol(j, col)
	}
	return
}

/*
gaussModalInverse is the nodal-to-modal matrix when the quadrature is
exact for products of basis functions (Gauss). Orthogonality gives the
inverse without a linear solve:

	Vinv(i,j) = V(j,i) w_j / gamma_i

where gamma_i is the basis normalization square.
*/
func gaussModalInverse(r quadratureRule, V utils.Matrix, W utils.Vector) (Vinv utils.Matrix) {
	Vinv = V.Transpose()
	var (
		n, _ = Vinv.Dims()
		w    = W.DataP
	)
	for i := 0; i < n; i++ {
		gamma := r.BasisNormalizationSquare(i)
		for j := 0; j < n; j++ {
			Vinv.DataP[i*n+j] *= w[j] / gamma
		}
	}
	return
}

// LinearFilter1D projects nodal data onto the first min(2, n) modes:
// constants for n = 1, linear functions otherwise.
func LinearFilter1D(V, Vinv utils.Matrix) (FL utils.Matrix) {
	var (
		n, _ = V.Dims()
		k    = 2
	)
	if n < k {
		k = n
	}
	FL = V.Slice(0, n, 0, k).Mul(Vinv.Slice(0, k, 0, n))
	return
}

/*
CutoffFilter1D scales modal content at and above mode NCutoff by frac,
leaving lower modes alone:

	F = V * diag(1,...,1,frac,...,frac) * Vinv

NCutoff is inclusive, so to clip only the top mode of an n point operator
pass NCutoff = n-1. frac = 0 removes the clipped modes entirely.
*/
func CutoffFilter1D(V, Vinv utils.Matrix, NCutoff int, frac float64) (F utils.Matrix) {
	var (
		n, _ = V.Dims()
		data = make([]float64, n)
	)
	for i := range data {
		if i >= NCutoff {
			data[i] = frac
		} else {
			data[i] = 1.
		}
	}
	F = V.Mul(utils.NewDiagMatrix(n, data)).Mul(Vinv)
	return
}

/*
InterpolationMatrix1D maps nodal values on the nodes X to values at the
target points, one row per target. A target within roundoff of a node
gets a one-hot row so that interpolation from a grid to itself is exactly
the identity. All other rows are barycentric, normalized by their own sum
to preserve constants exactly.
*/
func InterpolationMatrix1D(X, Wb utils.Vector, targets []float64) (IM utils.Matrix) {
	var (
		n   = X.Len()
		x   = X.DataP
		wb  = Wb.DataP
		row = make([]float64, n)
	)
	IM = utils.NewMatrix(len(targets), n)
	for k, xt := range targets {
		var (
			rowHasMatch bool
			sum         float64
		)
		for j := 0; j < n; j++ {
			row[j] = 0.
			if math.Abs(xt-x[j]) < utils.NODETOL {
				row[j] = 1.
				rowHasMatch = true
			}
		}
		if !rowHasMatch {
			for j := 0; j < n; j++ {
				row[j] = wb[j] / (xt - x[j])
				sum += row[j]
			}
			for j := 0; j < n; j++ {
				row[j] /= sum
			}
		}
		IM.SetRow(k, row)
	}
	return
}
