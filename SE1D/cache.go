package SE1D

import (
	"sync"
	"sync/atomic"

	"github.com/notargets/gosem/utils"
)

type pointsEntry struct {
	once sync.Once
	X, W utils.Vector
}

type vectorEntry struct {
	once sync.Once
	V    utils.Vector
}

type matrixEntry struct {
	once sync.Once
	M    utils.Matrix
}

/*
Cache memoizes the per-(basis, quadrature, numPoints) spectral quantities:
collocation points, quadrature weights, barycentric weights, the
differentiation matrix, the modal transform pair and the linear filter.

Every entry carries its own sync.Once, so concurrent requests for the
same key block until the single computation finishes, while distinct keys
compute independently. Derived quantities pull their prerequisites
through the cache; the dependency chain always runs toward more primitive
entries, so recursive population cannot deadlock. Published entries are
marked read only and are never evicted - callers share the backing
arrays and must copy before modifying.

The zero value is ready to use; NewCache is the conventional constructor.
*/
type Cache struct {
	points   [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]pointsEntry
	bary     [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]vectorEntry
	diff     [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]matrixEntry
	vdm      [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]matrixEntry
	vdmInv   [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]matrixEntry
	filter   [numBasisTypes][numQuadratureTypes][MaxCollocationPoints + 1]matrixEntry
	nCompute int64
}

func NewCache() (sc *Cache) {
	sc = &Cache{}
	return
}

// ComputeCount reports how many generator invocations the cache has run
// so far. Warm keys never recompute, so the count is stable under
// repeated access.
func (sc *Cache) ComputeCount() int64 {
	return atomic.LoadInt64(&sc.nCompute)
}

// CollocationPoints returns the numPoints collocation points on [-1,1]
// in strictly increasing order.
func (sc *Cache) CollocationPoints(b BasisType, q QuadratureType, numPoints int) utils.Vector {
	return sc.cpw(b, q, numPoints).X
}

// QuadratureWeights returns the weights paired with CollocationPoints;
// they are strictly positive and sum to the interval measure 2.
func (sc *Cache) QuadratureWeights(b BasisType, q QuadratureType, numPoints int) utils.Vector {
	return sc.cpw(b, q, numPoints).W
}

// Points and weights come from one generator run and are cached as a
// pair.
func (sc *Cache) cpw(b BasisType, q QuadratureType, numPoints int) *pointsEntry {
	validate(b, q, numPoints)
	e := &sc.points[b][q][numPoints]
	e.once.Do(func() {
		X, W := ruleFor(b, q).CollocationPointsAndWeights(numPoints)
		X.SetReadOnly("CollocationPoints")
		W.SetReadOnly("QuadratureWeights")
		e.X, e.W = X, W
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e
}

func (sc *Cache) barycentricWeights(b BasisType, q QuadratureType, numPoints int) utils.Vector {
	validate(b, q, numPoints)
	e := &sc.bary[b][q][numPoints]
	e.once.Do(func() {
		W := BarycentricWeights(sc.CollocationPoints(b, q, numPoints))
		W.SetReadOnly("BarycentricWeights")
		e.V = W
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e.V
}

// DifferentiationMatrix returns the nodal first derivative operator Dr.
func (sc *Cache) DifferentiationMatrix(b BasisType, q QuadratureType, numPoints int) utils.Matrix {
	validate(b, q, numPoints)
	e := &sc.diff[b][q][numPoints]
	e.once.Do(func() {
		Dr := DifferentiationMatrix1D(
			sc.CollocationPoints(b, q, numPoints),
			sc.barycentricWeights(b, q, numPoints))
		Dr.SetReadOnly("DifferentiationMatrix")
		e.M = Dr
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e.M
}

// SpectralToGridPointsMatrix returns the modal-to-nodal transform V with
// V(i,j) = Phi_j(x_i).
func (sc *Cache) SpectralToGridPointsMatrix(b BasisType, q QuadratureType, numPoints int) utils.Matrix {
	validate(b, q, numPoints)
	e := &sc.vdm[b][q][numPoints]
	e.once.Do(func() {
		V := Vandermonde1D(ruleFor(b, q), sc.CollocationPoints(b, q, numPoints))
		V.SetReadOnly("SpectralToGridPointsMatrix")
		e.M = V
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e.M
}

// GridPointsToSpectralMatrix returns the nodal-to-modal transform, the
// inverse of SpectralToGridPointsMatrix.
func (sc *Cache) GridPointsToSpectralMatrix(b BasisType, q QuadratureType, numPoints int) utils.Matrix {
	validate(b, q, numPoints)
	e := &sc.vdmInv[b][q][numPoints]
	e.once.Do(func() {
		var (
			V    = sc.SpectralToGridPointsMatrix(b, q, numPoints)
			Vinv utils.Matrix
			err  error
		)
		if q == Gauss {
			// Gauss quadrature is exact for basis function products, so
			// orthogonality yields the inverse without a linear solve
			Vinv = gaussModalInverse(ruleFor(b, q), V, sc.QuadratureWeights(b, q, numPoints))
		} else {
			if Vinv, err = V.Inverse(); err != nil {
				panic(err)
			}
		}
		Vinv.SetReadOnly("GridPointsToSpectralMatrix")
		e.M = Vinv
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e.M
}

// LinearFilterMatrix returns the projection of nodal data onto its
// lowest min(2, numPoints) modes.
func (sc *Cache) LinearFilterMatrix(b BasisType, q QuadratureType, numPoints int) utils.Matrix {
	validate(b, q, numPoints)
	e := &sc.filter[b][q][numPoints]
	e.once.Do(func() {
		FL := LinearFilter1D(
			sc.SpectralToGridPointsMatrix(b, q, numPoints),
			sc.GridPointsToSpectralMatrix(b, q, numPoints))
		FL.SetReadOnly("LinearFilterMatrix")
		e.M = FL
		atomic.AddInt64(&sc.nCompute, 1)
	})
	return e.M
}

// InterpolationMatrix maps nodal values to the given target points. The
// result is not memoized since targets are caller data, but the cached
// nodes and barycentric weights make construction cheap.
func (sc *Cache) InterpolationMatrix(b BasisType, q QuadratureType, numPoints int, targets []float64) utils.Matrix {
	return InterpolationMatrix1D(
		sc.CollocationPoints(b, q, numPoints),
		sc.barycentricWeights(b, q, numPoints),
		targets)
}

// CutoffFilterMatrix builds the modal cutoff filter for the given cutoff
// mode and fraction. Not memoized - it is parameterized beyond the cache
// key - but both transforms it needs are.
func (sc *Cache) CutoffFilterMatrix(b BasisType, q QuadratureType, numPoints, NCutoff int, frac float64) utils.Matrix {
	return CutoffFilter1D(
		sc.SpectralToGridPointsMatrix(b, q, numPoints),
		sc.GridPointsToSpectralMatrix(b, q, numPoints),
		NCutoff, frac)
}
