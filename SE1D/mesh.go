package SE1D

import (
	"fmt"

	"github.com/notargets/gosem/utils"
)

/*
Mesh describes a tensor-product computational grid: per-dimension point
counts, basis choices and quadrature choices. The spectral quantities in
this package read only dimension 0 of a one dimensional mesh; the full
descriptor exists so higher dimensional collaborators can share the type.
*/
type Mesh struct {
	extents     []int
	bases       []BasisType
	quadratures []QuadratureType
}

func NewMesh(extents []int, bases []BasisType, quadratures []QuadratureType) (m Mesh) {
	if len(extents) != len(bases) || len(extents) != len(quadratures) {
		err := fmt.Errorf("mismatched mesh descriptors: %d extents, %d bases, %d quadratures",
			len(extents), len(bases), len(quadratures))
		panic(err)
	}
	m = Mesh{
		extents:     append([]int{}, extents...),
		bases:       append([]BasisType{}, bases...),
		quadratures: append([]QuadratureType{}, quadratures...),
	}
	return
}

func NewMesh1D(numPoints int, b BasisType, q QuadratureType) Mesh {
	return NewMesh([]int{numPoints}, []BasisType{b}, []QuadratureType{q})
}

func (m Mesh) Dimension() int                  { return len(m.extents) }
func (m Mesh) Extents(d int) int               { return m.extents[d] }
func (m Mesh) Basis(d int) BasisType           { return m.bases[d] }
func (m Mesh) Quadrature(d int) QuadratureType { return m.quadratures[d] }

// dispatch1D extracts the runtime tags of a one dimensional mesh. A mesh
// of any other dimension is a configuration error.
func dispatch1D(m Mesh) (b BasisType, q QuadratureType, numPoints int) {
	if m.Dimension() != 1 {
		err := fmt.Errorf("spectral quantities require a one dimensional mesh, got dimension %d", m.Dimension())
		panic(err)
	}
	return m.Basis(0), m.Quadrature(0), m.Extents(0)
}

func (sc *Cache) CollocationPointsForMesh(m Mesh) utils.Vector {
	b, q, numPoints := dispatch1D(m)
	return sc.CollocationPoints(b, q, numPoints)
}

func (sc *Cache) QuadratureWeightsForMesh(m Mesh) utils.Vector {
	b, q, numPoints := dispatch1D(m)
	return sc.QuadratureWeights(b, q, numPoints)
}

func (sc *Cache) DifferentiationMatrixForMesh(m Mesh) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.DifferentiationMatrix(b, q, numPoints)
}

func (sc *Cache) SpectralToGridPointsMatrixForMesh(m Mesh) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.SpectralToGridPointsMatrix(b, q, numPoints)
}

func (sc *Cache) GridPointsToSpectralMatrixForMesh(m Mesh) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.GridPointsToSpectralMatrix(b, q, numPoints)
}

func (sc *Cache) LinearFilterMatrixForMesh(m Mesh) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.LinearFilterMatrix(b, q, numPoints)
}

func (sc *Cache) InterpolationMatrixForMesh(m Mesh, targets []float64) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.InterpolationMatrix(b, q, numPoints, targets)
}

func (sc *Cache) CutoffFilterMatrixForMesh(m Mesh, NCutoff int, frac float64) utils.Matrix {
	b, q, numPoints := dispatch1D(m)
	return sc.CutoffFilterMatrix(b, q, numPoints, NCutoff, frac)
}
