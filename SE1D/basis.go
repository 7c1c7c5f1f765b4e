package SE1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gosem/utils"
)

const (
	// MaxCollocationPoints bounds the cache tables. Raise it here if a
	// run needs larger 1D operators.
	MaxCollocationPoints = 20

	numBasisTypes      = 1
	numQuadratureTypes = 2
)

type BasisType uint8

const (
	Legendre BasisType = iota
)

var (
	BasisNames = map[string]BasisType{
		"legendre": Legendre,
	}
	BasisNamesRev = map[BasisType]string{
		Legendre: "Legendre",
	}
)

func NewBasisType(label string) (bt BasisType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if bt, ok = BasisNames[label]; !ok {
		err = fmt.Errorf("unable to use basis named [%s]", label)
		panic(err)
	}
	return
}

func (bt BasisType) String() (txt string) {
	var (
		ok bool
	)
	if txt, ok = BasisNamesRev[bt]; !ok {
		txt = fmt.Sprintf("unknown basis [%d]", uint8(bt))
	}
	return
}

// MaximumPoints is the largest collocation point count representable for
// polynomials of this basis.
func (bt BasisType) MaximumPoints() int {
	return MaxCollocationPoints
}

type QuadratureType uint8

const (
	Gauss QuadratureType = iota
	GaussLobatto
)

var (
	QuadratureNames = map[string]QuadratureType{
		"gauss":         Gauss,
		"gausslobatto":  GaussLobatto,
		"gauss lobatto": GaussLobatto,
	}
	QuadratureNamesRev = map[QuadratureType]string{
		Gauss:        "Gauss",
		GaussLobatto: "GaussLobatto",
	}
)

func NewQuadratureType(label string) (qt QuadratureType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if qt, ok = QuadratureNames[label]; !ok {
		err = fmt.Errorf("unable to use quadrature named [%s]", label)
		panic(err)
	}
	return
}

func (qt QuadratureType) String() (txt string) {
	var (
		ok bool
	)
	if txt, ok = QuadratureNamesRev[qt]; !ok {
		txt = fmt.Sprintf("unknown quadrature [%d]", uint8(qt))
	}
	return
}

// MinimumPoints is the smallest point count the quadrature can produce.
// GaussLobatto includes both interval endpoints, so it needs two.
func (qt QuadratureType) MinimumPoints() (np int) {
	switch qt {
	case Gauss:
		np = 1
	case GaussLobatto:
		np = 2
	default:
		err := fmt.Errorf("missing minimum points for quadrature %v", qt)
		panic(err)
	}
	return
}

// RangeError reports a collocation point count outside the supported
// range for a basis and quadrature pair. It is raised via panic since an
// out of range request is a programming error.
type RangeError struct {
	Basis      BasisType
	Quadrature QuadratureType
	NumPoints  int
	Min, Max   int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("%d points requested, but %v quadrature on the %v basis supports [%d,%d]",
		e.NumPoints, e.Quadrature, e.Basis, e.Min, e.Max)
}

// UnsupportedCombinationError reports a basis and quadrature pair with no
// registered quadrature rule. Raised via panic at dispatch.
type UnsupportedCombinationError struct {
	Basis      BasisType
	Quadrature QuadratureType
}

func (e UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("no quadrature rule registered for basis %v with quadrature %v",
		e.Basis, e.Quadrature)
}

/*
A quadratureRule binds one basis to one quadrature law on [-1,1]. Adding a
new basis/quadrature pair means implementing this interface and adding one
entry to the rules table - call sites dispatch through the table and do
not change.
*/
type quadratureRule interface {
	CollocationPointsAndWeights(numPoints int) (X, W utils.Vector)
	BasisFunction(j int, r float64) float64
	BasisNormalizationSquare(j int) float64
}

type ruleKey struct {
	Basis      BasisType
	Quadrature QuadratureType
}

var rules = map[ruleKey]quadratureRule{
	{Legendre, Gauss}:        legendreGauss{},
	{Legendre, GaussLobatto}: legendreGaussLobatto{},
}

func ruleFor(b BasisType, q QuadratureType) (r quadratureRule) {
	var (
		ok bool
	)
	if r, ok = rules[ruleKey{b, q}]; !ok {
		panic(UnsupportedCombinationError{Basis: b, Quadrature: q})
	}
	return
}

// validate panics before any cache slot is touched, so a bad request
// leaves no partial state behind.
func validate(b BasisType, q QuadratureType, numPoints int) {
	if _, ok := rules[ruleKey{b, q}]; !ok {
		panic(UnsupportedCombinationError{Basis: b, Quadrature: q})
	}
	min, max := q.MinimumPoints(), b.MaximumPoints()
	if numPoints < min || numPoints > max {
		panic(RangeError{
			Basis:      b,
			Quadrature: q,
			NumPoints:  numPoints,
			Min:        min,
			Max:        max,
		})
	}
}
