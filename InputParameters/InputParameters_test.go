package InputParameters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	data := []byte(`
Title: "Runge interpolation"
Basis: legendre
Quadrature: gauss lobatto
NumPoints: 12
Function: runge
TargetPoints: 101
CutoffMode: 8
CutoffFrac: 0.25
`)
	sp := &SpectralParameters{}
	if err := sp.Parse(data); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := &SpectralParameters{
		Title:        "Runge interpolation",
		Basis:        "legendre",
		Quadrature:   "gauss lobatto",
		NumPoints:    12,
		Function:     "runge",
		TargetPoints: 101,
		CutoffMode:   8,
		CutoffFrac:   0.25,
	}
	if diff := cmp.Diff(want, sp); diff != "" {
		t.Errorf("parsed parameters mismatch (-want +got):\n%s", diff)
	}
	sp.Print()
}

func TestParseExplicitTargets(t *testing.T) {
	data := []byte(`
Title: "Endpoint sampling"
Basis: legendre
Quadrature: gauss
NumPoints: 6
Function: sine
Targets: [-1, -0.5, 0, 0.5, 1]
`)
	sp := &SpectralParameters{}
	if err := sp.Parse(data); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if diff := cmp.Diff(want, sp.Targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
	sp.Print()
}
