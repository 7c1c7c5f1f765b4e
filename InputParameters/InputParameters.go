package InputParameters

import (
	"fmt"
	"time"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SpectralParameters struct {
	Title        string    `yaml:"Title"`
	Basis        string    `yaml:"Basis"`
	Quadrature   string    `yaml:"Quadrature"`
	NumPoints    int       `yaml:"NumPoints"`
	Function     string    `yaml:"Function"`
	TargetPoints int       `yaml:"TargetPoints"`
	Targets      []float64 `yaml:"Targets"` // Explicit targets override TargetPoints
	CutoffMode   int       `yaml:"CutoffMode"`
	CutoffFrac   float64   `yaml:"CutoffFrac"`
}

func (sp *SpectralParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SpectralParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Basis\n", sp.Basis)
	fmt.Printf("[%s]\t= Quadrature\n", sp.Quadrature)
	fmt.Printf("[%d]\t\t\t\t= NumPoints\n", sp.NumPoints)
	fmt.Printf("[%s]\t\t\t= Function\n", sp.Function)
	if len(sp.Targets) != 0 {
		fmt.Printf("%v\t= Targets\n", sp.Targets)
	} else {
		fmt.Printf("[%d]\t\t\t= TargetPoints\n", sp.TargetPoints)
	}
	if sp.CutoffMode != 0 {
		fmt.Printf("[%d]\t\t\t\t= CutoffMode\n", sp.CutoffMode)
		fmt.Printf("%8.5f\t\t= CutoffFrac\n", sp.CutoffFrac)
	}
}

// PlotMeta carries display options from the command line into plotting code
type PlotMeta struct {
	Graph         bool
	Width, Height int
	FrameTime     time.Duration
	HoldTime      time.Duration
}
