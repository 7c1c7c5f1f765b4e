package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V        *mat.VecDense
	DataP    []float64
	readOnly bool
	name     string
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:        v,
		DataP:    v.RawVector().Data,
		readOnly: false,
		name:     "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)    { return v.V.Dims() }
func (v Vector) At(i, j int) float64 { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix       { return v.V.T() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }

// Chainable methods (extended)
func (v *Vector) SetReadOnly(name ...string) Vector {
	if len(name) != 0 {
		v.name = name[0]
	}
	v.readOnly = true
	return *v
}

func (v *Vector) SetWritable() Vector {
	v.readOnly = false
	return *v
}

func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	i = lim(i, v.Len())
	v.checkWritable()
	v.DataP[i] = val
	return v
}

func (v Vector) Linspace(xmin, xmax float64) Vector { // Changes receiver
	var (
		n    = v.Len()
		data = v.DataP
	)
	v.checkWritable()
	if n == 1 {
		data[0] = xmin
		return v
	}
	h := (xmax - xmin) / float64(n-1)
	for i := range data {
		data[i] = xmin + h*float64(i)
	}
	data[n-1] = xmax
	return v
}

func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		dataR = make([]float64, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewVector(v.Len(), dataR)
	return
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	var (
		data = v.DataP
	)
	v.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector { // Changes receiver
	var (
		data = v.DataP
	)
	v.checkWritable()
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	var (
		data  = v.DataP
		dataA = a.DataP
	)
	v.checkWritable()
	for i := range data {
		data[i] -= dataA[i]
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	var (
		data = v.DataP
	)
	v.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector { // Changes receiver
	var (
		data = v.DataP
	)
	v.checkWritable()
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP {
		sum += val
	}
	return
}

func (v Vector) ToMatrix() (R Matrix) { // Does not change receiver
	var (
		dataR = make([]float64, v.Len())
	)
	copy(dataR, v.DataP)
	R = NewMatrix(v.Len(), 1, dataR)
	return
}

func (v Vector) checkWritable() {
	if v.readOnly {
		err := fmt.Errorf("attempt to write to a read only vector named: \"%v\"", v.name)
		panic(err)
	}
}
