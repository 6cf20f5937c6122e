package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V        *mat.VecDense
	readOnly bool
	name     string
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		R = Vector{V: mat.NewVecDense(n, dataO[0])}
		return
	}
	R = Vector{V: mat.NewVecDense(n, make([]float64, n))}
	return
}

func NewVectorConst(n int, val float64) (R Vector) {
	R = NewVector(n)
	return R.Set(val)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.V.RawVector().Data }
func (v Vector) IsReadOnly() bool         { return v.readOnly }

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

// Chainable (extended) methods
func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	return NewVector(len(data), data)
}

func (v Vector) Set(val float64) Vector { // Changes receiver
	var (
		data = v.Data()
	)
	v.checkWritable()
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) AddAt(i int, val float64) Vector { // Changes receiver
	i = lim(i, v.Len())
	v.checkWritable()
	v.V.SetVec(i, v.V.AtVec(i)+val)
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	if a.Len() != v.Len() {
		err := fmt.Errorf("dimension mismatch: adding vector of length %d to length %d", a.Len(), v.Len())
		panic(err)
	}
	v.checkWritable()
	floats.Add(v.Data(), a.Data())
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	v.checkWritable()
	floats.Scale(a, v.Data())
	return v
}

func (v Vector) Min() float64 { return floats.Min(v.Data()) }
func (v Vector) Max() float64 { return floats.Max(v.Data()) }
func (v Vector) Sum() float64 { return floats.Sum(v.Data()) }

// MulMatrix returns A·v
func (v Vector) MulMatrix(A mat.Matrix) (R Vector) { // Does not change receiver
	var (
		nr, nc = A.Dims()
	)
	if nc != v.Len() {
		err := fmt.Errorf("dimension mismatch: %dx%d matrix times vector of length %d", nr, nc, v.Len())
		panic(err)
	}
	R = NewVector(nr)
	R.V.MulVec(A, v.V)
	return
}

func (v Vector) checkWritable() {
	if v.readOnly {
		err := fmt.Errorf("attempt to write to a read only vector named: \"%v\"", v.name)
		panic(err)
	}
}
