package quadrature

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const MaxOrder = 5

type UnsupportedOrderError struct {
	Order int
}

func (e *UnsupportedOrderError) Error() string {
	return fmt.Sprintf("unsupported Gauss-Legendre order %d, supported orders are 1..%d", e.Order, MaxOrder)
}

// Scheme holds abscissas on [-1,1] in ascending order and their weights
type Scheme struct {
	Order   int
	Points  []float64
	Weights []float64
}

func NewGaussLegendre(n int) (gl *Scheme, err error) {
	var (
		x, w []float64
	)
	switch n {
	case 1:
		x = []float64{0}
		w = []float64{2}
	case 2:
		a := 1. / math.Sqrt(3.)
		x = []float64{-a, a}
		w = []float64{1, 1}
	case 3:
		a := math.Sqrt(3. / 5.)
		x = []float64{-a, 0, a}
		w = []float64{5. / 9., 8. / 9., 5. / 9.}
	case 4:
		var (
			a  = math.Sqrt(3./7. - 2./7.*math.Sqrt(6./5.))
			b  = math.Sqrt(3./7. + 2./7.*math.Sqrt(6./5.))
			wa = (18. + math.Sqrt(30.)) / 36.
			wb = (18. - math.Sqrt(30.)) / 36.
		)
		x = []float64{-b, -a, a, b}
		w = []float64{wb, wa, wa, wb}
	case 5:
		var (
			a  = math.Sqrt(5.-2.*math.Sqrt(10./7.)) / 3.
			b  = math.Sqrt(5.+2.*math.Sqrt(10./7.)) / 3.
			wa = (322. + 13.*math.Sqrt(70.)) / 900.
			wb = (322. - 13.*math.Sqrt(70.)) / 900.
		)
		x = []float64{-b, -a, 0, a, b}
		w = []float64{wb, wa, 128. / 225., wa, wb}
	default:
		err = &UnsupportedOrderError{Order: n}
		return
	}
	gl = &Scheme{
		Order:   n,
		Points:  x,
		Weights: w,
	}
	return
}

// Integrate1D approximates the integral of f over [-1,1]
func (gl *Scheme) Integrate1D(f func(x float64) float64) (sum float64) {
	for i, x := range gl.Points {
		sum += gl.Weights[i] * f(x)
	}
	return
}

// Integrate2D approximates the integral of f over [-1,1]x[-1,1] with the tensor product rule
func (gl *Scheme) Integrate2D(f func(x, y float64) float64) (sum float64) {
	for i, y := range gl.Points {
		for j, x := range gl.Points {
			sum += gl.Weights[i] * gl.Weights[j] * f(x, y)
		}
	}
	return
}

/*
LegendreGQ computes the n point Gauss-Legendre rule from the eigen decomposition of the symmetric
tridiagonal Jacobi matrix of the Legendre recurrence (Golub-Welsch). It has no order limit and is
used to check the closed form tables.
*/
func LegendreGQ(n int) (X, W []float64, err error) {
	var (
		JJ  *mat.SymDense
		eig mat.EigenSym
		VV  *mat.Dense
	)
	if n < 1 {
		err = &UnsupportedOrderError{Order: n}
		return
	}
	if n == 1 {
		return []float64{0}, []float64{2}, nil
	}
	JJ = mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		fi := float64(i)
		JJ.SetSym(i-1, i, fi/math.Sqrt(4.*fi*fi-1.))
	}
	if ok := eig.Factorize(JJ, true); !ok {
		err = fmt.Errorf("eigenvalue decomposition failed for order %d", n)
		return
	}
	X = eig.Values(nil)
	VV = mat.NewDense(n, n, nil)
	eig.VectorsTo(VV)
	W = make([]float64, n)
	for j := 0; j < n; j++ {
		v0 := VV.At(0, j)
		W[j] = 2. * v0 * v0
	}
	// Eigenvalues arrive ascending, keep the pairing if that ever changes
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return X[idx[a]] < X[idx[b]] })
	xs, ws := make([]float64, n), make([]float64, n)
	for i, k := range idx {
		xs[i], ws[i] = X[k], W[k]
	}
	X, W = xs, ws
	return
}
