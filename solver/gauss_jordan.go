package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Gorocy/Finite-Element-Method/utils"
)

// SingularMatrixError reports a zero pivot or a solution that is not finite
type SingularMatrixError struct {
	Column int
	Pivot  float64
}

func (e *SingularMatrixError) Error() string {
	if e.Column < 0 {
		return "singular system: solution is not finite"
	}
	return fmt.Sprintf("singular system: pivot %v in column %d", e.Pivot, e.Column)
}

/*
GaussJordan solves A x = b by full reduction of the augmented N x (N+1) matrix with partial
pivoting: for each column the row with the largest magnitude entry is swapped in, normalized
and eliminated from every other row. A and b are not modified.
*/
func GaussJordan(A mat.Matrix, b []float64) (x []float64, err error) {
	var (
		nr, nc = A.Dims()
		N      = nr
	)
	if nr != nc {
		err = fmt.Errorf("coefficient matrix must be square, have %dx%d", nr, nc)
		return
	}
	if len(b) != N {
		err = fmt.Errorf("right hand side has length %d, need %d", len(b), N)
		return
	}
	var (
		Nc  = N + 1
		Aug = utils.NewMatrix(N, Nc)
		a   = Aug.Data()
	)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			a[i*Nc+j] = A.At(i, j)
		}
		a[i*Nc+N] = b[i]
	}
	for i := 0; i < N; i++ {
		pivRow := i
		for r := i + 1; r < N; r++ {
			if math.Abs(a[r*Nc+i]) > math.Abs(a[pivRow*Nc+i]) {
				pivRow = r
			}
		}
		if pivRow != i {
			rowI, rowP := a[i*Nc:(i+1)*Nc], a[pivRow*Nc:(pivRow+1)*Nc]
			for j := range rowI {
				rowI[j], rowP[j] = rowP[j], rowI[j]
			}
		}
		pivot := a[i*Nc+i]
		if pivot == 0 {
			err = &SingularMatrixError{Column: i, Pivot: pivot}
			return
		}
		rowI := a[i*Nc : (i+1)*Nc]
		for j := range rowI {
			rowI[j] /= pivot
		}
		for r := 0; r < N; r++ {
			if r == i {
				continue
			}
			factor := a[r*Nc+i]
			if factor == 0 {
				continue
			}
			rowR := a[r*Nc : (r+1)*Nc]
			for j := range rowR {
				rowR[j] -= factor * rowI[j]
			}
		}
	}
	x = make([]float64, N)
	for i := 0; i < N; i++ {
		x[i] = a[i*Nc+N]
	}
	if !utils.IsFinite(x) {
		return nil, &SingularMatrixError{Column: -1}
	}
	return
}
