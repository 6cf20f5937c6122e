package solver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/Gorocy/Finite-Element-Method/utils"
)

func TestGaussJordan3x3(t *testing.T) {
	A := utils.NewMatrix(3, 3, []float64{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	})
	b := []float64{8, -11, -3}
	x, err := GaussJordan(A, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1.e-9)
	// Inputs are untouched
	assert.Equal(t, 2., A.At(0, 0))
	assert.Equal(t, []float64{8, -11, -3}, b)
}

func TestGaussJordanPivoting(t *testing.T) {
	// Zero leading entry needs a row swap
	A := mat.NewDense(2, 2, []float64{
		0, 1,
		1, 1,
	})
	x, err := GaussJordan(A, []float64{3, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, x, 1.e-14)
}

func TestGaussJordanAgainstGonum(t *testing.T) {
	var (
		N   = 12
		rnd = rand.New(rand.NewSource(1))
	)
	A := mat.NewDense(N, N, nil)
	bv := mat.NewVecDense(N, nil)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			A.Set(i, j, rnd.Float64()-0.5)
		}
		// Diagonally dominant keeps the system well conditioned
		A.Set(i, i, A.At(i, i)+float64(N))
		bv.SetVec(i, rnd.Float64()*100)
	}
	var xg mat.VecDense
	require.NoError(t, xg.SolveVec(A, bv))
	x, err := GaussJordan(A, bv.RawVector().Data)
	require.NoError(t, err)
	for i := 0; i < N; i++ {
		assert.InDelta(t, xg.AtVec(i), x[i], 1.e-10)
	}
}

func TestGaussJordanSingular(t *testing.T) {
	A := utils.NewMatrix(3, 3, []float64{
		1, 2, 3,
		2, 4, 6,
		0, 0, 0,
	})
	_, err := GaussJordan(A, []float64{1, 2, 3})
	var sme *SingularMatrixError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, 1, sme.Column)

	_, err = GaussJordan(utils.NewMatrix(2, 3), []float64{1, 2})
	assert.Error(t, err)
	_, err = GaussJordan(utils.NewMatrix(2, 2), []float64{1})
	assert.Error(t, err)
}
