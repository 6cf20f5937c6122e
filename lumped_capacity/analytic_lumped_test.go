package lumped_capacity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/model_problems/Heat2D"
	"github.com/Gorocy/Finite-Element-Method/types"
)

func TestLumped(t *testing.T) {
	lm, err := NewLumpedRectangle(0.1, 0.1, 7800, 700, 300, 100, 1200)
	require.NoError(t, err)
	assert.InDelta(t, 455., lm.Tau, 1.e-10)
	assert.Equal(t, 100., lm.Exact(0))
	assert.InDelta(t, 1200., lm.Exact(100*lm.Tau), 1.e-9)
	// Implicit Euler converges to the exact solution at first order
	var (
		tEnd = 500.
		errs []float64
	)
	for _, n := range []int{10, 20, 40} {
		T := lm.ImplicitEuler(tEnd/float64(n), n)
		errs = append(errs, math.Abs(T[n-1]-lm.Exact(tEnd)))
	}
	assert.InDelta(t, 2., errs[0]/errs[1], 0.1)
	assert.InDelta(t, 2., errs[1]/errs[2], 0.05)

	_, err = NewLumped(1, 1, 0, 1, 1, 0, 0)
	assert.Error(t, err)
}

func TestHeat2DHighConductivity(t *testing.T) {
	var (
		hp = &InputParameters.HeatParameters{
			SimulationTime: 500, SimulationStepTime: 50, Conductivity: 1.e7, Alfa: 300,
			Tot: 1200, InitialTemp: 100, Density: 7800, SpecificHeat: 700,
			NodesNumber: 16, ElementsNumber: 9,
		}
	)
	g, err := mesh.NewRectangularGrid(0.1, 0.1, 4, 4)
	require.NoError(t, err)
	_, err = g.TagExterior(types.BCConvection)
	require.NoError(t, err)
	c, err := Heat2D.NewHeat2D(g, hp, 2)
	require.NoError(t, err)
	steps, err := c.Solve(nil)
	require.NoError(t, err)

	lm, err := NewLumpedRectangle(0.1, 0.1, hp.Density, hp.SpecificHeat, hp.Alfa, hp.InitialTemp, hp.Tot)
	require.NoError(t, err)
	ref := lm.ImplicitEuler(hp.SimulationStepTime, len(steps))
	for i, s := range steps {
		assert.InDeltaf(t, ref[i], s.Min, 1.e-2, "step %d", s.Index)
		assert.InDeltaf(t, ref[i], s.Max, 1.e-2, "step %d", s.Index)
	}
}
