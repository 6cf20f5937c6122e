package element

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gorocy/Finite-Element-Method/types"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

func near(a, b float64, tolI ...float64) bool {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	return math.Abs(a-b) <= bound
}

func squareQuad(L float64, bc types.BCTag) Quad {
	return Quad{
		ID:      1,
		NodeIDs: [4]int{1, 2, 3, 4},
		X:       [4]float64{0, L, L, 0},
		Y:       [4]float64{0, 0, L, L},
		BC:      [4]types.BCTag{bc, bc, bc, bc},
	}
}

// Distorted element from a 4x4 grid used as a regression fixture
func distortedQuad() Quad {
	return Quad{
		ID:      1,
		NodeIDs: [4]int{1, 2, 3, 4},
		X:       [4]float64{0.1, 0.0546918, 0.0623899, 0.1},
		Y:       [4]float64{0.005, 0.005, -0.0326101, -0.0403082},
		BC:      [4]types.BCTag{1, 1, 0, 1},
	}
}

func TestShapeFunctions(t *testing.T) {
	corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for c, pt := range corners {
		n := ShapeFunctions(pt[0], pt[1])
		for i := 0; i < 4; i++ {
			if i == c {
				assert.Equal(t, 1., n[i])
			} else {
				assert.Equal(t, 0., n[i])
			}
		}
	}
	for xi := -1.; xi <= 1.; xi += 0.125 {
		for eta := -1.; eta <= 1.; eta += 0.25 {
			n := ShapeFunctions(xi, eta)
			assert.InDelta(t, 1., n[0]+n[1]+n[2]+n[3], 1.e-15)
			dxi, deta := ShapeDerivatives(xi, eta)
			assert.InDelta(t, 0., dxi[0]+dxi[1]+dxi[2]+dxi[3], 1.e-15)
			assert.InDelta(t, 0., deta[0]+deta[1]+deta[2]+deta[3], 1.e-15)
		}
	}
}

func TestReference(t *testing.T) {
	ref, err := NewReference(3)
	require.NoError(t, err)
	require.Equal(t, 9, ref.NumPoints())
	gl := ref.Scheme
	// Eta is the outer index
	assert.Equal(t, 1, ref.Points[0].ID)
	assert.Equal(t, 9, ref.Points[8].ID)
	assert.Equal(t, gl.Points[1], ref.Points[1].Xi)
	assert.Equal(t, gl.Points[0], ref.Points[1].Eta)
	assert.Equal(t, gl.Points[0], ref.Points[3].Xi)
	assert.Equal(t, gl.Points[1], ref.Points[3].Eta)
	assert.Equal(t, gl.Weights[1]*gl.Weights[0], ref.Points[1].Weight())
	var wsum float64
	for p, ip := range ref.Points {
		wsum += ip.Weight()
		dxi, deta := ShapeDerivatives(ip.Xi, ip.Eta)
		for i := 0; i < 4; i++ {
			assert.Equal(t, dxi[i], ref.DNdXi.At(i, p))
			assert.Equal(t, deta[i], ref.DNdEta.At(i, p))
		}
	}
	assert.InDelta(t, 4., wsum, 1.e-14)
	assert.Panics(t, func() { ref.DNdXi.Set(0, 0, 1) })

	_, err = NewReference(6)
	assert.Error(t, err)
}

func TestMapperRectangle(t *testing.T) {
	for order := 1; order <= 5; order++ {
		ref, _ := NewReference(order)
		q := Quad{
			X: [4]float64{1, 4, 4, 1},
			Y: [4]float64{2, 2, 4, 4},
		}
		m, err := NewMapper(ref, q)
		require.NoError(t, err)
		for p, jac := range m.Jacobians {
			assert.InDelta(t, 1.5, jac.J[0][0], 1.e-14)
			assert.InDelta(t, 1.0, jac.J[1][1], 1.e-14)
			assert.InDelta(t, 0., jac.J[0][1], 1.e-14)
			assert.InDelta(t, 0., jac.J[1][0], 1.e-14)
			// Det is (width/2)(height/2) everywhere
			assert.InDeltaf(t, 1.5, jac.Det, 1.e-14, "point %d", p)
			assert.InDelta(t, 1./1.5, jac.InvDet, 1.e-14)
			// Physical derivatives are the reference ones scaled by the edge ratios
			for i := 0; i < 4; i++ {
				assert.InDelta(t, ref.DNdXi.At(i, p)/1.5, m.DNdX.At(i, p), 1.e-14)
				assert.InDelta(t, ref.DNdEta.At(i, p), m.DNdY.At(i, p), 1.e-14)
			}
		}
	}
}

func TestMapperDegenerate(t *testing.T) {
	ref, _ := NewReference(2)
	// Clockwise winding inverts the element
	q := Quad{
		ID: 7,
		X:  [4]float64{0, 0, 1, 1},
		Y:  [4]float64{0, 1, 1, 0},
	}
	_, err := NewMapper(ref, q)
	var nde *NumericDegeneracyError
	require.True(t, errors.As(err, &nde))
	assert.Equal(t, 7, nde.ElementID)
	assert.Equal(t, 1, nde.Point)
	assert.True(t, nde.Det < 0)
	// Collapsed element
	q = Quad{ID: 8}
	_, err = NewMapper(ref, q)
	require.True(t, errors.As(err, &nde))
	assert.True(t, math.IsNaN(nde.Det) || nde.Det == 0)
}

func TestLocalHSquare(t *testing.T) {
	var (
		k = 6.
		// Exact conduction matrix of a square, independent of size
		Hex = [4][4]float64{
			{4, -1, -2, -1},
			{-1, 4, -1, -2},
			{-2, -1, 4, -1},
			{-1, -2, -1, 4},
		}
	)
	for order := 2; order <= 5; order++ {
		ref, _ := NewReference(order)
		m, err := NewMapper(ref, squareQuad(0.3, 0))
		require.NoError(t, err)
		H := LocalH(m, k)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				assert.InDeltaf(t, Hex[i][j]*k/6., H.At(i, j), 1.e-12, "order %d [%d,%d]", order, i, j)
			}
		}
		assert.True(t, H.IsSymmetric(1.e-14))
	}
}

func TestLocalDistorted(t *testing.T) {
	var (
		Hex = [4][4]float64{
			{17.588122173551856, -3.3727825538874656, -10.842557065776921, -3.3727825538874705},
			{-3.3727825538874656, 14.771752087114402, -5.273041843178604, -6.125927690048329},
			{-10.842557065776921, -5.273041843178604, 21.38864075213413, -5.2730418431786},
			{-3.3727825538874705, -6.125927690048329, -5.2730418431786, 14.771752087114399},
		}
		HBCex = [4][4]float64{
			{9.06164, 2.26541, 0, 2.26541},
			{2.26541, 4.53082, 0, 0},
			{0, 0, 0, 0},
			{2.26541, 0, 0, 4.53082},
		}
		Pex = [4]float64{16310.952, 8155.476, 0, 8155.476}
		mt  = Material{Conductivity: 25, Density: 7800, SpecificHeat: 700, Alfa: 300, Tot: 1200}
	)
	ref, _ := NewReference(4)
	q := distortedQuad()
	m, err := NewMapper(ref, q)
	require.NoError(t, err)
	H := LocalH(m, mt.Conductivity)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.True(t, near(Hex[i][j], H.At(i, j), 1.e-10))
		}
	}
	assert.True(t, H.IsSymmetric(1.e-12))
	// H rows sum to zero, a constant field carries no flux
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0., H.Row(i).Sum(), 1.e-12)
	}
	assert.Equal(t, [4]types.BCTag{1, 0, 0, 1}, BoundaryEdges(q))
	HBC := LocalHBC(ref, q, mt.Alfa)
	P := LocalP(ref, q, mt.Alfa, mt.Tot)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDeltaf(t, HBCex[i][j], HBC.At(i, j), 1.e-9, "HBC[%d,%d]", i, j)
		}
		assert.InDeltaf(t, Pex[i], P.AtVec(i), 1.e-6, "P[%d]", i)
	}
	C := LocalC(m, mt.Density, mt.SpecificHeat)
	assert.True(t, near(1139.5866057515339, C.At(0, 0), 1.e-10))
	assert.True(t, C.IsSymmetric(1.e-10))

	lc, err := ComputeLocal(ref, q, mt)
	require.NoError(t, err)
	assert.Equal(t, q.NodeIDs, lc.NodeIDs)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, Hex[i][j]+HBCex[i][j], lc.H.At(i, j), 1.e-9)
		}
	}
	assert.Panics(t, func() { lc.H.Set(0, 0, 0) })
	assert.Panics(t, func() { lc.C.Scale(2) })
}

func TestLocalNoBoundary(t *testing.T) {
	ref, _ := NewReference(2)
	q := squareQuad(0.5, types.BCNone)
	assert.Equal(t, [4]types.BCTag{}, BoundaryEdges(q))
	HBC := LocalHBC(ref, q, 300)
	P := LocalP(ref, q, 300, 1200)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, 0., HBC.At(i, j))
		}
		assert.Equal(t, 0., P.AtVec(i))
	}
	// Different groups on the two ends of an edge do not form a boundary
	q.BC = [4]types.BCTag{1, 2, 2, 0}
	assert.Equal(t, [4]types.BCTag{0, 2, 0, 0}, BoundaryEdges(q))
}

func TestLocalCSquare(t *testing.T) {
	// Consistent mass matrix of a square: rho*cp*A/36 * [[4,2,1,2],...]
	var (
		L       = 2.
		rho, cp = 3., 5.
		Cex     = [4][4]float64{
			{4, 2, 1, 2},
			{2, 4, 2, 1},
			{1, 2, 4, 2},
			{2, 1, 2, 4},
		}
	)
	ref, _ := NewReference(2)
	m, _ := NewMapper(ref, squareQuad(L, 0))
	C := LocalC(m, rho, cp)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, Cex[i][j]*rho*cp*L*L/36., C.At(i, j), 1.e-12)
		}
	}
}

func TestEdgePoints(t *testing.T) {
	ref, _ := NewReference(2)
	x := ref.Scheme.Points
	assert.Equal(t, [][2]float64{{x[0], -1}, {x[1], -1}}, EdgePoints(ref, types.Bottom))
	assert.Equal(t, [][2]float64{{1, x[0]}, {1, x[1]}}, EdgePoints(ref, types.Right))
	assert.Equal(t, [][2]float64{{x[1], 1}, {x[0], 1}}, EdgePoints(ref, types.Top))
	assert.Equal(t, [][2]float64{{-1, x[1]}, {-1, x[0]}}, EdgePoints(ref, types.Left))

	ref, _ = NewReference(3)
	q := squareQuad(1, types.BCConvection)
	// Convective perimeter: each diagonal gets alfa*L/3 from each of its two edges
	HBC := LocalHBC(ref, q, 3)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 2., HBC.At(i, i), 1.e-13)
		assert.InDelta(t, 3., HBC.Row(i).Sum(), 1.e-13)
	}
	P := LocalP(ref, q, 3, 10)
	assert.InDelta(t, 4*3*10., P.Sum(), 1.e-12)
}

func TestConductionAddMatrix(t *testing.T) {
	H := &Conduction{utils.NewMatrix(4, 4)}
	require.NoError(t, H.AddMatrix(utils.NewMatrix(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})))
	assert.Equal(t, 1., H.At(3, 3))
	err := H.AddMatrix(utils.NewMatrix(3, 4))
	var de *DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Rows)
	assert.Equal(t, 4, de.Cols)
	assert.Equal(t, 1., H.At(3, 3))
}
