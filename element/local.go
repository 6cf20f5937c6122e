package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Gorocy/Finite-Element-Method/utils"
)

// Conduction is the 4x4 element conduction matrix
type Conduction struct {
	utils.Matrix
}

// AddMatrix adds a 4x4 matrix in place
func (c *Conduction) AddMatrix(m mat.Matrix) (err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != 4 || nc != 4 {
		err = &DimensionError{Operation: "conduction matrix addition", Rows: nr, Cols: nc, WantRows: 4, WantCols: 4}
		return
	}
	c.Matrix.Add(m)
	return
}

// LocalH integrates k * (dN/dx dN/dx^T + dN/dy dN/dy^T) over the element
func LocalH(m *Mapper, k float64) (H *Conduction) {
	H = &Conduction{utils.NewMatrix(4, 4)}
	for p, ip := range m.Ref.Points {
		var (
			dx, dy = m.Gradients(p)
			scale  = k * m.Jacobians[p].Det * ip.Weight()
		)
		H.AddOuter(dx, dx, scale)
		H.AddOuter(dy, dy, scale)
	}
	return
}

// LocalC integrates rho * cp * N N^T over the element
func LocalC(m *Mapper, rho, cp float64) (C utils.Matrix) {
	C = utils.NewMatrix(4, 4)
	for p, ip := range m.Ref.Points {
		var (
			n     = m.Ref.N.Col(p).Data()
			scale = cp * rho * m.Jacobians[p].Det * ip.Weight()
		)
		C.AddOuter(n, n, scale)
	}
	return
}

// Material holds the constants used by the local assemblers
type Material struct {
	Conductivity float64
	Density      float64
	SpecificHeat float64
	Alfa         float64 // Convection coefficient
	Tot          float64 // Ambient temperature
}

// Local is everything one element contributes to the global system
type Local struct {
	ElementID int
	NodeIDs   [4]int
	H         *Conduction // Conduction plus convective boundary
	HBC       utils.Matrix
	C         utils.Matrix
	P         utils.Vector
}

func ComputeLocal(ref *Reference, q Quad, mt Material) (lc *Local, err error) {
	var (
		mp *Mapper
	)
	if mp, err = NewMapper(ref, q); err != nil {
		return
	}
	lc = &Local{
		ElementID: q.ID,
		NodeIDs:   q.NodeIDs,
		H:         LocalH(mp, mt.Conductivity),
		HBC:       LocalHBC(ref, q, mt.Alfa),
		C:         LocalC(mp, mt.Density, mt.SpecificHeat),
		P:         LocalP(ref, q, mt.Alfa, mt.Tot),
	}
	if err = lc.H.AddMatrix(lc.HBC); err != nil {
		return nil, fmt.Errorf("element %d: %w", q.ID, err)
	}
	lc.H.SetReadOnly(fmt.Sprintf("H[%d]", q.ID))
	lc.HBC.SetReadOnly(fmt.Sprintf("HBC[%d]", q.ID))
	lc.C.SetReadOnly(fmt.Sprintf("C[%d]", q.ID))
	lc.P.SetReadOnly(fmt.Sprintf("P[%d]", q.ID))
	return
}
