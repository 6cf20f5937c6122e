package element

import (
	"github.com/Gorocy/Finite-Element-Method/utils"
)

// Jacobian J = [[dx/dxi, dx/deta], [dy/dxi, dy/deta]]
type Jacobian struct {
	J           [2][2]float64
	Det, InvDet float64
}

// Mapper caches the isoparametric transform of one element at every integration point
type Mapper struct {
	Ref       *Reference
	Quad      Quad
	Jacobians []Jacobian
	DNdX      utils.Matrix // 4 x n^2
	DNdY      utils.Matrix // 4 x n^2
}

func NewMapper(ref *Reference, q Quad) (m *Mapper, err error) {
	var (
		Np = ref.NumPoints()
	)
	m = &Mapper{
		Ref:       ref,
		Quad:      q,
		Jacobians: make([]Jacobian, Np),
		DNdX:      utils.NewMatrix(4, Np),
		DNdY:      utils.NewMatrix(4, Np),
	}
	for p := 0; p < Np; p++ {
		jac := NewJacobian(ref, q, p)
		if !utils.IsFinite(jac.Det) || jac.Det <= 0 {
			return nil, &NumericDegeneracyError{ElementID: q.ID, Point: p + 1, Det: jac.Det}
		}
		m.Jacobians[p] = jac
		var (
			J = jac.J
		)
		for i := 0; i < 4; i++ {
			dxi, deta := ref.DNdXi.At(i, p), ref.DNdEta.At(i, p)
			m.DNdX.Set(i, p, jac.InvDet*(J[1][1]*dxi-J[0][1]*deta))
			m.DNdY.Set(i, p, jac.InvDet*(-J[1][0]*dxi+J[0][0]*deta))
		}
	}
	m.DNdX.SetReadOnly("DNdX")
	m.DNdY.SetReadOnly("DNdY")
	return
}

// NewJacobian evaluates the Jacobian at integration point index p (0 based)
func NewJacobian(ref *Reference, q Quad, p int) (jac Jacobian) {
	for i := 0; i < 4; i++ {
		dxi, deta := ref.DNdXi.At(i, p), ref.DNdEta.At(i, p)
		jac.J[0][0] += q.X[i] * dxi
		jac.J[0][1] += q.X[i] * deta
		jac.J[1][0] += q.Y[i] * dxi
		jac.J[1][1] += q.Y[i] * deta
	}
	jac.Det = jac.J[0][0]*jac.J[1][1] - jac.J[0][1]*jac.J[1][0]
	jac.InvDet = 1. / jac.Det
	return
}

// Column p of the physical derivative tables
func (m *Mapper) Gradients(p int) (dx, dy []float64) {
	dx, dy = m.DNdX.Col(p).Data(), m.DNdY.Col(p).Data()
	return
}
