package assembly

import (
	"fmt"

	"github.com/Gorocy/Finite-Element-Method/element"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

/*
Global holds the N x N conduction (H+HBC) and capacity matrices and the length N load vector.
Local contributions are scatter-added by node id (row id-1): shared nodes accumulate every
element's share and nothing is ever overwritten, so scattering the same locals twice doubles
every entry. C is divided by the time step exactly once before stepping, CRaw keeps the
undivided copy.
*/
type Global struct {
	N       int
	H       utils.Matrix
	C       utils.Matrix
	CRaw    utils.Matrix
	P       utils.Vector
	Dt      float64
	divided bool
}

func NewGlobal(N int) (g *Global) {
	g = &Global{
		N: N,
		H: utils.NewMatrix(N, N),
		C: utils.NewMatrix(N, N),
		P: utils.NewVector(N),
	}
	return
}

func (g *Global) Scatter(lc *element.Local) (err error) {
	if g.divided {
		return fmt.Errorf("element %d: scatter after capacity division", lc.ElementID)
	}
	for _, id := range lc.NodeIDs {
		if id < 1 || id > g.N {
			return fmt.Errorf("element %d: node id %d outside 1..%d", lc.ElementID, id, g.N)
		}
	}
	for a, ida := range lc.NodeIDs {
		row := ida - 1
		g.P.AddAt(row, lc.P.AtVec(a))
		for b, idb := range lc.NodeIDs {
			col := idb - 1
			g.H.AddAt(row, col, lc.H.At(a, b))
			g.C.AddAt(row, col, lc.C.At(a, b))
		}
	}
	return
}

func (g *Global) ScatterAll(locals []*element.Local) (err error) {
	for _, lc := range locals {
		if err = g.Scatter(lc); err != nil {
			return
		}
	}
	return
}

// DivideCapacity replaces C by C/dt, it may only be called once
func (g *Global) DivideCapacity(dt float64) (err error) {
	if g.divided {
		return fmt.Errorf("capacity matrix already divided by %v", g.Dt)
	}
	if !(dt > 0) {
		return fmt.Errorf("time step must be positive, have %v", dt)
	}
	g.CRaw = g.C.Copy()
	g.C.Scale(1. / dt)
	g.Dt = dt
	g.divided = true
	return
}

// Freeze marks the global structures read only
func (g *Global) Freeze() {
	g.H.SetReadOnly("H_global")
	g.C.SetReadOnly("C_global/dtau")
	g.P.SetReadOnly("P_global")
	if g.divided {
		g.CRaw.SetReadOnly("C_global")
	}
}

// SystemMatrix returns A = C/dt + H as a new matrix
func (g *Global) SystemMatrix() (A utils.Matrix, err error) {
	if !g.divided {
		err = fmt.Errorf("system matrix requested before capacity division")
		return
	}
	A = g.C.Copy().Add(g.H)
	return
}

// RightHandSide returns b = (C/dt) T + P
func (g *Global) RightHandSide(T utils.Vector) (b utils.Vector, err error) {
	if !g.divided {
		err = fmt.Errorf("right hand side requested before capacity division")
		return
	}
	if T.Len() != g.N {
		err = fmt.Errorf("temperature vector has length %d, need %d", T.Len(), g.N)
		return
	}
	b = T.MulMatrix(g.C).Add(g.P)
	return
}
