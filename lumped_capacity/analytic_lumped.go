package lumped_capacity

import (
	"fmt"
	"math"
)

/*
Lumped capacitance reference for a body whose conductivity is large enough that its temperature
stays uniform (Biot number αL/k -> 0). Per unit depth, for area A and convective perimeter Lp:

	ρ c A dT/dt = α Lp (T∞ - T)

with time constant τ = ρ c A / (α Lp).
*/
type Lumped struct {
	Tau      float64
	T0, TInf float64
}

func NewLumped(rho, cp, area, alfa, perimeter, T0, TInf float64) (lm *Lumped, err error) {
	if !(area > 0) || !(alfa > 0) || !(perimeter > 0) || !(rho*cp > 0) {
		err = fmt.Errorf("lumped model needs positive rho*cp, area, alfa and perimeter")
		return
	}
	lm = &Lumped{
		Tau:  rho * cp * area / (alfa * perimeter),
		T0:   T0,
		TInf: TInf,
	}
	return
}

// NewLumpedRectangle is the fully convective W x H plate
func NewLumpedRectangle(W, H, rho, cp, alfa, T0, TInf float64) (*Lumped, error) {
	return NewLumped(rho, cp, W*H, alfa, 2*(W+H), T0, TInf)
}

// Exact temperature at time t
func (lm *Lumped) Exact(t float64) float64 {
	return lm.TInf + (lm.T0-lm.TInf)*math.Exp(-t/lm.Tau)
}

// ImplicitEuler returns the temperatures after each of nSteps steps of size dt
func (lm *Lumped) ImplicitEuler(dt float64, nSteps int) (T []float64) {
	var (
		r  = dt / lm.Tau
		Tn = lm.T0
	)
	T = make([]float64, nSteps)
	for i := range T {
		Tn = (Tn + r*lm.TInf) / (1 + r)
		T[i] = Tn
	}
	return
}
