package element

import (
	"github.com/Gorocy/Finite-Element-Method/quadrature"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

// IntegrationPoint is one point of the tensor product rule, WX and WY are its two 1-D weights
type IntegrationPoint struct {
	ID      int
	Xi, Eta float64
	WX, WY  float64
}

func (ip IntegrationPoint) Weight() float64 { return ip.WX * ip.WY }

/*
Reference is the bilinear reference square [-1,1]x[-1,1] sampled at an n x n Gauss-Legendre grid.
Points are ordered with eta as the outer index and xi as the inner index, IDs start at 1.
N, DNdXi and DNdEta are 4 x n^2, column p holds the values of all shape functions at point p.
*/
type Reference struct {
	Order         int
	Scheme        *quadrature.Scheme
	Points        []IntegrationPoint
	N             utils.Matrix
	DNdXi, DNdEta utils.Matrix
}

func NewReference(order int) (ref *Reference, err error) {
	var (
		gl *quadrature.Scheme
		Np int
	)
	if gl, err = quadrature.NewGaussLegendre(order); err != nil {
		return
	}
	Np = order * order
	ref = &Reference{
		Order:  order,
		Scheme: gl,
		Points: make([]IntegrationPoint, 0, Np),
		N:      utils.NewMatrix(4, Np),
		DNdXi:  utils.NewMatrix(4, Np),
		DNdEta: utils.NewMatrix(4, Np),
	}
	for i := 0; i < order; i++ {
		for j := 0; j < order; j++ {
			ip := IntegrationPoint{
				ID:  len(ref.Points) + 1,
				Xi:  gl.Points[j],
				Eta: gl.Points[i],
				WX:  gl.Weights[j],
				WY:  gl.Weights[i],
			}
			p := ip.ID - 1
			n := ShapeFunctions(ip.Xi, ip.Eta)
			dxi, deta := ShapeDerivatives(ip.Xi, ip.Eta)
			for f := 0; f < 4; f++ {
				ref.N.Set(f, p, n[f])
				ref.DNdXi.Set(f, p, dxi[f])
				ref.DNdEta.Set(f, p, deta[f])
			}
			ref.Points = append(ref.Points, ip)
		}
	}
	ref.N.SetReadOnly("N")
	ref.DNdXi.SetReadOnly("DNdXi")
	ref.DNdEta.SetReadOnly("DNdEta")
	return
}

func (ref *Reference) NumPoints() int { return len(ref.Points) }

// ShapeFunctions evaluates N1..N4 at (xi, eta)
func ShapeFunctions(xi, eta float64) [4]float64 {
	return [4]float64{
		0.25 * (1 - xi) * (1 - eta),
		0.25 * (1 + xi) * (1 - eta),
		0.25 * (1 + xi) * (1 + eta),
		0.25 * (1 - xi) * (1 + eta),
	}
}

func ShapeDerivatives(xi, eta float64) (dNdXi, dNdEta [4]float64) {
	dNdXi = [4]float64{
		-0.25 * (1 - eta),
		0.25 * (1 - eta),
		0.25 * (1 + eta),
		-0.25 * (1 + eta),
	}
	dNdEta = [4]float64{
		-0.25 * (1 - xi),
		-0.25 * (1 + xi),
		0.25 * (1 + xi),
		0.25 * (1 - xi),
	}
	return
}
