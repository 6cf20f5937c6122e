package element

import (
	"github.com/Gorocy/Finite-Element-Method/types"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

// BoundaryEdges returns the tag of each local edge, an edge is tagged when both of its nodes carry the same positive tag
func BoundaryEdges(q Quad) (tags [4]types.BCTag) {
	for _, dir := range types.EdgeDirections {
		ln := dir.LocalNodes()
		if q.BC[ln[0]].Matches(q.BC[ln[1]]) {
			tags[dir] = q.BC[ln[0]]
		}
	}
	return
}

/*
EdgePoints maps the 1-D abscissas onto a local edge. The top and left edges run through the
abscissas in reverse to keep a counter-clockwise traversal.
*/
func EdgePoints(ref *Reference, dir types.EdgeDirection) (pts [][2]float64) {
	var (
		x = ref.Scheme.Points
		n = len(x)
	)
	pts = make([][2]float64, n)
	for p := 0; p < n; p++ {
		switch dir {
		case types.Bottom:
			pts[p] = [2]float64{x[p], -1}
		case types.Right:
			pts[p] = [2]float64{1, x[p]}
		case types.Top:
			pts[p] = [2]float64{x[n-1-p], 1}
		case types.Left:
			pts[p] = [2]float64{-1, x[n-1-p]}
		}
	}
	return
}

// LocalHBC integrates alfa * N N^T along every tagged edge
func LocalHBC(ref *Reference, q Quad, alfa float64) (HBC utils.Matrix) {
	var (
		tags = BoundaryEdges(q)
	)
	HBC = utils.NewMatrix(4, 4)
	for _, dir := range types.EdgeDirections {
		if !tags[dir].IsBoundary() {
			continue
		}
		var (
			detJ = q.EdgeLength(dir) / 2
		)
		for p, pt := range EdgePoints(ref, dir) {
			n := ShapeFunctions(pt[0], pt[1])
			HBC.AddOuter(n[:], n[:], alfa*detJ*ref.Scheme.Weights[p])
		}
	}
	return
}

// LocalP integrates alfa * tot * N along every tagged edge
func LocalP(ref *Reference, q Quad, alfa, tot float64) (P utils.Vector) {
	var (
		tags = BoundaryEdges(q)
	)
	P = utils.NewVector(4)
	for _, dir := range types.EdgeDirections {
		if !tags[dir].IsBoundary() {
			continue
		}
		var (
			detJ = q.EdgeLength(dir) / 2
		)
		for p, pt := range EdgePoints(ref, dir) {
			n := ShapeFunctions(pt[0], pt[1])
			for i := 0; i < 4; i++ {
				P.AddAt(i, alfa*tot*detJ*ref.Scheme.Weights[p]*n[i])
			}
		}
	}
	return
}
