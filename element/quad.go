package element

import (
	"math"

	"github.com/Gorocy/Finite-Element-Method/types"
)

// Quad is a 4 node element with the physical data needed for local integration
type Quad struct {
	ID      int
	NodeIDs [4]int
	X, Y    [4]float64
	BC      [4]types.BCTag
}

// EdgeLength is the physical length of a local edge
func (q Quad) EdgeLength(dir types.EdgeDirection) float64 {
	var (
		ln = dir.LocalNodes()
	)
	return math.Hypot(q.X[ln[1]]-q.X[ln[0]], q.Y[ln[1]]-q.Y[ln[0]])
}
