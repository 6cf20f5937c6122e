package mesh

import (
	"fmt"

	"github.com/Gorocy/Finite-Element-Method/utils"
)

/*
NewRectangularGrid builds a W x H structured grid of nW x nH nodes with the origin at the bottom left.
Nodes are numbered column by column (bottom to top, then left to right), elements likewise.
*/
func NewRectangularGrid(W, H float64, nW, nH int) (g *Grid, err error) {
	if W < utils.NODETOL || H < utils.NODETOL {
		err = fmt.Errorf("grid size must be positive, have %v x %v", W, H)
		return
	}
	if nW < 2 || nH < 2 {
		err = fmt.Errorf("need at least 2 nodes in each direction, have %d x %d", nW, nH)
		return
	}
	g = NewGrid(nW*nH, (nW-1)*(nH-1))
	for i := 0; i < nW; i++ {
		for j := 0; j < nH; j++ {
			g.AddNode(Node{
				ID: i*nH + j + 1,
				X:  W * float64(i) / float64(nW-1),
				Y:  H * float64(j) / float64(nH-1),
			})
		}
	}
	for i := 0; i < nW-1; i++ {
		for j := 0; j < nH-1; j++ {
			n1 := i*nH + j + 1
			g.AddElement(Element{
				ID:      i*(nH-1) + j + 1,
				NodeIDs: [4]int{n1, n1 + nH, n1 + nH + 1, n1 + 1},
			})
		}
	}
	return
}
