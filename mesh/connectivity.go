package mesh

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/Gorocy/Finite-Element-Method/types"
)

/*
Connectivity holds the element to node incidence E (K x N, one entry per element corner) and the
node adjacency A = E^T E. A(i,j) counts the elements sharing nodes i and j, its pattern is the
pattern of every global matrix. Node ids map to row/column id-1.
*/
type Connectivity struct {
	K, N      int
	Incidence *sparse.CSR
	Adjacency *sparse.CSR
	grid      *Grid
}

func NewConnectivity(g *Grid) (c *Connectivity, err error) {
	if err = g.Validate(); err != nil {
		return
	}
	var (
		K = len(g.Elements)
		N = len(g.Nodes)
	)
	SpEToN_Tmp := sparse.NewDOK(K, N)
	for k, e := range g.Elements {
		for _, id := range e.NodeIDs {
			SpEToN_Tmp.Set(k, id-1, 1)
		}
	}
	SpEToN := SpEToN_Tmp.ToCSR()
	SpNToN := sparse.NewCSR(N, N, nil, nil, nil)
	SpNToN.Mul(SpEToN.T(), SpEToN)
	c = &Connectivity{
		K:         K,
		N:         N,
		Incidence: SpEToN,
		Adjacency: SpNToN,
		grid:      g,
	}
	return
}

// NNZ is the number of structurally nonzero global matrix entries
func (c *Connectivity) NNZ() int { return c.Adjacency.NNZ() }

// Bandwidth is the largest |i-j| over the nonzero global entries
func (c *Connectivity) Bandwidth() (bw int) {
	c.Adjacency.DoNonZero(func(i, j int, v float64) {
		d := i - j
		if d < 0 {
			d = -d
		}
		if d > bw {
			bw = d
		}
	})
	return
}

// ExteriorEdges returns the edges owned by exactly one element, sorted by key
func (c *Connectivity) ExteriorEdges() (edges []types.EdgeKey) {
	var (
		seen = make(map[types.EdgeKey]bool)
	)
	for _, e := range c.grid.Elements {
		for _, dir := range types.EdgeDirections {
			ln := dir.LocalNodes()
			n0, n1 := e.NodeIDs[ln[0]], e.NodeIDs[ln[1]]
			ek := types.NewEdgeKey([2]int{n0, n1})
			if seen[ek] {
				continue
			}
			seen[ek] = true
			if c.Adjacency.At(n0-1, n1-1) == 1 {
				edges = append(edges, ek)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return
}

// TagExterior sets tag on every node of the outer boundary
func (g *Grid) TagExterior(tag types.BCTag) (count int, err error) {
	var (
		c   *Connectivity
		ids []int
	)
	if c, err = NewConnectivity(g); err != nil {
		err = fmt.Errorf("unable to tag exterior: %w", err)
		return
	}
	onBoundary := make(map[int]bool)
	for _, ek := range c.ExteriorEdges() {
		for _, id := range ek.NodeIDs(false) {
			if !onBoundary[id] {
				onBoundary[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	count = g.SetBC(ids, tag)
	return
}
