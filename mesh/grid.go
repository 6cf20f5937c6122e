package mesh

import (
	"fmt"
	"io"
	"log"

	"github.com/Gorocy/Finite-Element-Method/element"
	"github.com/Gorocy/Finite-Element-Method/types"
)

type Node struct {
	ID   int
	X, Y float64
	BC   types.BCTag
}

// Element references its four nodes by id, counter-clockwise from the bottom left
type Element struct {
	ID      int
	NodeIDs [4]int
}

/*
Grid owns the nodes and elements of a quadrilateral mesh. Nodes are stored in insertion order and
looked up by id through an index map; elements hold node ids only.

The declared counts bound insertion the way the reference program does it: a node or element is
rejected only once the stored list already exceeds the declared count, so one surplus insertion
gets through before anything is rejected. Validate reports the resulting count mismatch.
*/
type Grid struct {
	NodesNumber, ElementsNumber int
	Nodes                       []Node
	Elements                    []Element
	nodeIndex                   map[int]int
}

func NewGrid(nNodes, nElements int) (g *Grid) {
	g = &Grid{
		NodesNumber:    nNodes,
		ElementsNumber: nElements,
		Nodes:          make([]Node, 0, nNodes),
		Elements:       make([]Element, 0, nElements),
		nodeIndex:      make(map[int]int, nNodes),
	}
	return
}

func (g *Grid) AddNode(n Node) (ok bool) {
	if len(g.Nodes) > g.NodesNumber {
		log.Printf("too many nodes, declared %d, rejecting node %d\n", g.NodesNumber, n.ID)
		return false
	}
	if _, dup := g.nodeIndex[n.ID]; dup {
		log.Printf("duplicate node id %d, rejecting\n", n.ID)
		return false
	}
	g.nodeIndex[n.ID] = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return true
}

func (g *Grid) AddElement(e Element) (ok bool) {
	if len(g.Elements) > g.ElementsNumber {
		log.Printf("too many elements, declared %d, rejecting element %d\n", g.ElementsNumber, e.ID)
		return false
	}
	g.Elements = append(g.Elements, e)
	return true
}

func (g *Grid) Node(id int) (n Node, ok bool) {
	var (
		i int
	)
	if i, ok = g.nodeIndex[id]; ok {
		n = g.Nodes[i]
	}
	return
}

// SetBC tags the listed nodes, unknown ids are logged and skipped
func (g *Grid) SetBC(ids []int, tag types.BCTag) (count int) {
	for _, id := range ids {
		i, ok := g.nodeIndex[id]
		if !ok {
			log.Printf("boundary condition on unknown node %d ignored\n", id)
			continue
		}
		g.Nodes[i].BC = tag
		count++
	}
	return
}

// BoundaryNodeIDs returns the ids of every tagged node in storage order
func (g *Grid) BoundaryNodeIDs() (ids []int) {
	for _, n := range g.Nodes {
		if n.BC.IsBoundary() {
			ids = append(ids, n.ID)
		}
	}
	return
}

func (g *Grid) ElementNodes(k int) (nodes [4]Node, err error) {
	if k < 0 || k >= len(g.Elements) {
		err = fmt.Errorf("element index %d out of range [0,%d)", k, len(g.Elements))
		return
	}
	e := g.Elements[k]
	for i, id := range e.NodeIDs {
		n, ok := g.Node(id)
		if !ok {
			err = fmt.Errorf("element %d references unknown node %d", e.ID, id)
			return
		}
		nodes[i] = n
	}
	return
}

// Quad gathers element k for local integration
func (g *Grid) Quad(k int) (q element.Quad, err error) {
	var (
		nodes [4]Node
	)
	if nodes, err = g.ElementNodes(k); err != nil {
		return
	}
	q.ID = g.Elements[k].ID
	for i, n := range nodes {
		q.NodeIDs[i] = n.ID
		q.X[i], q.Y[i] = n.X, n.Y
		q.BC[i] = n.BC
	}
	return
}

/*
Validate checks the grid is usable for global assembly: the stored counts match the declared
counts, node ids are exactly 1..N and every element references known nodes.
*/
func (g *Grid) Validate() (err error) {
	var (
		N = len(g.Nodes)
	)
	if N != g.NodesNumber {
		return fmt.Errorf("grid holds %d nodes, declared %d", N, g.NodesNumber)
	}
	if len(g.Elements) != g.ElementsNumber {
		return fmt.Errorf("grid holds %d elements, declared %d", len(g.Elements), g.ElementsNumber)
	}
	if N == 0 {
		return fmt.Errorf("grid has no nodes")
	}
	for _, n := range g.Nodes {
		if n.ID < 1 || n.ID > N {
			return fmt.Errorf("node id %d outside 1..%d", n.ID, N)
		}
	}
	for _, e := range g.Elements {
		for _, id := range e.NodeIDs {
			if _, ok := g.nodeIndex[id]; !ok {
				return fmt.Errorf("element %d references unknown node %d", e.ID, id)
			}
		}
	}
	return
}

func (g *Grid) Print(w io.Writer) {
	fmt.Fprintln(w, "Nodes:")
	for _, n := range g.Nodes {
		bc := "Without BC"
		if n.BC.IsBoundary() {
			bc = fmt.Sprintf("BC %d", int(n.BC))
		}
		fmt.Fprintf(w, "NodeID: %d, x: %v, y: %v, %s\n", n.ID, n.X, n.Y, bc)
	}
	fmt.Fprintln(w, "Elements:")
	for _, e := range g.Elements {
		fmt.Fprintf(w, "Element ID: %d, Nodes: ", e.ID)
		for _, id := range e.NodeIDs {
			n, _ := g.Node(id)
			fmt.Fprintf(w, "%d (%v, %v), ", n.ID, n.X, n.Y)
		}
		fmt.Fprintln(w)
	}
}
