package readfiles

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
)

const bcPerLine = 16

// WriteMesh writes the grid and parameters in the format read by ReadMesh
func WriteMesh(w io.Writer, g *mesh.Grid, hp *InputParameters.HeatParameters) (err error) {
	var (
		p = *hp
	)
	p.NodesNumber, p.ElementsNumber = len(g.Nodes), len(g.Elements)
	wr := &errWriter{w: w}
	wr.printf("SimulationTime %s\n", ftoa(p.SimulationTime))
	wr.printf("SimulationStepTime %s\n", ftoa(p.SimulationStepTime))
	wr.printf("Conductivity %s\n", ftoa(p.Conductivity))
	wr.printf("Alfa %s\n", ftoa(p.Alfa))
	wr.printf("Tot %s\n", ftoa(p.Tot))
	wr.printf("InitialTemp %s\n", ftoa(p.InitialTemp))
	wr.printf("Density %s\n", ftoa(p.Density))
	wr.printf("SpecificHeat %s\n", ftoa(p.SpecificHeat))
	wr.printf("Nodes number %d\n", p.NodesNumber)
	wr.printf("Elements number %d\n", p.ElementsNumber)
	if p.IntegrationOrder != 0 {
		wr.printf("%s %d\n", InputParameters.IntegrationOrderKey, p.IntegrationOrder)
	}
	wr.printf("*Node\n")
	for _, n := range g.Nodes {
		wr.printf("%8d, %s, %s\n", n.ID, ftoa(n.X), ftoa(n.Y))
	}
	wr.printf("*Element, type=%s\n", QuadElementType)
	for _, e := range g.Elements {
		wr.printf("%4d, %4d, %4d, %4d, %4d\n", e.ID, e.NodeIDs[0], e.NodeIDs[1], e.NodeIDs[2], e.NodeIDs[3])
	}
	wr.printf("*BC\n")
	ids := g.BoundaryNodeIDs()
	for i := 0; i < len(ids); i += bcPerLine {
		end := i + bcPerLine
		if end > len(ids) {
			end = len(ids)
		}
		strs := make([]string, 0, end-i)
		for _, id := range ids[i:end] {
			strs = append(strs, strconv.Itoa(id))
		}
		wr.printf("%s\n", strings.Join(strs, ", "))
	}
	return wr.err
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
