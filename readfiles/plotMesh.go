package readfiles

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Gorocy/Finite-Element-Method/mesh"
)

// PlotMesh draws every element outline, boundary condition nodes are marked when plotPoints is set
func PlotMesh(g *mesh.Grid, plotPoints bool, file string) (err error) {
	var (
		black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
		red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	)
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Mesh: %d nodes, %d elements", len(g.Nodes), len(g.Elements))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	for k := range g.Elements {
		var (
			nodes [4]mesh.Node
			line  *plotter.Line
		)
		if nodes, err = g.ElementNodes(k); err != nil {
			return
		}
		outline := make(plotter.XYs, 5)
		for i := 0; i < 5; i++ {
			n := nodes[i%4]
			outline[i].X, outline[i].Y = n.X, n.Y
		}
		if line, err = plotter.NewLine(outline); err != nil {
			return
		}
		line.Color = black
		p.Add(line)
	}
	if plotPoints {
		var (
			bcPts   plotter.XYs
			scatter *plotter.Scatter
		)
		for _, n := range g.Nodes {
			if n.BC.IsBoundary() {
				bcPts = append(bcPts, plotter.XY{X: n.X, Y: n.Y})
			}
		}
		if len(bcPts) != 0 {
			if scatter, err = plotter.NewScatter(bcPts); err != nil {
				return
			}
			scatter.GlyphStyle.Color = red
			scatter.GlyphStyle.Shape = draw.CircleGlyph{}
			p.Add(scatter)
			p.Legend.Add("BC nodes", scatter)
		}
	}
	if err = p.Save(6*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("unable to save mesh plot %s: %w", file, err)
	}
	return
}
