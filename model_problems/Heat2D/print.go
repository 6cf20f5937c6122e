package Heat2D

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

func Separator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 111))
}

func (c *Heat2D) PrintParameters(w io.Writer) {
	c.Params.Print(w)
}

func (c *Heat2D) PrintGrid(w io.Writer) {
	Separator(w)
	c.Grid.Print(w)
	Separator(w)
}

// PrintGlobals dumps the assembled system, C before and after division by the time step
func (c *Heat2D) PrintGlobals(w io.Writer) {
	if c.Global == nil {
		fmt.Fprintln(w, "global system not assembled")
		return
	}
	g := c.Global
	fmt.Fprintf(w, "\n Global H matrix\n%v\n", mat.Formatted(g.H.M, mat.Squeeze()))
	fmt.Fprintf(w, "\n Global P vector\n%v\n", mat.Formatted(g.P.V.T(), mat.Squeeze()))
	fmt.Fprintf(w, "\n Global C matrix\n%v\n", mat.Formatted(g.CRaw.M, mat.Squeeze()))
	fmt.Fprintf(w, "\n Global C matrix divided by dtau\n%v\n", mat.Formatted(g.C.M, mat.Squeeze()))
}

// PrintSteps writes one row per step with every nodal temperature
func PrintSteps(w io.Writer, steps []Step) {
	if len(steps) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprint(tw, "Time\t")
	for i := range steps[0].T {
		fmt.Fprintf(tw, "Node %d\t", i+1)
	}
	fmt.Fprintln(tw)
	for _, s := range steps {
		fmt.Fprintf(tw, "%s\t", s.Label)
		for _, v := range s.T {
			fmt.Fprintf(tw, "%.2f\t", v)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func PrintMinMax(w io.Writer, steps []Step) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(tw, "Time\tMin\tMax\t")
	for _, s := range steps {
		fmt.Fprintf(tw, "%s\tMin: %.9f\tMax: %.9f\t\n", s.Label, s.Min, s.Max)
	}
	tw.Flush()
}

// PrintStep is the per step progress line
func PrintStep(w io.Writer, s Step) {
	fmt.Fprintf(w, "time: %v min: %v max: %v\n", s.Time, s.Min, s.Max)
}
