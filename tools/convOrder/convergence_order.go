package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/model_problems/Heat2D"
	"github.com/Gorocy/Finite-Element-Method/types"
)

var (
	csvFile string
	levels  = 4
	order   = 2
)

/*
Runs a mesh refinement study of the convective heating of a square plate, doubling the number of
elements per side at each level, and reports the observed order of convergence of the final
minimum and maximum temperatures. With -csvFile a previously written study is re-read instead.
*/
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	levelsPtr := flag.Int("levels", levels, "number of refinement levels to run")
	orderPtr := flag.Int("order", order, "Gauss-Legendre integration order")
	flag.Parse()
	csvFile, levels, order = *csvFilePtr, *levelsPtr, *orderPtr
	var (
		cs  *ConvergenceStudy
		err error
	)
	if len(csvFile) != 0 {
		fmt.Printf("Input file: %v\n", csvFile)
		cs, err = readCSV(csvFile)
	} else {
		cs, err = RunStudy(plateParameters(), order, levels)
		if err == nil {
			err = cs.WriteCSV(os.Stdout)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cs.Print(os.Stdout)
}

func plateParameters() *InputParameters.HeatParameters {
	return &InputParameters.HeatParameters{
		SimulationTime: 500, SimulationStepTime: 50, Conductivity: 25, Alfa: 300,
		Tot: 1200, InitialTemp: 100, Density: 7800, SpecificHeat: 700,
	}
}

type ConvergenceStudy struct {
	title      string
	order      int
	numPTS     []int
	TMin, TMax []float64
}

func NewConvergenceStudy(title string, order int) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		order: order,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, tMin, tMax float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.TMin = append(cs.TMin, tMin)
	cs.TMax = append(cs.TMax, tMax)
}

// RunStudy solves on grids of 2^l+1 nodes per side for l = 1..levels
func RunStudy(hp *InputParameters.HeatParameters, order, levels int) (cs *ConvergenceStudy, err error) {
	cs = NewConvergenceStudy("square plate", order)
	for l := 1; l <= levels; l++ {
		var (
			n     = 1<<l + 1
			g     *mesh.Grid
			c     *Heat2D.Heat2D
			steps []Heat2D.Step
			p     = *hp
		)
		if g, err = mesh.NewRectangularGrid(0.1, 0.1, n, n); err != nil {
			return
		}
		if _, err = g.TagExterior(types.BCConvection); err != nil {
			return
		}
		p.NodesNumber, p.ElementsNumber = len(g.Nodes), len(g.Elements)
		if c, err = Heat2D.NewHeat2D(g, &p, order); err != nil {
			return
		}
		if steps, err = c.Solve(nil); err != nil {
			return
		}
		last := steps[len(steps)-1]
		cs.Add(n, last.Min, last.Max)
	}
	return
}

// ObservedOrder estimates the convergence rate from three consecutive halvings of the mesh size
func ObservedOrder(f []float64) (p []float64) {
	for i := 2; i < len(f); i++ {
		d1, d2 := math.Abs(f[i-1]-f[i-2]), math.Abs(f[i]-f[i-1])
		if d2 == 0 {
			p = append(p, math.Inf(1))
			continue
		}
		p = append(p, math.Log2(d1/d2))
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	fmt.Fprintf(w, "Title = %s, Order = %d\n", cs.title, cs.order)
	for i := range cs.numPTS {
		fmt.Fprintf(w, "%d, %v, %v\n", cs.numPTS[i], cs.TMin[i], cs.TMax[i])
	}
	pMin, pMax := ObservedOrder(cs.TMin), ObservedOrder(cs.TMax)
	for i := range pMin {
		fmt.Fprintf(w, "observed order at %d points: min %5.2f, max %5.2f\n", cs.numPTS[i+2], pMin[i], pMax[i])
	}
}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"title", "numPTS", "order", "Tmin", "Tmax"}); err != nil {
		return
	}
	for i := range cs.numPTS {
		rec := []string{
			cs.title,
			strconv.Itoa(cs.numPTS[i]),
			strconv.Itoa(cs.order),
			strconv.FormatFloat(cs.TMin[i], 'g', -1, 64),
			strconv.FormatFloat(cs.TMax[i], 'g', -1, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

func readCSV(csvFile string) (cs *ConvergenceStudy, err error) {
	var (
		f *os.File
	)
	if f, err = os.Open(csvFile); err != nil {
		return
	}
	defer f.Close()
	return parseCSV(bufio.NewReader(f))
}

func parseCSV(r io.Reader) (cs *ConvergenceStudy, err error) {
	var (
		records [][]string
	)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 5 {
			return nil, fmt.Errorf("record %d has %d fields, need 5", i, len(rec))
		}
		var (
			npts, n    int
			tMin, tMax float64
		)
		if npts, err = strconv.Atoi(rec[1]); err != nil {
			return
		}
		if n, err = strconv.Atoi(rec[2]); err != nil {
			return
		}
		if tMin, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return
		}
		if tMax, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return
		}
		if cs == nil {
			cs = NewConvergenceStudy(rec[0], n)
		}
		cs.Add(npts, tMin, tMax)
	}
	if cs == nil {
		err = fmt.Errorf("no convergence records")
	}
	return
}
