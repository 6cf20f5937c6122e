package Heat2D

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/assembly"
	"github.com/Gorocy/Finite-Element-Method/element"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/solver"
	"github.com/Gorocy/Finite-Element-Method/utils"
)

/*
Transient heat conduction in 2D with convective boundaries:

	ρ c ∂T/∂t = ∇⋅(k ∇T),   -k ∂T/∂n = α (T - T∞) on tagged edges

Galerkin discretization on bilinear quadrilaterals gives

	C dT/dt + (H + HBC) T = P

which is advanced with implicit Euler

	(C/Δτ + H) T(n+1) = (C/Δτ) T(n) + P

H here already holds the convective boundary term HBC.
*/

type State uint8

const (
	Initializing State = iota
	Stepping
	Done
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Stepping:
		return "Stepping"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Step is the solution after one implicit step
type Step struct {
	Index    int
	Time     float64
	Label    string
	T        []float64
	Min, Max float64
}

type Heat2D struct {
	Grid   *mesh.Grid
	Params *InputParameters.HeatParameters
	Ref    *element.Reference
	Locals []*element.Local
	Global *assembly.Global
	T      utils.Vector // Current nodal temperatures
	state  State
}

// NewHeat2D sets up a run, order 0 takes the integration order from the parameters
func NewHeat2D(grid *mesh.Grid, params *InputParameters.HeatParameters, order int) (c *Heat2D, err error) {
	var (
		p = *params
	)
	if order != 0 {
		p.IntegrationOrder = order
	}
	if p.IntegrationOrder == 0 {
		p.IntegrationOrder = InputParameters.DefaultIntegrationOrder
	}
	if err = p.Validate(); err != nil {
		return
	}
	if err = grid.Validate(); err != nil {
		return
	}
	if len(grid.Nodes) != p.NodesNumber || len(grid.Elements) != p.ElementsNumber {
		err = fmt.Errorf("grid has %d nodes and %d elements, parameters declare %d and %d",
			len(grid.Nodes), len(grid.Elements), p.NodesNumber, p.ElementsNumber)
		return
	}
	c = &Heat2D{
		Grid:   grid,
		Params: &p,
		state:  Initializing,
	}
	if c.Ref, err = element.NewReference(p.IntegrationOrder); err != nil {
		return nil, err
	}
	return
}

func (c *Heat2D) State() State { return c.state }

func (c *Heat2D) Material() element.Material {
	return element.Material{
		Conductivity: c.Params.Conductivity,
		Density:      c.Params.Density,
		SpecificHeat: c.Params.SpecificHeat,
		Alfa:         c.Params.Alfa,
		Tot:          c.Params.Tot,
	}
}

// Initialize computes every local contribution, assembles the global system and divides C by the time step
func (c *Heat2D) Initialize() (err error) {
	if c.state != Initializing {
		return fmt.Errorf("initialize called in state %s", c.state)
	}
	var (
		K  = len(c.Grid.Elements)
		N  = len(c.Grid.Nodes)
		mt = c.Material()
	)
	c.Locals = make([]*element.Local, K)
	for k := 0; k < K; k++ {
		var (
			q  element.Quad
			lc *element.Local
		)
		if q, err = c.Grid.Quad(k); err != nil {
			return
		}
		if lc, err = element.ComputeLocal(c.Ref, q, mt); err != nil {
			return fmt.Errorf("local matrices: %w", err)
		}
		c.Locals[k] = lc
	}
	c.Global = assembly.NewGlobal(N)
	if err = c.Global.ScatterAll(c.Locals); err != nil {
		return
	}
	if err = c.Global.DivideCapacity(c.Params.SimulationStepTime); err != nil {
		return
	}
	c.Global.Freeze()
	c.T = utils.NewVectorConst(N, c.Params.InitialTemp)
	c.state = Stepping
	return
}

/*
Solve takes floor(SimulationTime/Δτ) steps, step i ending at elapsed time i·Δτ. Each
step solves the dense system and records a fresh solution vector, onStep (if not nil) sees every
step as it completes.
*/
func (c *Heat2D) Solve(onStep func(Step)) (steps []Step, err error) {
	if c.state == Initializing {
		if err = c.Initialize(); err != nil {
			return
		}
	}
	if c.state != Stepping {
		return nil, fmt.Errorf("solve called in state %s", c.state)
	}
	var (
		A      utils.Matrix
		b      utils.Vector
		x      []float64
		nSteps = c.Params.Steps()
	)
	if A, err = c.Global.SystemMatrix(); err != nil {
		return
	}
	A.SetReadOnly("A")
	for i := 1; i <= nSteps; i++ {
		Time := c.Params.StepTime(i)
		if b, err = c.Global.RightHandSide(c.T); err != nil {
			return
		}
		if x, err = solver.GaussJordan(A, b.Data()); err != nil {
			return steps, fmt.Errorf("time %v: %w", Time, err)
		}
		step := Step{
			Index: i,
			Time:  Time,
			Label: "Time " + strconv.FormatFloat(Time, 'g', -1, 64),
			T:     x,
			Min:   floats.Min(x),
			Max:   floats.Max(x),
		}
		steps = append(steps, step)
		if onStep != nil {
			onStep(step)
		}
		c.T = utils.NewVector(len(x), x)
	}
	c.state = Done
	return
}
