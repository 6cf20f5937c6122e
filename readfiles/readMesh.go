package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Gorocy/Finite-Element-Method/InputParameters"
	"github.com/Gorocy/Finite-Element-Method/mesh"
	"github.com/Gorocy/Finite-Element-Method/types"
)

// Only bilinear quadrilaterals are supported
const QuadElementType = "DC2D4"

type section uint8

const (
	sectionHeader section = iota
	sectionNode
	sectionElement
	sectionBC
	sectionOther
)

/*
MeshInput is the content of a text mesh file:

	SimulationTime 500
	...
	Nodes number 16
	Elements number 9
	*Node
	  1, 0.0, 0.0
	*Element, type=DC2D4
	  1, 1, 2, 6, 5
	*BC
	1, 2, 3, 4

Header lines are "Key value" or "Two words value". The BC section lists node ids separated by
commas and may span several lines.
*/
type MeshInput struct {
	Parameters map[string]string
	Nodes      []mesh.Node
	Elements   []mesh.Element
	BCNodes    []int // Sorted, unique
}

func ReadMeshFile(filename string, verbose bool) (mi *MeshInput, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading mesh file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if mi, err = ReadMesh(file); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if verbose {
		fmt.Printf("Read %d nodes, %d elements, %d boundary nodes\n",
			len(mi.Nodes), len(mi.Elements), len(mi.BCNodes))
	}
	return
}

func ReadMesh(r io.Reader) (mi *MeshInput, err error) {
	var (
		reader = bufio.NewReader(r)
		sec    = sectionHeader
		lineNo int
		bcSet  = make(map[int]bool)
	)
	mi = &MeshInput{Parameters: make(map[string]string)}
	for {
		line, rerr := reader.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, rerr
		}
		lineNo++
		line = strings.TrimSpace(line)
		if line != "" {
			if strings.HasPrefix(line, "*") {
				if sec, err = sectionOf(line); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			} else {
				switch sec {
				case sectionHeader:
					readParameter(line, mi.Parameters)
				case sectionNode:
					err = mi.readNode(line)
				case sectionElement:
					err = mi.readElement(line)
				case sectionBC:
					err = readBCs(line, bcSet)
				}
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	for id := range bcSet {
		mi.BCNodes = append(mi.BCNodes, id)
	}
	sort.Ints(mi.BCNodes)
	return
}

func sectionOf(line string) (sec section, err error) {
	var (
		fields = strings.Split(line, ",")
		name   = strings.ToLower(strings.TrimSpace(fields[0]))
	)
	switch name {
	case "*node":
		sec = sectionNode
	case "*element":
		sec = sectionElement
		for _, f := range fields[1:] {
			kv := strings.SplitN(strings.TrimSpace(f), "=", 2)
			if len(kv) == 2 && strings.EqualFold(kv[0], "type") && !strings.EqualFold(kv[1], QuadElementType) {
				err = fmt.Errorf("unsupported element type %s, need %s", kv[1], QuadElementType)
			}
		}
	case "*bc":
		sec = sectionBC
	default:
		sec = sectionOther
	}
	return
}

func readParameter(line string, params map[string]string) {
	var (
		fields = strings.Fields(line)
	)
	switch len(fields) {
	case 1:
		params[fields[0]] = ""
	case 2:
		params[fields[0]] = fields[1]
	default:
		params[fields[0]+" "+fields[1]] = fields[2]
	}
}

func splitInts(line string) (vals []int, err error) {
	for _, f := range strings.Split(line, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		var v int
		if v, err = strconv.Atoi(f); err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return
}

func (mi *MeshInput) readNode(line string) (err error) {
	var (
		fields = strings.Split(line, ",")
		n      mesh.Node
	)
	if len(fields) != 3 {
		return fmt.Errorf("node line needs id, x, y: [%s]", line)
	}
	if n.ID, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return
	}
	if n.X, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64); err != nil {
		return
	}
	if n.Y, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
		return
	}
	mi.Nodes = append(mi.Nodes, n)
	return
}

func (mi *MeshInput) readElement(line string) (err error) {
	var (
		vals []int
	)
	if vals, err = splitInts(line); err != nil {
		return
	}
	if len(vals) != 5 {
		return fmt.Errorf("element line needs id and 4 node ids: [%s]", line)
	}
	e := mesh.Element{ID: vals[0]}
	copy(e.NodeIDs[:], vals[1:])
	mi.Elements = append(mi.Elements, e)
	return
}

func readBCs(line string, bcSet map[int]bool) (err error) {
	var (
		vals []int
	)
	if vals, err = splitInts(line); err != nil {
		return
	}
	for _, id := range vals {
		bcSet[id] = true
	}
	return
}

func (mi *MeshInput) HeatParameters() (*InputParameters.HeatParameters, error) {
	return InputParameters.FromKeyValues(mi.Parameters)
}

// BuildGrid populates a grid sized by the declared counts and tags every listed BC node
func (mi *MeshInput) BuildGrid(hp *InputParameters.HeatParameters) (g *mesh.Grid, err error) {
	g = mesh.NewGrid(hp.NodesNumber, hp.ElementsNumber)
	for _, n := range mi.Nodes {
		g.AddNode(n)
	}
	for _, e := range mi.Elements {
		g.AddElement(e)
	}
	g.SetBC(mi.BCNodes, types.BCConvection)
	if err = g.Validate(); err != nil {
		return nil, err
	}
	return
}
