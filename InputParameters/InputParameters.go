package InputParameters

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ghodss/yaml"

	"github.com/Gorocy/Finite-Element-Method/utils"
)

const DefaultIntegrationOrder = 4

// Parameters of a transient heat conduction run, from the mesh file header or a YAML file
type HeatParameters struct {
	SimulationTime     float64 `json:"SimulationTime"`
	SimulationStepTime float64 `json:"SimulationStepTime"`
	Conductivity       float64 `json:"Conductivity"`
	Alfa               float64 `json:"Alfa"` // Convective heat transfer coefficient
	Tot                float64 `json:"Tot"`  // Ambient temperature
	InitialTemp        float64 `json:"InitialTemp"`
	Density            float64 `json:"Density"`
	SpecificHeat       float64 `json:"SpecificHeat"`
	NodesNumber        int     `json:"NodesNumber"`
	ElementsNumber     int     `json:"ElementsNumber"`
	IntegrationOrder   int     `json:"IntegrationOrder"`
	present            map[string]bool // YAML keys seen by Parse
}

// Keys as they appear in the text mesh format, in print order
var ParameterKeys = []string{
	"SimulationTime",
	"SimulationStepTime",
	"Conductivity",
	"Alfa",
	"Tot",
	"InitialTemp",
	"Density",
	"SpecificHeat",
	"Nodes number",
	"Elements number",
}

const IntegrationOrderKey = "IntegrationOrder"

var yamlNames = map[string]string{
	"Nodes number":    "NodesNumber",
	"Elements number": "ElementsNumber",
}

func yamlName(key string) string {
	if name, ok := yamlNames[key]; ok {
		return name
	}
	return key
}

func (hp *HeatParameters) floatFields() map[string]*float64 {
	return map[string]*float64{
		"SimulationTime":     &hp.SimulationTime,
		"SimulationStepTime": &hp.SimulationStepTime,
		"Conductivity":       &hp.Conductivity,
		"Alfa":               &hp.Alfa,
		"Tot":                &hp.Tot,
		"InitialTemp":        &hp.InitialTemp,
		"Density":            &hp.Density,
		"SpecificHeat":       &hp.SpecificHeat,
	}
}

func (hp *HeatParameters) intFields() map[string]*int {
	return map[string]*int{
		"Nodes number":      &hp.NodesNumber,
		"Elements number":   &hp.ElementsNumber,
		IntegrationOrderKey: &hp.IntegrationOrder,
	}
}

// FromKeyValues converts the flat key/value header of a mesh file, every key but the integration order is required
func FromKeyValues(kv map[string]string) (hp *HeatParameters, err error) {
	hp = &HeatParameters{IntegrationOrder: DefaultIntegrationOrder}
	for _, key := range ParameterKeys {
		if _, ok := kv[key]; !ok {
			return nil, fmt.Errorf("missing required parameter %q", key)
		}
	}
	for key, ptr := range hp.floatFields() {
		if *ptr, err = strconv.ParseFloat(kv[key], 64); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
	}
	for key, ptr := range hp.intFields() {
		val, ok := kv[key]
		if !ok {
			continue
		}
		if *ptr, err = strconv.Atoi(val); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", key, err)
		}
	}
	return
}

// Parse decodes YAML into the receiver and remembers which keys the document set
func (hp *HeatParameters) Parse(data []byte) (err error) {
	var (
		raw map[string]interface{}
	)
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return
	}
	if err = yaml.Unmarshal(data, hp); err != nil {
		return
	}
	if hp.present == nil {
		hp.present = make(map[string]bool, len(raw))
	}
	for key := range raw {
		hp.present[key] = true
	}
	return
}

// IsSet reports whether a parsed document carried key, for values not built by Parse a non zero value counts as set
func (hp *HeatParameters) IsSet(key string) bool {
	if hp.present != nil {
		return hp.present[yamlName(key)]
	}
	if ptr, ok := hp.floatFields()[key]; ok {
		return *ptr != 0
	}
	if ptr, ok := hp.intFields()[key]; ok {
		return *ptr != 0
	}
	return false
}

// Merge copies every field set in override into the receiver, zero values included
func (hp *HeatParameters) Merge(override *HeatParameters) {
	if override == nil {
		return
	}
	of := override.floatFields()
	for key, ptr := range hp.floatFields() {
		if override.IsSet(key) {
			*ptr = *of[key]
		}
	}
	oi := override.intFields()
	for key, ptr := range hp.intFields() {
		if override.IsSet(key) {
			*ptr = *oi[key]
		}
	}
}

func (hp *HeatParameters) Validate() (err error) {
	switch {
	case !(hp.SimulationStepTime > 0):
		err = fmt.Errorf("SimulationStepTime must be positive, have %v", hp.SimulationStepTime)
	case hp.SimulationTime < 0 || math.IsNaN(hp.SimulationTime):
		err = fmt.Errorf("SimulationTime must not be negative, have %v", hp.SimulationTime)
	case hp.NodesNumber < 1:
		err = fmt.Errorf("Nodes number must be positive, have %d", hp.NodesNumber)
	case hp.ElementsNumber < 1:
		err = fmt.Errorf("Elements number must be positive, have %d", hp.ElementsNumber)
	case hp.IntegrationOrder < 1 || hp.IntegrationOrder > 5:
		err = fmt.Errorf("IntegrationOrder must be in 1..5, have %d", hp.IntegrationOrder)
	}
	return
}

// Steps is the number of implicit steps a run takes, floor(SimulationTime/SimulationStepTime)
func (hp *HeatParameters) Steps() (n int) {
	if !(hp.SimulationStepTime > 0) || !(hp.SimulationTime > 0) {
		return 0
	}
	return int(math.Floor(hp.SimulationTime/hp.SimulationStepTime + utils.NODETOL))
}

// StepTime is the elapsed time at the end of step i, counting from 1
func (hp *HeatParameters) StepTime(i int) float64 {
	return float64(i) * hp.SimulationStepTime
}

func (hp *HeatParameters) Print(w io.Writer) {
	get := func(key string) string {
		if ptr, ok := hp.floatFields()[key]; ok {
			return strconv.FormatFloat(*ptr, 'g', -1, 64)
		}
		return strconv.Itoa(*hp.intFields()[key])
	}
	for _, key := range ParameterKeys {
		fmt.Fprintf(w, "%s: %s\n", key, get(key))
	}
	fmt.Fprintf(w, "%s: %d\n", IntegrationOrderKey, hp.IntegrationOrder)
}
