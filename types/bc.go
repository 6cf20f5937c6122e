package types

import "fmt"

// BCTag marks boundary group membership of a node, zero means no boundary condition
type BCTag int

const (
	BCNone BCTag = iota
	BCConvection
)

var BCNameMap = map[string]BCTag{
	"none":       BCNone,
	"convection": BCConvection,
	"conv":       BCConvection,
}

func (bc BCTag) IsBoundary() bool { return bc > BCNone }

// Matches is true when both tags name the same boundary group
func (bc BCTag) Matches(other BCTag) bool {
	return bc.IsBoundary() && bc == other
}

func (bc BCTag) String() string {
	switch bc {
	case BCNone:
		return "None"
	case BCConvection:
		return "Convection"
	}
	return fmt.Sprintf("Group%d", int(bc))
}
