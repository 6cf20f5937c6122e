package types

import (
	"fmt"
	"math"
)

/*
EdgeKey is an always positive number that stores an edge's node ids in a way that can be compared
An edge between nodes [4] and [0] will always be stored as [0,4], in the ascending order of the id values
*/
type EdgeKey uint64

func NewEdgeKey(ids [2]int) (packed EdgeKey) {
	var (
		limit = math.MaxUint32
	)
	for _, id := range ids {
		if id < 0 || id > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				ids[0], ids[1]))
		}
	}
	i1, i2 := ids[0], ids[1]
	if i1 > i2 {
		i1, i2 = i2, i1
	}
	packed = EdgeKey(uint64(i1) | uint64(i2)<<32)
	return
}

// NodeIDs returns the ids in ascending order, reversed if rev is set
func (ek EdgeKey) NodeIDs(rev bool) (ids [2]int) {
	ids[0] = int(ek & math.MaxUint32)
	ids[1] = int(ek >> 32)
	if rev {
		ids[0], ids[1] = ids[1], ids[0]
	}
	return
}

// EdgeDirection names the local edges of a quadrilateral, edge k joins local nodes k and (k+1)%4
type EdgeDirection uint8

const (
	Bottom EdgeDirection = iota
	Right
	Top
	Left
)

var EdgeDirections = [4]EdgeDirection{Bottom, Right, Top, Left}

// LocalNodes returns the local node indices joined by the edge
func (ed EdgeDirection) LocalNodes() [2]int {
	return [2]int{int(ed), (int(ed) + 1) % 4}
}

func (ed EdgeDirection) String() string {
	switch ed {
	case Bottom:
		return "Bottom"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("EdgeDirection(%d)", int(ed))
}
