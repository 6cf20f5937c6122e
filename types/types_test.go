package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Test packed int for edge labeling
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.NodeIDs(false))

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.NodeIDs(false))
		assert.Equal(t, [2]int{100, 1}, en.NodeIDs(true))

		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 2}) })
	}
	{ // Edge directions
		assert.Equal(t, "Bottom", Bottom.String())
		assert.Equal(t, "Left", Left.String())
		assert.Equal(t, [2]int{3, 0}, Left.LocalNodes())
		assert.Equal(t, [2]int{1, 2}, Right.LocalNodes())
		assert.Equal(t, "EdgeDirection(7)", EdgeDirection(7).String())
	}
	{ // Boundary tags
		assert.False(t, BCNone.IsBoundary())
		assert.True(t, BCConvection.IsBoundary())
		assert.True(t, BCConvection.Matches(BCConvection))
		assert.False(t, BCNone.Matches(BCNone))
		assert.False(t, BCConvection.Matches(BCTag(2)))
		assert.Equal(t, "Group3", BCTag(3).String())
		assert.Equal(t, BCConvection, BCNameMap["convection"])
	}
}
