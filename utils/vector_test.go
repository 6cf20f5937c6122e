package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := NewVectorConst(3, 2)
	assert.Equal(t, []float64{2, 2, 2}, v.Data())
	v.AddAt(-1, 1).Add(NewVector(3, []float64{1, 0, 0})).Scale(0.5)
	assert.Equal(t, []float64{1.5, 1, 1.5}, v.Data())
	assert.Equal(t, 1., v.Min())
	assert.Equal(t, 1.5, v.Max())
	assert.Equal(t, 4., v.Sum())
	c := v.Copy().Set(0)
	assert.Equal(t, 1.5, v.AtVec(0))
	assert.Equal(t, 0., c.AtVec(0))
	assert.Panics(t, func() { NewVector(2, []float64{1}) })
	assert.Panics(t, func() { v.Add(NewVector(2)) })
}

func TestVectorMulMatrix(t *testing.T) {
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	v := NewVector(3, []float64{1, 0, -1})
	assert.Equal(t, []float64{-2, -2}, v.MulMatrix(A).Data())
	assert.Equal(t, []float64{1, 0, -1}, v.Data())
	assert.Panics(t, func() { NewVector(2).MulMatrix(A) })
}

func TestVectorReadOnly(t *testing.T) {
	v := NewVectorConst(2, 1)
	v.SetReadOnly("P")
	assert.True(t, v.IsReadOnly())
	assert.Panics(t, func() { v.AddAt(0, 1) })
	assert.Panics(t, func() { v.Set(0) })
	assert.Panics(t, func() { v.Scale(2) })
	assert.Panics(t, func() { v.Add(NewVector(2)) })
	assert.Equal(t, []float64{1, 1}, v.Data())
	// Copies are writable
	c := v.Copy().Scale(2)
	assert.Equal(t, 2., c.AtVec(0))
	v.SetWritable()
	v.AddAt(1, 1)
	assert.Equal(t, 2., v.AtVec(1))
}
