package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservedOrder(t *testing.T) {
	// Error halving by 4 each level is second order
	f := []float64{1 + 1, 1 + 0.25, 1 + 0.0625}
	p := ObservedOrder(f)
	require.Equal(t, 1, len(p))
	assert.InDelta(t, 2., p[0], 1.e-12)
	assert.True(t, math.IsInf(ObservedOrder([]float64{1, 2, 2})[0], 1))
	assert.Nil(t, ObservedOrder([]float64{1, 2}))
}

func TestStudyCSVRoundTrip(t *testing.T) {
	cs, err := RunStudy(plateParameters(), 2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 5, 9}, cs.numPTS)
	for i := range cs.numPTS {
		assert.True(t, cs.TMin[i] < cs.TMax[i])
		assert.True(t, cs.TMax[i] < 1200)
	}
	var buf bytes.Buffer
	require.NoError(t, cs.WriteCSV(&buf))
	cs2, err := parseCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, cs.numPTS, cs2.numPTS)
	assert.Equal(t, cs.TMax, cs2.TMax)
	assert.Equal(t, 2, cs2.order)

	buf.Reset()
	cs2.Print(&buf)
	assert.Contains(t, buf.String(), "observed order at 9 points")

	_, err = parseCSV(bytes.NewBufferString("title,numPTS,order,Tmin,Tmax\n"))
	assert.Error(t, err)
}
