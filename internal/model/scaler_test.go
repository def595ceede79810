// internal/model/scaler_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitScaler(t *testing.T) {
	rows := [][]float64{
		{1, 10, 5},
		{3, 10, 7},
	}
	s := FitScaler(rows)

	require.Equal(t, 3, s.Width())
	assert.InDelta(t, 2.0, s.Mean[0], 1e-9)
	assert.InDelta(t, 1.0, s.Std[0], 1e-9)

	// zero-variance feature keeps std 1 so it scales to exactly 0
	assert.Equal(t, 1.0, s.Std[1])
}

func TestTransformCentersAndScales(t *testing.T) {
	rows := [][]float64{
		{0, 5},
		{2, 5},
		{4, 5},
	}
	s := FitScaler(rows)
	scaled := s.TransformAll(rows)

	for col := 0; col < 2; col++ {
		sum := 0.0
		for _, row := range scaled {
			sum += row[col]
		}
		assert.InDelta(t, 0.0, sum, 1e-9)
	}
	assert.Zero(t, scaled[0][1])
	assert.Zero(t, scaled[2][1])
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	s := FitScaler(rows)

	in := []float64{1, 2}
	_ = s.Transform(in)
	assert.Equal(t, []float64{1, 2}, in)
}

func TestFitScalerEmpty(t *testing.T) {
	s := FitScaler(nil)
	assert.Zero(t, s.Width())
}
