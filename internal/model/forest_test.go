// internal/model/forest_test.go
package model

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableDataset builds a 3-class problem where class c clusters around
// (c*10, c*10) with small noise.
func separableDataset(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	var rows [][]float64
	var labels []int
	for c := 0; c < 3; c++ {
		for i := 0; i < n; i++ {
			rows = append(rows, []float64{
				float64(c)*10 + rng.Float64(),
				float64(c)*10 + rng.Float64(),
			})
			labels = append(labels, c)
		}
	}
	return rows, labels
}

func smallParams() ForestParams {
	return ForestParams{
		Trees:           10,
		MaxDepth:        6,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Seed:            7,
	}
}

func TestForestFitAndPredict(t *testing.T) {
	rows, labels := separableDataset(30, 1)
	forest := NewRandomForest(smallParams())
	require.NoError(t, forest.Fit(rows, labels, 3))
	require.True(t, forest.IsTrained())

	for c := 0; c < 3; c++ {
		probs := forest.PredictProba([]float64{float64(c) * 10, float64(c) * 10})
		require.Len(t, probs, 3)

		best := 0
		for i := range probs {
			if probs[i] > probs[best] {
				best = i
			}
		}
		assert.Equal(t, c, best)
	}
}

func TestForestProbabilitiesAreDistribution(t *testing.T) {
	rows, labels := separableDataset(30, 2)
	forest := NewRandomForest(smallParams())
	require.NoError(t, forest.Fit(rows, labels, 3))

	probs := forest.PredictProba([]float64{5, 5})
	sum := 0.0
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestForestDeterministicForFixedSeed(t *testing.T) {
	rows, labels := separableDataset(20, 3)

	a := NewRandomForest(smallParams())
	require.NoError(t, a.Fit(rows, labels, 3))
	b := NewRandomForest(smallParams())
	require.NoError(t, b.Fit(rows, labels, 3))

	x := []float64{12, 13}
	assert.Equal(t, a.PredictProba(x), b.PredictProba(x))
}

func TestForestFitErrors(t *testing.T) {
	forest := NewRandomForest(smallParams())

	assert.Error(t, forest.Fit(nil, nil, 3))
	assert.Error(t, forest.Fit([][]float64{{1}}, []int{0, 1}, 3))
	assert.Error(t, forest.Fit([][]float64{{1}, {2}}, []int{0, 0}, 1))
}

func TestForestSurvivesSerialization(t *testing.T) {
	rows, labels := separableDataset(20, 4)
	forest := NewRandomForest(smallParams())
	require.NoError(t, forest.Fit(rows, labels, 3))

	data, err := json.Marshal(forest)
	require.NoError(t, err)

	var back RandomForest
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.IsTrained())

	x := []float64{21, 20}
	assert.Equal(t, forest.PredictProba(x), back.PredictProba(x))
}

func TestUntrainedForestReturnsZeros(t *testing.T) {
	forest := NewRandomForest(smallParams())
	forest.Classes = 3
	probs := forest.PredictProba([]float64{1, 2})
	assert.Equal(t, []float64{0, 0, 0}, probs)
}
