// internal/model/artifact_test.go
package model

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "careermatch/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArtifact(t *testing.T) *Artifact {
	t.Helper()

	rng := rand.New(rand.NewSource(1))
	rows := make([][]float64, 0, 40)
	labels := make([]int, 0, 40)
	for c := 0; c < 2; c++ {
		for i := 0; i < 20; i++ {
			rows = append(rows, []float64{float64(c)*5 + rng.Float64(), float64(c)*5 + rng.Float64(), 0})
			labels = append(labels, c)
		}
	}

	forest := NewRandomForest(smallParams())
	require.NoError(t, forest.Fit(rows, labels, 2))

	return &Artifact{
		Version:      "test-1",
		TrainingDate: time.Now().UTC(),
		IsTrained:    true,
		Subjects:     []string{"Mathematics"},
		InterestMap:  map[int][]string{1: {"analytical_thinking"}},
		FeatureNames: []string{"f0", "f1", "f2"},
		Careers:      []string{"Nurse", "Teacher"},
		Labels:       FitLabels([]string{"Nurse", "Teacher"}),
		Scaler:       FitScaler(rows),
		Forest:       forest,
		Performance: Performance{
			TrainAccuracy: 1, TestAccuracy: 1,
			CareerCount: 2, FeatureCount: 3, TrainingSamples: 40,
		},
	}
}

func TestArtifactValidate(t *testing.T) {
	assert.NoError(t, validArtifact(t).Validate())
}

func TestArtifactValidateRejectsPartial(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Artifact)
	}{
		{"untrained flag", func(a *Artifact) { a.IsTrained = false }},
		{"missing version", func(a *Artifact) { a.Version = "" }},
		{"missing subjects", func(a *Artifact) { a.Subjects = nil }},
		{"missing interest map", func(a *Artifact) { a.InterestMap = nil }},
		{"missing feature names", func(a *Artifact) { a.FeatureNames = nil }},
		{"missing careers", func(a *Artifact) { a.Careers = nil }},
		{"missing labels", func(a *Artifact) { a.Labels = nil }},
		{"missing scaler", func(a *Artifact) { a.Scaler = nil }},
		{"missing classifier", func(a *Artifact) { a.Forest = nil }},
		{"scaler width mismatch", func(a *Artifact) { a.FeatureNames = []string{"f0"} }},
		{"label/career mismatch", func(a *Artifact) { a.Careers = append(a.Careers, "Judge") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArtifact(t)
			tt.mutate(a)
			err := a.Validate()
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeArtifactInvalid, apperrors.CodeOf(err))
		})
	}
}

func TestArtifactSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	a := validArtifact(t)
	require.NoError(t, a.Save(path))

	back, err := LoadArtifact(path)
	require.NoError(t, err)

	assert.Equal(t, a.Version, back.Version)
	assert.Equal(t, a.FeatureNames, back.FeatureNames)
	assert.Equal(t, a.Careers, back.Careers)
	assert.Equal(t, a.Scaler.Mean, back.Scaler.Mean)

	x := []float64{0.5, 0.5, 0}
	assert.Equal(t, a.Forest.PredictProba(x), back.Forest.PredictProba(x))

	ord, err := back.Labels.Encode("Teacher")
	require.NoError(t, err)
	assert.Equal(t, 1, ord)
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadArtifactRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadArtifact(path)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeArtifactInvalid, apperrors.CodeOf(err))
}
