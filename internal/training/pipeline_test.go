// internal/training/pipeline_test.go
package training

import (
	"testing"

	"careermatch/internal/catalog"
	apperrors "careermatch/internal/common/errors"
	"careermatch/internal/common/logger"
	"careermatch/internal/feature"
	"careermatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPipeline keeps the forest small so the suite stays fast; the pipeline
// logic under test is independent of ensemble size.
func testPipeline(samplesPerCareer int) *Pipeline {
	p := NewPipeline(samplesPerCareer, 0.25, 42, "test", nil, logger.Nop())
	p.ForestParams = model.ForestParams{
		Trees:           5,
		MaxDepth:        8,
		MinSamplesSplit: 4,
		MinSamplesLeaf:  2,
		Seed:            42,
	}
	return p
}

func TestPipelineProducesValidArtifact(t *testing.T) {
	artifact, err := testPipeline(6).Run()
	require.NoError(t, err)
	require.NoError(t, artifact.Validate())

	assert.Equal(t, "test", artifact.Version)
	assert.True(t, artifact.IsTrained)
	assert.Equal(t, catalog.Subjects, artifact.Subjects)
	assert.Equal(t, feature.Names(), artifact.FeatureNames)
	assert.Equal(t, len(catalog.Careers), artifact.Labels.Len())
	assert.Equal(t, len(catalog.Careers), artifact.Performance.CareerCount)
	assert.Equal(t, feature.VectorLen, artifact.Performance.FeatureCount)
}

func TestPipelineSampleCount(t *testing.T) {
	artifact, err := testPipeline(30).Run()
	require.NoError(t, err)

	// 30 samples for each of the 38 careers before the split
	assert.Equal(t, 1140, artifact.Performance.TrainingSamples)
}

func TestPipelineCoversEveryCareer(t *testing.T) {
	artifact, err := testPipeline(4).Run()
	require.NoError(t, err)

	for _, career := range catalog.Careers {
		ord, err := artifact.Labels.Encode(career)
		require.NoError(t, err)
		back, err := artifact.Labels.Decode(ord)
		require.NoError(t, err)
		assert.Equal(t, career, back)
	}
}

func TestPipelineReproducibleForFixedSeed(t *testing.T) {
	a, err := testPipeline(4).Run()
	require.NoError(t, err)
	b, err := testPipeline(4).Run()
	require.NoError(t, err)

	assert.Equal(t, a.Scaler.Mean, b.Scaler.Mean)
	assert.Equal(t, a.Performance.TrainAccuracy, b.Performance.TrainAccuracy)
	assert.Equal(t, a.Performance.TestAccuracy, b.Performance.TestAccuracy)
}

func TestPipelineRejectsDegenerateSampleCount(t *testing.T) {
	for _, samples := range []int{0, 1} {
		_, err := testPipeline(samples).Run()
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeTrainingDataDegenerate, apperrors.CodeOf(err))
	}
}

func TestPipelineOverfittingGapRecorded(t *testing.T) {
	artifact, err := testPipeline(6).Run()
	require.NoError(t, err)

	p := artifact.Performance
	assert.InDelta(t, p.TrainAccuracy-p.TestAccuracy, p.Overfitting, 1e-9)
}
