// internal/training/pipeline.go
package training

import (
	"math/rand"
	"time"

	"careermatch/internal/catalog"
	apperrors "careermatch/internal/common/errors"
	"careermatch/internal/common/logger"
	"careermatch/internal/feature"
	"careermatch/internal/model"
	"careermatch/internal/synthetic"
)

// Pipeline orchestrates one offline training run: synthetic profile
// generation, feature encoding, stratified splitting, fitting, evaluation and
// artifact assembly.
type Pipeline struct {
	SamplesPerCareer int
	TestFraction     float64
	Seed             int64
	Version          string
	ForestParams     model.ForestParams
	Tables           *synthetic.ProfileTables

	logger logger.Logger
}

func NewPipeline(samplesPerCareer int, testFraction float64, seed int64, version string, tables *synthetic.ProfileTables, log logger.Logger) *Pipeline {
	params := model.DefaultForestParams()
	params.Seed = seed
	return &Pipeline{
		SamplesPerCareer: samplesPerCareer,
		TestFraction:     testFraction,
		Seed:             seed,
		Version:          version,
		ForestParams:     params,
		Tables:           tables,
		logger:           log.WithFields(map[string]interface{}{"component": "training"}),
	}
}

// Run executes the full pipeline and returns a validated artifact.
func (p *Pipeline) Run() (*model.Artifact, error) {
	// Stratification needs at least one train and one test sample per career,
	// so fewer than 2 samples per career can never produce a usable model.
	if p.SamplesPerCareer < 2 {
		return nil, apperrors.NewTrainingDataDegenerateError(catalog.Careers)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	gen := synthetic.NewGenerator(p.Tables, rng)

	encoder := model.FitLabels(catalog.Careers)

	total := len(catalog.Careers) * p.SamplesPerCareer
	rows := make([][]float64, 0, total)
	labels := make([]int, 0, total)

	p.logger.Info("generating synthetic training data", map[string]interface{}{
		"careers":          len(catalog.Careers),
		"samplesPerCareer": p.SamplesPerCareer,
	})

	for _, career := range catalog.Careers {
		ordinal, err := encoder.Encode(career)
		if err != nil {
			return nil, err
		}
		for i := 0; i < p.SamplesPerCareer; i++ {
			subjects, answers := gen.Generate(career)
			rows = append(rows, feature.Encode(subjects, answers))
			labels = append(labels, ordinal)
		}
	}

	trainIdx, testIdx, err := stratifiedSplit(labels, encoder.Len(), p.TestFraction, rng)
	if err != nil {
		return nil, apperrors.NewTrainingDataDegenerateError(catalog.Careers)
	}

	trainRows, trainLabels := gather(rows, labels, trainIdx)
	testRows, testLabels := gather(rows, labels, testIdx)

	scaler := model.FitScaler(trainRows)
	trainScaled := scaler.TransformAll(trainRows)
	testScaled := scaler.TransformAll(testRows)

	p.logger.Info("fitting classifier", map[string]interface{}{
		"trainSamples": len(trainScaled),
		"testSamples":  len(testScaled),
		"features":     feature.VectorLen,
	})

	forest := model.NewRandomForest(p.ForestParams)
	if err := forest.Fit(trainScaled, trainLabels, encoder.Len()); err != nil {
		return nil, err
	}

	trainAcc := accuracy(forest, trainScaled, trainLabels)
	testAcc := accuracy(forest, testScaled, testLabels)

	p.logger.Info("training complete", map[string]interface{}{
		"trainAccuracy": trainAcc,
		"testAccuracy":  testAcc,
		"overfitting":   trainAcc - testAcc,
	})

	artifact := &model.Artifact{
		Version:      p.Version,
		TrainingDate: time.Now().UTC(),
		IsTrained:    true,
		Subjects:     append([]string(nil), catalog.Subjects...),
		InterestMap:  copyInterestMap(),
		FeatureNames: feature.Names(),
		Careers:      append([]string(nil), encoder.Classes...),
		Labels:       encoder,
		Scaler:       scaler,
		Forest:       forest,
		Performance: model.Performance{
			TrainAccuracy:   trainAcc,
			TestAccuracy:    testAcc,
			Overfitting:     trainAcc - testAcc,
			CareerCount:     encoder.Len(),
			FeatureCount:    feature.VectorLen,
			TrainingSamples: total,
		},
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	return artifact, nil
}

func gather(rows [][]float64, labels []int, idx []int) ([][]float64, []int) {
	outRows := make([][]float64, len(idx))
	outLabels := make([]int, len(idx))
	for i, j := range idx {
		outRows[i] = rows[j]
		outLabels[i] = labels[j]
	}
	return outRows, outLabels
}

func accuracy(clf model.Classifier, rows [][]float64, labels []int) float64 {
	if len(rows) == 0 {
		return 0
	}
	correct := 0
	for i, row := range rows {
		probs := clf.PredictProba(row)
		best := 0
		for c := 1; c < len(probs); c++ {
			if probs[c] > probs[best] {
				best = c
			}
		}
		if best == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(rows))
}

func copyInterestMap() map[int][]string {
	out := make(map[int][]string, len(catalog.InterestMap))
	for q, cats := range catalog.InterestMap {
		out[q] = append([]string(nil), cats...)
	}
	return out
}
