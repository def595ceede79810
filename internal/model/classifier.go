// internal/model/classifier.go
package model

// Classifier is the contract the training pipeline and inference service
// depend on. Any algorithm that can produce a probability distribution over
// class ordinals satisfies it; the rest of the system never looks inside.
type Classifier interface {
	// Fit trains the classifier on feature rows and encoded labels drawn
	// from `classes` distinct ordinals.
	Fit(rows [][]float64, labels []int, classes int) error
	// PredictProba returns a probability distribution of length `classes`
	// for one feature row.
	PredictProba(x []float64) []float64
}
