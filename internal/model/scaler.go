// internal/model/scaler.go
package model

import "math"

// StandardScaler centers each feature to zero mean and unit variance using
// statistics fitted on the training partition only.
type StandardScaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// FitScaler computes per-feature mean and standard deviation over rows.
// Zero-variance features get a standard deviation of 1 so transforming them
// yields 0 rather than dividing by zero.
func FitScaler(rows [][]float64) *StandardScaler {
	if len(rows) == 0 {
		return &StandardScaler{}
	}
	n := float64(len(rows))
	width := len(rows[0])

	mean := make([]float64, width)
	for _, row := range rows {
		for i, v := range row {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= n
	}

	std := make([]float64, width)
	for _, row := range rows {
		for i, v := range row {
			d := v - mean[i]
			std[i] += d * d
		}
	}
	for i := range std {
		std[i] = math.Sqrt(std[i] / n)
		if std[i] == 0 {
			std[i] = 1.0
		}
	}

	return &StandardScaler{Mean: mean, Std: std}
}

// Transform returns a scaled copy of x. The input is not modified.
func (s *StandardScaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.Std[i]
	}
	return out
}

// TransformAll scales every row.
func (s *StandardScaler) TransformAll(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out
}

// Width reports the feature count the scaler was fitted for.
func (s *StandardScaler) Width() int {
	return len(s.Mean)
}
