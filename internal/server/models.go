// internal/server/models.go
package server

import "careermatch/internal/predictor"

// PredictRequest is the wire shape of a prediction request. Interest keys
// are stringified question ids, matching the survey client.
type PredictRequest struct {
	Subjects  []string        `json:"subjects"`
	Interests map[string]bool `json:"interests"`
}

// PredictResponse is the wire shape of a prediction outcome.
type PredictResponse struct {
	Success         bool                       `json:"success"`
	Recommendations []predictor.Recommendation `json:"recommendations,omitempty"`
	ModelInfo       *predictor.ModelInfo       `json:"model_info,omitempty"`
	Warning         string                     `json:"warning,omitempty"`
	Error           string                     `json:"error,omitempty"`
}

// HealthResponse is the wire shape of the readiness signal.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Careers     int    `json:"careers"`
	Timestamp   string `json:"timestamp"`
}
