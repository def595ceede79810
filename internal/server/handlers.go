// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "careermatch/internal/common/errors"
	"careermatch/internal/common/metrics"

	"github.com/xeipuuv/gojsonschema"
)

const maxBodyBytes = 1 << 20

const predictRequestSchema = `{
	"type": "object",
	"properties": {
		"subjects": {
			"type": "array",
			"items": {"type": "string"}
		},
		"interests": {
			"type": "object",
			"patternProperties": {
				"^[0-9]+$": {"type": "boolean"}
			},
			"additionalProperties": false
		}
	}
}`

var predictSchema = gojsonschema.NewStringLoader(predictRequestSchema)

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writePredictError(w, http.StatusBadRequest, apperrors.NewMalformedRequestError("unreadable body"))
		return
	}

	req, appErr := decodePredictRequest(body)
	if appErr != nil {
		s.writePredictError(w, http.StatusBadRequest, appErr)
		return
	}

	answers := make(map[int]bool, len(req.Interests))
	for key, yes := range req.Interests {
		// Non-numeric keys were already rejected by the schema; a parse
		// failure here would mean the schema drifted, so just skip.
		if qid, err := strconv.Atoi(key); err == nil {
			answers[qid] = yes
		}
	}

	result, err := s.svc.Predict(r.Context(), req.Subjects, answers)
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.CodeOf(err) == apperrors.ErrCodeModelUnavailable {
			status = http.StatusServiceUnavailable
		}
		s.writePredictError(w, status, err)
		return
	}

	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	s.writeJSON(w, http.StatusOK, PredictResponse{
		Success:         true,
		Recommendations: result.Recommendations,
		ModelInfo:       &result.ModelInfo,
		Warning:         result.Warning,
	})
}

func decodePredictRequest(body []byte) (*PredictRequest, error) {
	if len(body) == 0 {
		return nil, apperrors.NewMalformedRequestError("empty body")
	}

	validation, err := gojsonschema.Validate(predictSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, apperrors.NewMalformedRequestError(err.Error())
	}
	if !validation.Valid() {
		msgs := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, apperrors.NewMalformedRequestError(strings.Join(msgs, "; "))
	}

	var req PredictRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperrors.NewMalformedRequestError(err.Error())
	}
	return &req, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		ModelLoaded: s.svc.Ready(),
		Careers:     s.svc.CareerCount(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writePredictError(w http.ResponseWriter, status int, err error) {
	code := string(apperrors.CodeOf(err))
	if code == "" {
		code = "INTERNAL"
	}
	metrics.PredictionsTotal.WithLabelValues("error").Inc()
	metrics.PredictionErrors.WithLabelValues(code).Inc()

	s.logger.Error("prediction request failed", map[string]interface{}{
		"status":    status,
		"errorCode": code,
		"error":     err.Error(),
	})
	s.writeJSON(w, status, PredictResponse{Success: false, Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{"error": err})
	}
}
