// internal/common/errors/errors.go
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogMismatch         ErrorCode = "CATALOG_MISMATCH"
	ErrCodeModelUnavailable        ErrorCode = "MODEL_UNAVAILABLE"
	ErrCodeMalformedRequest        ErrorCode = "MALFORMED_REQUEST"
	ErrCodeTrainingDataDegenerate  ErrorCode = "TRAINING_DATA_DEGENERATE"
	ErrCodeArtifactInvalid         ErrorCode = "ARTIFACT_INVALID"
	ErrCodeProfileTableInvalid     ErrorCode = "PROFILE_TABLE_INVALID"
	ErrCodeDatabaseConnectionError ErrorCode = "DATABASE_CONNECTION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the ErrorCode from err, or "" if err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// NewCatalogMismatchError reports a feature-vector length that disagrees with
// the artifact's frozen feature ordering. Non-retryable: the model and the
// catalog are out of sync and a retrain is required.
func NewCatalogMismatchError(expected, got int) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogMismatch,
		Message:   "feature vector does not match the trained artifact's feature ordering",
		Details:   fmt.Sprintf("artifact expects %d features, encoder produced %d", expected, got),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelUnavailableError reports that no trained artifact is loaded.
func NewModelUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelUnavailable,
		Message:   "model not loaded",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedRequestError reports an unusable request body.
func NewMalformedRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   "request body is malformed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTrainingDataDegenerateError reports careers with too few synthetic
// samples for a stratified split. The training run must halt; silently
// dropping a career from the label set is never acceptable.
func NewTrainingDataDegenerateError(careers []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTrainingDataDegenerate,
		Message:   "insufficient synthetic samples for stratified split",
		Details:   "affected careers: " + strings.Join(careers, ", "),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewArtifactInvalidError reports a persisted artifact that is missing
// required fields or is internally inconsistent.
func NewArtifactInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeArtifactInvalid,
		Message:   "trained model artifact is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileTableInvalidError reports a career profile table that failed
// schema validation.
func NewProfileTableInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileTableInvalid,
		Message:   "career profile table failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionError reports a retryable database connectivity error.
func NewDatabaseConnectionError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionError,
		Message:   "database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
