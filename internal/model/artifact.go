// internal/model/artifact.go
package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	apperrors "careermatch/internal/common/errors"
)

// Performance summarizes a training run, for diagnostics only.
type Performance struct {
	TrainAccuracy   float64 `json:"train_accuracy"`
	TestAccuracy    float64 `json:"test_accuracy"`
	Overfitting     float64 `json:"overfitting"`
	CareerCount     int     `json:"career_count"`
	FeatureCount    int     `json:"feature_count"`
	TrainingSamples int     `json:"training_samples"`
}

// Artifact bundles everything the inference service needs: the fitted
// classifier, scaler and label encoder, plus the exact catalog snapshot and
// feature ordering the model was trained against. Read-only after load.
type Artifact struct {
	Version      string           `json:"model_version"`
	TrainingDate time.Time        `json:"training_date"`
	IsTrained    bool             `json:"is_trained"`
	Subjects     []string         `json:"subjects"`
	InterestMap  map[int][]string `json:"interest_mapping"`
	FeatureNames []string         `json:"feature_names"`
	Careers      []string         `json:"career_names"`
	Labels       *LabelEncoder    `json:"label_encoder"`
	Scaler       *StandardScaler  `json:"scaler"`
	Forest       *RandomForest    `json:"model"`
	Performance  Performance      `json:"performance"`
}

// Validate checks that every required field is present and internally
// consistent. A partially populated artifact is a fatal load error, never a
// degraded-mode fallback.
func (a *Artifact) Validate() error {
	switch {
	case !a.IsTrained:
		return apperrors.NewArtifactInvalidError("is_trained flag not set")
	case a.Version == "":
		return apperrors.NewArtifactInvalidError("missing model_version")
	case len(a.Subjects) == 0:
		return apperrors.NewArtifactInvalidError("missing subject catalog")
	case len(a.InterestMap) == 0:
		return apperrors.NewArtifactInvalidError("missing interest question map")
	case len(a.FeatureNames) == 0:
		return apperrors.NewArtifactInvalidError("missing feature name ordering")
	case len(a.Careers) == 0:
		return apperrors.NewArtifactInvalidError("missing career name list")
	case a.Labels == nil || a.Labels.Len() == 0:
		return apperrors.NewArtifactInvalidError("missing label encoder")
	case a.Scaler == nil:
		return apperrors.NewArtifactInvalidError("missing feature scaler")
	case a.Forest == nil || !a.Forest.IsTrained():
		return apperrors.NewArtifactInvalidError("missing trained classifier")
	}

	if a.Scaler.Width() != len(a.FeatureNames) {
		return apperrors.NewArtifactInvalidError(fmt.Sprintf(
			"scaler width %d disagrees with %d feature names", a.Scaler.Width(), len(a.FeatureNames)))
	}
	if a.Forest.Features != len(a.FeatureNames) {
		return apperrors.NewArtifactInvalidError(fmt.Sprintf(
			"classifier input width %d disagrees with %d feature names", a.Forest.Features, len(a.FeatureNames)))
	}
	if a.Labels.Len() != len(a.Careers) {
		return apperrors.NewArtifactInvalidError(fmt.Sprintf(
			"label encoder has %d classes but career list has %d entries", a.Labels.Len(), len(a.Careers)))
	}
	if a.Forest.Classes != a.Labels.Len() {
		return apperrors.NewArtifactInvalidError(fmt.Sprintf(
			"classifier emits %d classes but label encoder has %d", a.Forest.Classes, a.Labels.Len()))
	}
	return nil
}

// Save persists the artifact as JSON.
func (a *Artifact) Save(path string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads and validates a persisted artifact.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, apperrors.NewArtifactInvalidError(err.Error())
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
