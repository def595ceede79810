// internal/predictor/predictor.go
package predictor

import (
	"context"
	"sort"
	"time"

	apperrors "careermatch/internal/common/errors"
	"careermatch/internal/common/logger"
	"careermatch/internal/common/metrics"
	"careermatch/internal/feature"
	"careermatch/internal/model"

	"github.com/redis/go-redis/v9"
)

const topK = 5

// Recommendation is one ranked career match.
type Recommendation struct {
	Career          string  `json:"career"`
	Confidence      float64 `json:"confidence"`
	MatchPercentage float64 `json:"match_percentage"`
}

// ModelInfo describes the artifact that produced a result.
type ModelInfo struct {
	Version      string  `json:"version"`
	Accuracy     float64 `json:"accuracy"`
	TotalCareers int     `json:"total_careers"`
}

// Result is a complete prediction outcome.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	ModelInfo       ModelInfo        `json:"model_info"`
	Warning         string           `json:"warning,omitempty"`
}

// Service applies a loaded artifact to live requests. It holds only
// read-only state, so concurrent Predict calls need no locking.
type Service struct {
	artifact *model.Artifact
	cache    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables the redis-backed response cache. Cache failures degrade
// to recomputation, never to request failure.
func WithCache(client *redis.Client, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = client
		s.cacheTTL = ttl
	}
}

// New builds a Service around an already validated artifact. A nil artifact
// is allowed: the service then fails every request fast with a
// model-unavailable error instead of crashing the process.
func New(artifact *model.Artifact, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		artifact: artifact,
		logger:   log.WithFields(map[string]interface{}{"component": "predictor"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready reports whether a model is loaded.
func (s *Service) Ready() bool {
	return s.artifact != nil
}

// CareerCount reports the number of recommendable careers, 0 when no model
// is loaded.
func (s *Service) CareerCount() int {
	if s.artifact == nil {
		return 0
	}
	return len(s.artifact.Careers)
}

// Predict encodes the request, applies the artifact's scaler and classifier,
// and returns the top career matches ordered by descending confidence with
// ties broken by ascending label ordinal.
func (s *Service) Predict(ctx context.Context, subjects []string, answers map[int]bool) (*Result, error) {
	if s.artifact == nil {
		return nil, apperrors.NewModelUnavailableError("artifact was not loaded at startup")
	}

	if cached, ok := s.cacheGet(ctx, subjects, answers); ok {
		metrics.CacheHits.Inc()
		return cached, nil
	}
	if s.cache != nil {
		metrics.CacheMisses.Inc()
	}

	vec := feature.Encode(subjects, answers)
	if len(vec) != len(s.artifact.FeatureNames) {
		return nil, apperrors.NewCatalogMismatchError(len(s.artifact.FeatureNames), len(vec))
	}

	scaled := s.artifact.Scaler.Transform(vec)
	probs := s.artifact.Forest.PredictProba(scaled)

	ordinals := make([]int, len(probs))
	for i := range ordinals {
		ordinals[i] = i
	}
	sort.Slice(ordinals, func(i, j int) bool {
		pi, pj := probs[ordinals[i]], probs[ordinals[j]]
		if pi != pj {
			return pi > pj
		}
		return ordinals[i] < ordinals[j]
	})

	k := topK
	if len(ordinals) < k {
		k = len(ordinals)
	}
	recommendations := make([]Recommendation, 0, k)
	for _, ord := range ordinals[:k] {
		career, err := s.artifact.Labels.Decode(ord)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, Recommendation{
			Career:          career,
			Confidence:      probs[ord],
			MatchPercentage: probs[ord] * 100,
		})
	}

	result := &Result{
		Recommendations: recommendations,
		ModelInfo: ModelInfo{
			Version:      s.artifact.Version,
			Accuracy:     s.artifact.Performance.TestAccuracy,
			TotalCareers: len(s.artifact.Careers),
		},
	}
	if countKnownSubjects(subjects) == 0 {
		result.Warning = "no recognized subjects were selected; recommendations are low-confidence"
	}

	s.cacheSet(ctx, subjects, answers, result)
	return result, nil
}
