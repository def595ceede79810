// internal/predictor/cache.go
package predictor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"

	"careermatch/internal/catalog"
)

// cacheKey derives a stable key from the canonical request: normalized,
// sorted subjects plus sorted yes-question ids. Two requests that encode to
// the same feature vector share a key regardless of input ordering.
func cacheKey(subjects []string, answers map[int]bool) string {
	canonical := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if name, ok := catalog.Normalize(s); ok {
			canonical = append(canonical, name)
		}
	}
	sort.Strings(canonical)

	yes := make([]int, 0, len(answers))
	for q, a := range answers {
		if a {
			yes = append(yes, q)
		}
	}
	sort.Ints(yes)

	h := sha256.New()
	for _, s := range canonical {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	h.Write([]byte{1})
	for _, q := range yes {
		h.Write([]byte(strconv.Itoa(q)))
		h.Write([]byte{0})
	}
	return "predict:" + hex.EncodeToString(h.Sum(nil))
}

func (s *Service) cacheGet(ctx context.Context, subjects []string, answers map[int]bool) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(subjects, answers)).Result()
	if err != nil {
		return nil, false
	}
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *Service) cacheSet(ctx context.Context, subjects []string, answers map[int]bool, result *Result) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(subjects, answers), data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("prediction cache write failed", map[string]interface{}{"error": err})
	}
}

func countKnownSubjects(subjects []string) int {
	n := 0
	for _, s := range subjects {
		if _, ok := catalog.Normalize(s); ok {
			n++
		}
	}
	return n
}
