// internal/feature/encoder_test.go
package feature

import (
	"testing"

	"careermatch/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureValue(t *testing.T, vec []float64, name string) float64 {
	t.Helper()
	i, ok := Index(name)
	require.True(t, ok, "unknown feature %q", name)
	return vec[i]
}

func TestVectorLen(t *testing.T) {
	assert.Equal(t, 72, VectorLen)
	assert.Len(t, Names(), VectorLen)
}

func TestNamesOrdering(t *testing.T) {
	names := Names()
	assert.Equal(t, "subject_english", names[0])
	assert.Equal(t, "subject_commerce", names[31])
	assert.Equal(t, "interest_analytical_thinking", names[32])
	assert.Equal(t, "interest_security", names[67])
	assert.Equal(t, []string{"stem_analytical", "tech_programming", "health_helping", "business_leadership"}, names[68:])
}

func TestEncodeDeterminism(t *testing.T) {
	subjects := []string{"Computer Science", "Mathematics", "Physics"}
	answers := map[int]bool{1: true, 17: true, 24: true, 30: true}

	first := Encode(subjects, answers)
	second := Encode(subjects, answers)
	assert.Equal(t, first, second)
}

func TestEncodeOrderInvariance(t *testing.T) {
	answers := map[int]bool{1: true, 17: true, 24: true}
	a := Encode([]string{"Physics", "Mathematics", "Computer Science"}, answers)
	b := Encode([]string{"Computer Science", "Physics", "Mathematics"}, answers)
	assert.Equal(t, a, b)
}

func TestEncodeTotality(t *testing.T) {
	vec := Encode(nil, nil)
	require.Len(t, vec, VectorLen)
	for i, v := range vec {
		assert.Zero(t, v, "slot %d (%s) should be zero", i, Names()[i])
	}
}

func TestEncodeSubjectIndicators(t *testing.T) {
	vec := Encode([]string{"Mathematics", "ict", "Unknown Subject"}, nil)

	assert.Equal(t, 1.0, featureValue(t, vec, "subject_mathematics"))
	assert.Equal(t, 1.0, featureValue(t, vec, "subject_ict"))
	assert.Equal(t, 0.0, featureValue(t, vec, "subject_physics"))

	// unknown subject sets nothing
	total := 0.0
	for i := 0; i < len(catalog.Subjects); i++ {
		total += vec[i]
	}
	assert.Equal(t, 2.0, total)
}

func TestEncodeInterestNormalizationBounds(t *testing.T) {
	// Question 1 and 24 both touch analytical_thinking, so it gets count 2
	// and everything else normalizes against it.
	vec := Encode(nil, map[int]bool{1: true, 24: true, 17: true})

	maxVal := 0.0
	base := len(catalog.Subjects)
	for i := 0; i < len(catalog.Categories); i++ {
		v := vec[base+i]
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		if v > maxVal {
			maxVal = v
		}
	}
	assert.Equal(t, 1.0, maxVal)

	assert.Equal(t, 1.0, featureValue(t, vec, "interest_analytical_thinking"))
	assert.Equal(t, 0.5, featureValue(t, vec, "interest_technology"))
}

func TestEncodeAllNoAnswers(t *testing.T) {
	// Falsy answers count as "no"; divisor stays pinned at 1.0.
	vec := Encode([]string{"Mathematics"}, map[int]bool{1: false, 2: false})
	base := len(catalog.Subjects)
	for i := 0; i < len(catalog.Categories); i++ {
		assert.Zero(t, vec[base+i])
	}
}

func TestEncodeUnknownQuestionIgnored(t *testing.T) {
	vec := Encode(nil, map[int]bool{99: true, -3: true})
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestEncodeInteractionTerms(t *testing.T) {
	subjects := []string{"Computer Science", "Mathematics", "Physics"}
	answers := map[int]bool{1: true, 17: true, 24: true, 30: true}
	vec := Encode(subjects, answers)

	assert.Greater(t, featureValue(t, vec, "stem_analytical"), 0.0)
	assert.Greater(t, featureValue(t, vec, "tech_programming"), 0.0)
	assert.Zero(t, featureValue(t, vec, "health_helping"))
	assert.Zero(t, featureValue(t, vec, "business_leadership"))

	// stem_analytical = (math + physics + chemistry) * analytical score;
	// analytical_thinking has the max count here so its score is 1.0.
	assert.Equal(t, 2.0, featureValue(t, vec, "stem_analytical"))
}

func TestIndexCoversEveryName(t *testing.T) {
	for i, name := range Names() {
		got, ok := Index(name)
		assert.True(t, ok)
		assert.Equal(t, i, got)
	}
	_, ok := Index("no_such_feature")
	assert.False(t, ok)
}
