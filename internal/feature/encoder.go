// internal/feature/encoder.go
package feature

import (
	"careermatch/internal/catalog"
)

// VectorLen is the fixed feature vector length: one indicator per catalog
// subject, one normalized score per interest category, four interaction terms.
var VectorLen = len(catalog.Subjects) + len(catalog.Categories) + 4

// interaction pairs a group of subject slots with one interest-category slot;
// the feature value is the group indicator sum times the category score.
type interaction struct {
	name     string
	subjects []int // indices into catalog.Subjects
	category int   // index into catalog.Categories
}

var (
	names        []string
	nameIndex    map[string]int
	catIndex     map[string]int
	interactions []interaction
)

func init() {
	catIndex = make(map[string]int, len(catalog.Categories))
	for i, c := range catalog.Categories {
		catIndex[c] = i
	}

	interactions = []interaction{
		{name: "stem_analytical", subjects: subjectSlots("Mathematics", "Physics", "Chemistry"), category: catIndex["analytical_thinking"]},
		{name: "tech_programming", subjects: subjectSlots("Computer Science", "Ict"), category: catIndex["technology"]},
		{name: "health_helping", subjects: subjectSlots("Biology", "Chemistry"), category: catIndex["helping_others"]},
		{name: "business_leadership", subjects: subjectSlots("Economics", "Management"), category: catIndex["business"]},
	}

	names = make([]string, 0, VectorLen)
	for _, s := range catalog.Subjects {
		names = append(names, "subject_"+catalog.FeatureToken(s))
	}
	for _, c := range catalog.Categories {
		names = append(names, "interest_"+c)
	}
	for _, ia := range interactions {
		names = append(names, ia.name)
	}

	nameIndex = make(map[string]int, len(names))
	for i, n := range names {
		nameIndex[n] = i
	}
}

func subjectSlots(subjects ...string) []int {
	slots := make([]int, 0, len(subjects))
	for _, want := range subjects {
		for i, s := range catalog.Subjects {
			if s == want {
				slots = append(slots, i)
			}
		}
	}
	return slots
}

// Names returns the frozen feature-name ordering. The returned slice is a
// copy; the ordering itself is part of the trained-artifact contract.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Index resolves a feature name to its vector slot. Diagnostics only; the
// encoding path never looks features up by name.
func Index(name string) (int, bool) {
	i, ok := nameIndex[name]
	return i, ok
}

// Encode derives the fixed-order feature vector for one student profile.
// It is deterministic and total: unknown subjects and question ids are
// ignored, and empty input yields a valid all-zero vector.
func Encode(subjects []string, answers map[int]bool) []float64 {
	vec := make([]float64, VectorLen)

	selected := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if canonical, ok := catalog.Normalize(s); ok {
			selected[canonical] = true
		}
	}
	for i, s := range catalog.Subjects {
		if selected[s] {
			vec[i] = 1.0
		}
	}

	counts := make([]int, len(catalog.Categories))
	maxCount := 0
	for qid, yes := range answers {
		if !yes {
			continue
		}
		for _, cat := range catalog.InterestMap[qid] {
			if slot, ok := catIndex[cat]; ok {
				counts[slot]++
				if counts[slot] > maxCount {
					maxCount = counts[slot]
				}
			}
		}
	}
	// Divisor pinned to 1.0 when nothing was answered; artifacts were trained
	// against this exact behavior.
	divisor := float64(maxCount)
	if maxCount == 0 {
		divisor = 1.0
	}
	base := len(catalog.Subjects)
	for i, c := range counts {
		vec[base+i] = float64(c) / divisor
	}

	interactionBase := base + len(catalog.Categories)
	for i, ia := range interactions {
		var groupSum float64
		for _, slot := range ia.subjects {
			groupSum += vec[slot]
		}
		vec[interactionBase+i] = groupSum * vec[base+ia.category]
	}

	return vec
}
