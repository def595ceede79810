// internal/model/labels.go
package model

import (
	"fmt"
	"sort"
)

// LabelEncoder maps career label strings to stable integer ordinals.
// Ordinals are assigned by sorted label order so the encoding is a pure
// function of the label set.
type LabelEncoder struct {
	Classes []string `json:"classes"`

	index map[string]int
}

// FitLabels builds an encoder over the distinct labels in the input.
func FitLabels(labels []string) *LabelEncoder {
	seen := make(map[string]bool, len(labels))
	classes := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	enc := &LabelEncoder{Classes: classes}
	enc.buildIndex()
	return enc
}

func (e *LabelEncoder) buildIndex() {
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
}

// Encode returns the ordinal for a label.
func (e *LabelEncoder) Encode(label string) (int, error) {
	if e.index == nil {
		e.buildIndex()
	}
	ord, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("unknown label %q", label)
	}
	return ord, nil
}

// Decode returns the label for an ordinal.
func (e *LabelEncoder) Decode(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(e.Classes) {
		return "", fmt.Errorf("ordinal %d out of range [0, %d)", ordinal, len(e.Classes))
	}
	return e.Classes[ordinal], nil
}

// Len reports the number of distinct labels.
func (e *LabelEncoder) Len() int {
	return len(e.Classes)
}
