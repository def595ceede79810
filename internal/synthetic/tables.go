// internal/synthetic/tables.go
package synthetic

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "careermatch/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileTables holds the curated per-career generation data. It is
// configuration, not logic: operators may ship an override file to tune
// coverage without a code change.
type ProfileTables struct {
	// Subjects maps a career to its base subject list. Careers absent here
	// fall back to DefaultSubjects.
	Subjects map[string][]string `json:"subjects"`
	// Questions maps a career to the survey questions a student aiming at it
	// tends to answer yes. Careers absent here fall back to DefaultQuestions.
	Questions map[string][]int `json:"questions"`

	DefaultSubjects  []string `json:"default_subjects"`
	DefaultQuestions []int    `json:"default_questions"`
}

const tablesSchema = `{
	"type": "object",
	"required": ["subjects", "questions", "default_subjects", "default_questions"],
	"properties": {
		"subjects": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 1
			}
		},
		"questions": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "integer", "minimum": 1, "maximum": 30},
				"minItems": 1
			}
		},
		"default_subjects": {
			"type": "array",
			"items": {"type": "string"},
			"minItems": 1
		},
		"default_questions": {
			"type": "array",
			"items": {"type": "integer", "minimum": 1, "maximum": 30},
			"minItems": 1
		}
	}
}`

// DefaultTables returns the built-in curated tables.
func DefaultTables() *ProfileTables {
	return &ProfileTables{
		Subjects: map[string][]string{
			"Software Developer":  {"Computer Science", "Mathematics", "Physics"},
			"Web Developer":       {"Computer Science", "Mathematics", "Art"},
			"Data Scientist":      {"Mathematics", "Computer Science", "Further Mathematics"},
			"AI Engineer":         {"Computer Science", "Mathematics", "Physics"},
			"Medical Doctor":      {"Biology", "Chemistry", "Mathematics", "Physics"},
			"Nurse":               {"Biology", "Chemistry", "Mathematics"},
			"Pharmacist":          {"Chemistry", "Biology", "Mathematics"},
			"Dentist":             {"Biology", "Chemistry", "Mathematics"},
			"Teacher":             {"Education", "English", "General Paper"},
			"Accountant":          {"Accounting", "Mathematics", "Economics"},
			"Business Analyst":    {"Economics", "Mathematics", "Management"},
			"Marketing Manager":   {"Economics", "Management", "English"},
			"Civil Engineer":      {"Mathematics", "Physics", "Technical Drawing"},
			"Mechanical Engineer": {"Mathematics", "Physics", "Technical Drawing"},
			"Electrical Engineer": {"Mathematics", "Physics", "Further Mathematics"},
			"Chemical Engineer":   {"Chemistry", "Mathematics", "Physics"},
			"Lawyer":              {"Law", "English", "General Paper"},
			"Judge":               {"Law", "English", "General Paper"},
			"Journalist":          {"English", "Literature", "General Paper"},
			"Graphic Designer":    {"Art", "Computer Science", "English"},
			"Architect":           {"Art", "Mathematics", "Technical Drawing"},
			"Veterinarian":        {"Biology", "Chemistry", "Mathematics"},
		},
		Questions: map[string][]int{
			"Software Developer": {1, 17, 24, 30},
			"Web Developer":      {1, 17, 20, 6},
			"Data Scientist":     {1, 18, 24, 17},
			"Medical Doctor":     {2, 14, 18, 12},
			"Teacher":            {3, 28, 12, 23},
			"Accountant":         {10, 24, 1, 19},
			"Business Analyst":   {1, 4, 13, 19},
			"Lawyer":             {9, 7, 1, 12},
			"Graphic Designer":   {6, 20, 25, 22},
		},
		DefaultSubjects:  []string{"English", "Mathematics"},
		DefaultQuestions: []int{1, 2, 3},
	}
}

// LoadTables reads and validates a profile-table override file.
func LoadTables(path string) (*ProfileTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile tables: %w", err)
	}
	return ParseTables(data)
}

// ParseTables validates raw JSON against the table schema and decodes it.
func ParseTables(data []byte) (*ProfileTables, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(tablesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, apperrors.NewProfileTableInvalidError(err.Error())
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, apperrors.NewProfileTableInvalidError(strings.Join(msgs, "; "))
	}

	var tables ProfileTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, apperrors.NewProfileTableInvalidError(err.Error())
	}
	return &tables, nil
}
