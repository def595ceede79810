// internal/synthetic/generator.go
package synthetic

import (
	"math/rand"

	"careermatch/internal/catalog"
)

const (
	strongAnswerProb = 0.85
	weakAnswerProb   = 0.25
	minExtraSubjects = 1
	maxExtraSubjects = 3
)

// Generator produces randomized, career-biased student profiles for training.
// The randomness source is injected so runs are reproducible under a fixed
// seed; a Generator is not safe for concurrent use.
type Generator struct {
	tables *ProfileTables
	rng    *rand.Rand
}

func NewGenerator(tables *ProfileTables, rng *rand.Rand) *Generator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Generator{tables: tables, rng: rng}
}

// Generate produces one noisy profile correlated with the given career: the
// career's base subjects plus 1..3 extra subjects drawn without replacement,
// and independent Bernoulli answers biased towards the career's strong
// questions. The subject set is never empty.
func (g *Generator) Generate(career string) ([]string, map[int]bool) {
	base := g.tables.Subjects[career]
	if len(base) == 0 {
		base = g.tables.DefaultSubjects
	}

	taken := make(map[string]bool, len(base))
	subjects := make([]string, 0, len(base)+maxExtraSubjects)
	for _, s := range base {
		taken[s] = true
		subjects = append(subjects, s)
	}

	remaining := make([]string, 0, len(catalog.Subjects))
	for _, s := range catalog.Subjects {
		if !taken[s] {
			remaining = append(remaining, s)
		}
	}
	extra := g.rng.Intn(maxExtraSubjects-minExtraSubjects+1) + minExtraSubjects
	if extra > len(remaining) {
		extra = len(remaining)
	}
	g.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	subjects = append(subjects, remaining[:extra]...)

	strong := g.tables.Questions[career]
	if len(strong) == 0 {
		strong = g.tables.DefaultQuestions
	}
	strongSet := make(map[int]bool, len(strong))
	for _, q := range strong {
		strongSet[q] = true
	}

	answers := make(map[int]bool, catalog.QuestionCount)
	for q := 1; q <= catalog.QuestionCount; q++ {
		p := weakAnswerProb
		if strongSet[q] {
			p = strongAnswerProb
		}
		answers[q] = g.rng.Float64() < p
	}

	return subjects, answers
}
