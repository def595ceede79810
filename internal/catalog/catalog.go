// internal/catalog/catalog.go
package catalog

import "strings"

// Subjects is the ordered list of selectable academic subjects. The order is
// load-bearing: it fixes the subject feature positions, so any change here
// invalidates every previously trained artifact.
var Subjects = []string{
	"English", "French", "General Paper", "Religious Studies",
	"Philosophy", "Logic", "Mathematics", "Further Mathematics",
	"Physics", "Chemistry", "Biology", "Computer Science",
	"Ict", "Geology", "Technical Drawing", "Food Science",
	"Nutrition", "Agricultural Science", "Physical Education", "Environmental Management",
	"History", "Geography", "Literature", "Education",
	"Art", "Music", "Economics", "Accounting",
	"Business Mathematics", "Management", "Law", "Commerce",
}

// InterestMap maps each yes/no survey question id (1..30) to the interest
// categories it signals. A question may touch several categories and a
// category may be reachable from several questions.
var InterestMap = map[int][]string{
	1:  {"analytical_thinking", "problem_solving"},
	2:  {"helping_others", "healthcare"},
	3:  {"teaching", "mentoring", "communication"},
	4:  {"business", "entrepreneurship", "leadership"},
	5:  {"technical_skills", "engineering"},
	6:  {"creative_arts", "design"},
	7:  {"writing", "communication", "literature"},
	8:  {"travel", "cultural_awareness"},
	9:  {"law", "justice", "social_impact"},
	10: {"finance", "analytical_thinking"},
	11: {"outdoor_work", "nature"},
	12: {"social_impact", "community_service"},
	13: {"management", "leadership", "organization"},
	14: {"healthcare", "biology", "science"},
	15: {"engineering", "construction", "design"},
	16: {"security", "law_enforcement"},
	17: {"technology", "programming"},
	18: {"research", "science", "discovery"},
	19: {"economics", "business", "trade"},
	20: {"digital_media", "content_creation"},
	21: {"animal_care", "veterinary"},
	22: {"fashion", "beauty", "personal_care"},
	23: {"counseling", "psychology", "helping_others"},
	24: {"mathematics", "analytical_thinking"},
	25: {"media", "entertainment"},
	26: {"environmental_science", "sustainability"},
	27: {"electronics", "technology"},
	28: {"child_education", "teaching"},
	29: {"aerospace", "aviation", "exploration"},
	30: {"artificial_intelligence", "robotics"},
}

// Categories is the ordered list of interest categories that carry feature
// slots. The order is independent of InterestMap and equally frozen. Note that
// not every category referenced by InterestMap has a slot; questions whose
// categories fall outside this list simply contribute nothing there.
var Categories = []string{
	"analytical_thinking", "problem_solving", "helping_others", "healthcare",
	"teaching", "mentoring", "communication", "business", "entrepreneurship",
	"leadership", "technical_skills", "engineering", "creative_arts", "design",
	"writing", "literature", "travel", "law", "justice", "social_impact",
	"finance", "outdoor_work", "nature", "management", "organization",
	"biology", "science", "research", "discovery", "economics", "trade",
	"technology", "programming", "media", "entertainment", "security",
}

// Careers is the closed set of recommendable career labels.
var Careers = []string{
	"AI Engineer", "Accountant", "Agricultural Engineer", "Architect", "Business Analyst",
	"Chemical Engineer", "Civil Engineer", "Curriculum Developer", "Cybersecurity Specialist",
	"Data Scientist", "Dentist", "Educational Psychologist", "Electrical Engineer",
	"Environmental Engineer", "Environmental Scientist", "Farm Manager", "Financial Analyst",
	"Food Safety Inspector", "Food Scientist", "Graphic Designer", "Journalist", "Judge",
	"Laboratory Technician", "Lawyer", "Legal Assistant", "Marketing Manager",
	"Mechanical Engineer", "Medical Doctor", "Musician", "Nurse", "Pharmacist",
	"Project Manager", "Research Scientist", "School Principal", "Software Developer",
	"Teacher", "Veterinarian", "Web Developer",
}

// QuestionCount is the number of survey questions.
const QuestionCount = 30

var subjectByKey map[string]string

func init() {
	subjectByKey = make(map[string]string, len(Subjects))
	for _, s := range Subjects {
		subjectByKey[normalizeKey(s)] = s
	}
}

func normalizeKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// Normalize maps a free-text subject name onto its canonical catalog form,
// ignoring case and surrounding/internal whitespace. The second return value
// reports whether the subject is part of the catalog at all; unknown subjects
// are not an error, they just set no feature.
func Normalize(name string) (string, bool) {
	canonical, ok := subjectByKey[normalizeKey(name)]
	return canonical, ok
}

// FeatureToken converts a catalog name into its feature-name-safe token,
// e.g. "Computer Science" -> "computer_science".
func FeatureToken(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
