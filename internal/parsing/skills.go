package parsing

import (
	"regexp"
	"strings"
)

const (
	minSkillLength = 2
	maxSkillLength = 50
	// MaxSkills caps the final skill list; resumes listing more than this
	// are enumerating noise, not skills.
	MaxSkills = 50
	// stopWordRejectCount is how many stop-word hits mark a token as a
	// sentence fragment rather than a skill.
	stopWordRejectCount = 2
)

// skillStopWords is the closed set whose density signals a sentence fragment.
var skillStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "in": true,
	"of": true, "to": true, "a": true, "an": true, "is": true,
	"are": true, "was": true, "were": true, "has": true, "have": true,
	"had": true,
}

// descriptiveOpeners mark tokens that begin like prose descriptions instead
// of atomic skills ("Experience in developing pricing models").
var descriptiveOpeners = []string{
	"experience in", "experienced in", "experience with", "knowledge of",
	"deep understanding of", "understanding of", "familiar with",
	"proficient in", "proficiency in", "working knowledge", "ability to",
	"responsible for", "expertise in", "skilled in", "hands on",
}

// compoundTechPattern allows compound technical tokens that would otherwise
// trip the stop-word check: letters/digits plus + # . - / covers "C++",
// "Node.js", "CI/CD", "in-memory".
var compoundTechPattern = regexp.MustCompile(`^[A-Za-z0-9+#./-]+$`)

// skillDelimiterPattern splits a skills blob on the delimiters resumes use.
var skillDelimiterPattern = regexp.MustCompile(`[,;|•◦▪·\n\t]+`)

// skillCasing maps lowercased variants to preferred display casing for
// common technologies, so "javascript" and "Javascript" surface uniformly.
var skillCasing = map[string]string{
	"golang":     "Go",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"k8s":        "Kubernetes",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"graphql":    "GraphQL",
	"ci/cd":      "CI/CD",
}

// FilterSkills converts raw skills-section blocks into a deduplicated,
// validated list of atomic skill tokens. Rejection rules apply in order:
// length bounds, descriptive sentence openers, then stop-word density —
// except that compound technical tokens are never rejected on stop-word
// grounds. Dedup is case-insensitive with first-seen casing winning, the
// longest token kept on collision, and the list capped at MaxSkills.
func FilterSkills(blocks []string) []string {
	var skills []string
	index := make(map[string]int) // lowercased skill -> position in skills

	for _, block := range blocks {
		for _, token := range skillDelimiterPattern.Split(block, -1) {
			token = cleanSkillToken(token)
			if !isValidSkill(token) {
				continue
			}

			if canonical, ok := skillCasing[strings.ToLower(token)]; ok {
				token = canonical
			}

			key := strings.ToLower(token)
			if pos, exists := index[key]; exists {
				// Keep the longer, more specific form in place.
				if len(token) > len(skills[pos]) {
					skills[pos] = token
				}
				continue
			}

			index[key] = len(skills)
			skills = append(skills, token)
			if len(skills) >= MaxSkills {
				return skills
			}
		}
	}

	return skills
}

// cleanSkillToken strips bullets, decoration and residual artifacts from one
// candidate token.
func cleanSkillToken(token string) string {
	token = NormalizeField(token)
	token = strings.Trim(token, "•◦▪·*-–—:() ")
	return strings.TrimSpace(token)
}

// isValidSkill applies the rejection rules to one cleaned candidate token.
func isValidSkill(token string) bool {
	if len(token) < minSkillLength || len(token) > maxSkillLength {
		return false
	}

	lower := strings.ToLower(token)
	for _, opener := range descriptiveOpeners {
		if strings.HasPrefix(lower, opener) {
			return false
		}
	}

	// Compound technical tokens are exempt from the stop-word check.
	if compoundTechPattern.MatchString(token) {
		return true
	}

	hits := 0
	for _, word := range strings.Fields(lower) {
		if skillStopWords[word] {
			hits++
			if hits >= stopWordRejectCount {
				return false
			}
		}
	}

	return true
}
