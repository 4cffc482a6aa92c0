package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// headerGroup binds a section kind to the header phrases that open it.
// Phrases are matched as whole words against a lowercased, punctuation-
// stripped candidate line.
type headerGroup struct {
	Kind    types.SectionKind
	Phrases []string
}

// HeaderGroups is the ordered classifier list. Order is a correctness
// contract, not a style choice: narrower categories whose headers lexically
// contain a broader category's keyword must be tested first. "EXPERIENCE
// SUMMARY" contains "summary" but must classify as experience, so the
// experience group precedes the summary group. Tests pin each overlapping
// pair.
var HeaderGroups = []headerGroup{
	{
		Kind: types.SectionExperience,
		Phrases: []string{
			"work experience", "professional experience", "employment history",
			"work history", "experience summary", "career history", "experience",
			"internships", "internship experience",
		},
	},
	{
		Kind: types.SectionEducation,
		Phrases: []string{
			"education", "academic background", "academic qualifications",
			"educational qualifications", "qualifications", "academics",
		},
	},
	{
		Kind: types.SectionCertifications,
		Phrases: []string{
			"certifications", "certificates", "licenses and certifications",
			"licenses", "courses and certifications",
		},
	},
	{
		Kind: types.SectionSkills,
		Phrases: []string{
			"technical skills", "core competencies", "skills", "technologies",
			"tools and technologies", "areas of expertise", "expertise",
		},
	},
	{
		Kind: types.SectionSummary,
		Phrases: []string{
			"professional summary", "career summary", "summary", "objective",
			"career objective", "profile", "about me", "about",
		},
	},
	{
		Kind: types.SectionContact,
		Phrases: []string{
			"contact", "contact information", "personal details", "personal information",
		},
	},
}

const (
	// maxHeaderLength rejects body-text sentences that happen to contain a
	// section keyword.
	maxHeaderLength = 80
	// maxHeaderWords rejects prose: real section headers run a handful of
	// words at most.
	maxHeaderWords = 5
	// maxHeaderPunctuationDensity rejects prose lines; real headers carry
	// little punctuation once decorative characters are stripped.
	maxHeaderPunctuationDensity = 0.3
)

var (
	leadingDecorationPattern = regexp.MustCompile(`^[\s\p{Zs}•◦▪·*>|_#=~-]+`)
	bodyPunctuationPattern   = regexp.MustCompile(`[^\w\s]`)
	collapsePunctPattern     = regexp.MustCompile(`[^a-z0-9]+`)
	bulletOrNumberPrefix     = regexp.MustCompile(`^\s*(?:[•◦▪·*>-]|\d+[.)])\s`)
)

// SegmentSections scans normalized text line-by-line and assigns every
// non-blank line to exactly one section kind. Lines seen before any header
// belong to the contact section; lines under no recognized header accumulate
// in SectionUnassigned rather than being dropped. Recurring headers of the
// same kind merge into one logical section.
func SegmentSections(text string) types.SectionMap {
	sections := make(types.SectionMap)
	current := types.SectionContact

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if kind, ok := classifyHeader(line); ok {
			current = kind
			continue
		}

		target := current
		if current == types.SectionContact && len(sections[types.SectionContact]) >= maxContactLines {
			// Long runs of pre-header text past the plausible contact block
			// are body text with no recognizable header above them.
			target = types.SectionUnassigned
		}
		sections[target] = append(sections[target], line)
	}

	return sections
}

// maxContactLines bounds how much pre-header text is treated as the contact
// block before overflow lands in the unassigned bucket.
const maxContactLines = 12

// classifyHeader reports whether line is a section header and, if so, which
// section kind it opens.
func classifyHeader(line string) (types.SectionKind, bool) {
	if !looksLikeHeader(line) {
		return "", false
	}

	candidate := normalizeHeaderCandidate(line)
	if candidate == "" {
		return "", false
	}

	for _, group := range HeaderGroups {
		for _, phrase := range group.Phrases {
			if matchesWholePhrase(candidate, phrase) {
				return group.Kind, true
			}
		}
	}

	return "", false
}

// looksLikeHeader is the header-likelihood gate: short, not a bullet or a
// numbered item, and low punctuation density.
func looksLikeHeader(line string) bool {
	if len(line) >= maxHeaderLength {
		return false
	}
	if bulletOrNumberPrefix.MatchString(line) {
		return false
	}

	stripped := leadingDecorationPattern.ReplaceAllString(line, "")
	if stripped == "" {
		return false
	}
	if len(strings.Fields(stripped)) > maxHeaderWords {
		return false
	}

	punct := len(bodyPunctuationPattern.FindAllString(stripped, -1))
	return float64(punct)/float64(len(stripped)) < maxHeaderPunctuationDensity
}

// normalizeHeaderCandidate strips decoration, lowercases, and collapses
// internal punctuation runs to single spaces.
func normalizeHeaderCandidate(line string) string {
	line = leadingDecorationPattern.ReplaceAllString(line, "")
	line = strings.ToLower(line)
	line = collapsePunctPattern.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// matchesWholePhrase reports whether phrase occurs in candidate on word
// boundaries. A candidate that is exactly the phrase, or contains it as a
// whole-word run, matches; "experienced" does not match "experience".
func matchesWholePhrase(candidate, phrase string) bool {
	idx := strings.Index(candidate, phrase)
	for idx >= 0 {
		beforeOK := idx == 0 || candidate[idx-1] == ' '
		after := idx + len(phrase)
		afterOK := after == len(candidate) || candidate[after] == ' '
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(candidate[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}
