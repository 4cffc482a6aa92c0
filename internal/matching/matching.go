// Package matching implements keyword matching between resume text and
// taxonomy keywords. Matching is layered: exact token hits first, then
// synonym expansion, then fuzzy comparison for near-miss spellings.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/parsing"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

// DefaultFuzzyThreshold is the minimum similarity ratio for a fuzzy token hit.
const DefaultFuzzyThreshold = 0.80

// tokenPattern keeps the punctuation that technology names depend on, so
// "c++", "node.js" and "ci/cd" survive tokenization as single tokens.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#./-]+`)

// Result reports which keywords were found in and absent from a document.
type Result struct {
	Matched []string
	Missing []string
}

// Coverage returns the matched fraction, in [0, 1]. An empty keyword set
// counts as fully covered.
func (r Result) Coverage() float64 {
	total := len(r.Matched) + len(r.Missing)
	if total == 0 {
		return 1.0
	}
	return float64(len(r.Matched)) / float64(total)
}

// Matcher matches keywords against tokenized document text.
type Matcher struct {
	synonyms       *taxonomy.Synonyms
	fuzzyThreshold float64
}

// NewMatcher builds a matcher. A nil synonym table disables expansion;
// a non-positive threshold falls back to DefaultFuzzyThreshold.
func NewMatcher(synonyms *taxonomy.Synonyms, fuzzyThreshold float64) *Matcher {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{synonyms: synonyms, fuzzyThreshold: fuzzyThreshold}
}

// Tokenize lowercases text and returns its unigrams followed by the bigrams
// of adjacent unigrams. Bigrams let multi-word keywords like "distributed
// systems" match without a substring scan.
func Tokenize(text string) []string {
	unigrams := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(unigrams)*2)
	tokens = append(tokens, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		tokens = append(tokens, unigrams[i]+" "+unigrams[i+1])
	}
	return tokens
}

// MatchKeywords checks each keyword against the document text and splits the
// set into matched and missing. Keyword order is preserved in both lists.
func (m *Matcher) MatchKeywords(text string, keywords []string) Result {
	tokens := Tokenize(text)
	tokenSet := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = true
	}
	normalized := strings.ToLower(text)

	var result Result
	for _, keyword := range keywords {
		if m.matches(keyword, tokens, tokenSet, normalized) {
			result.Matched = append(result.Matched, keyword)
		} else {
			result.Missing = append(result.Missing, keyword)
		}
	}
	return result
}

func (m *Matcher) matches(keyword string, tokens []string, tokenSet map[string]bool, normalizedText string) bool {
	for _, candidate := range m.expand(keyword) {
		if tokenSet[candidate] {
			return true
		}
		// Terms longer than a bigram cannot appear in the token list.
		if strings.Count(candidate, " ") >= 2 && containsPhrase(normalizedText, candidate) {
			return true
		}
		for _, tok := range tokens {
			if sameArity(tok, candidate) && parsing.SimilarityRatio(tok, candidate) >= m.fuzzyThreshold {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) expand(keyword string) []string {
	if m.synonyms == nil {
		return []string{strings.ToLower(strings.TrimSpace(keyword))}
	}
	return m.synonyms.Expand(keyword)
}

// sameArity gates fuzzy comparison to token pairs with the same word count,
// so a unigram never fuzzily matches half of a bigram.
func sameArity(a, b string) bool {
	return strings.Count(a, " ") == strings.Count(b, " ")
}

// containsPhrase reports whether phrase occurs in text on word boundaries.
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], phrase)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(phrase)
		beforeOK := start == 0 || !isTokenRune(rune(text[start-1]))
		afterOK := end == len(text) || !isTokenRune(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
