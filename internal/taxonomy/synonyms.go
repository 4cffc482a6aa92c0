package taxonomy

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/schemas"
)

// Synonyms holds a bidirectional synonym table. The on-disk form maps a
// canonical term to its variants; the loaded form answers expansion in both
// directions so matching treats "ml" and "machine learning" as one term.
type Synonyms struct {
	canonical map[string][]string
	toCanon   map[string]string
}

// NewSynonyms builds a synonym table from a canonical-to-variants map.
// All terms are lowercased.
func NewSynonyms(canonical map[string][]string) *Synonyms {
	s := &Synonyms{
		canonical: make(map[string][]string, len(canonical)),
		toCanon:   make(map[string]string),
	}
	for canon, variants := range canonical {
		canon = strings.ToLower(canon)
		lowered := make([]string, 0, len(variants))
		for _, v := range variants {
			v = strings.ToLower(v)
			lowered = append(lowered, v)
			s.toCanon[v] = canon
		}
		s.canonical[canon] = lowered
	}
	return s
}

// LoadSynonyms reads and validates a synonyms JSON file. When schemaPath is
// non-empty the file is validated against that schema before parsing.
func LoadSynonyms(path, schemaPath string) (*Synonyms, error) {
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "synonyms schema validation", Cause: err}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read", Cause: err}
	}

	var file struct {
		Synonyms map[string][]string `json:"synonyms"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "parse", Cause: err}
	}
	return NewSynonyms(file.Synonyms), nil
}

// Expand returns the term together with every synonym of it, lowercased and
// sorted. A term with no table entry expands to itself alone. Expansion is
// symmetric: if expanding a canonical term yields a variant, expanding that
// variant yields the canonical term.
func (s *Synonyms) Expand(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	seen := map[string]bool{term: true}

	canon := term
	if c, ok := s.toCanon[term]; ok {
		canon = c
		seen[canon] = true
	}
	for _, v := range s.canonical[canon] {
		seen[v] = true
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
