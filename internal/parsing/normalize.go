// Package parsing converts extracted resume text into structured entities:
// it repairs extraction artifacts, segments text into sections, splits
// sections into entries, and pulls typed fields out of each entry.
package parsing

import (
	"regexp"
	"strings"
)

// spacedCapsPattern matches three or more single uppercase letters separated
// by single spaces, the artifact certain embedded fonts leave behind
// ("I N D I A N" instead of "INDIAN").
var spacedCapsPattern = regexp.MustCompile(`\b(?:[A-Z] ){2,}[A-Z]\b`)

// horizontalRunPattern matches runs of two or more spaces or tabs.
// Newlines are deliberately excluded so line structure survives for the
// section segmenter.
var horizontalRunPattern = regexp.MustCompile(`[ \t]{2,}`)

// NormalizeArtifacts repairs extraction artifacts in text. It collapses
// letter-spaced uppercase runs to their unspaced form and squeezes runs of
// horizontal whitespace to a single space. The function is idempotent:
// NormalizeArtifacts(NormalizeArtifacts(x)) == NormalizeArtifacts(x).
//
// It is applied to the full document text and again to every extracted field
// (names, companies, institutions), since stylized fonts can appear anywhere.
func NormalizeArtifacts(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, " ", " ")

	text = spacedCapsPattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.ReplaceAll(match, " ", "")
	})

	text = horizontalRunPattern.ReplaceAllString(text, " ")

	return text
}

// NormalizeField trims a single extracted field and repairs artifacts in it.
func NormalizeField(field string) string {
	return strings.TrimSpace(NormalizeArtifacts(field))
}
