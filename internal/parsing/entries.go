package parsing

import (
	"regexp"
	"strings"
)

// RawEntry is a run of consecutive lines believed to describe one job or one
// degree, before typed field extraction.
type RawEntry struct {
	Lines []string
}

// Text returns the entry's lines joined by newlines.
func (e *RawEntry) Text() string {
	return strings.Join(e.Lines, "\n")
}

// degreeTriggerPattern opens a new education entry. Degree names are matched
// case-insensitively as whole words so "Master of Science" triggers but
// "mastered the basics" does not.
var degreeTriggerPattern = regexp.MustCompile(`(?i)\b(bachelor|master|doctorate|doctoral|phd|ph\.d|associate|diploma|secondary|mba|b\.?sc|m\.?sc|b\.?tech|m\.?tech|b\.?a|m\.?a|b\.?s|m\.?s|b\.e)\b`)

// dateRangePattern recognizes the date spans that mark employer/title lines:
// "Jan 2020 - Mar 2022", "01/2020 - present", "2018 - 2021".
var dateRangePattern = regexp.MustCompile(`(?i)((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*\d{4}|\d{1,2}[/.-]\d{4}|\b(19|20)\d{2}\b)\s*(-|–|—|to)\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*\d{4}|\d{1,2}[/.-]\d{4}|\b(19|20)\d{2}\b|present|current|now|till date)`)

// titleCompanySeparators are the separators resumes use between a job title
// and the employer on a single line.
var titleCompanySeparators = []string{" at ", " @ ", " | ", " — ", " – ", " - "}

const (
	// fingerprintLength truncates the dedup fingerprint; beyond this the
	// first two lines add no discriminating signal.
	fingerprintLength = 120
	// DefaultDuplicateThreshold is the fuzzy similarity above which two
	// entries are considered fragments of one real entry. Tunable; 0.80 is
	// the shipped default, not a hard invariant.
	DefaultDuplicateThreshold = 0.80
)

// SplitExperienceEntries splits experience-section lines into discrete
// entries. A line carrying a recognizable date range or a title/company
// separator closes the accumulating entry and opens a new one; other lines
// append to the open entry. The last open entry is flushed at section end.
func SplitExperienceEntries(lines []string) []RawEntry {
	return splitOnTrigger(lines, isExperienceBoundary)
}

// SplitEducationEntries splits education-section lines on degree-keyword
// triggers.
func SplitEducationEntries(lines []string) []RawEntry {
	return splitOnTrigger(lines, func(line string) bool {
		return degreeTriggerPattern.MatchString(line)
	})
}

func splitOnTrigger(lines []string, isBoundary func(string) bool) []RawEntry {
	var entries []RawEntry
	var current []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isBoundary(line) && len(current) > 0 {
			entries = append(entries, RawEntry{Lines: current})
			current = nil
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		entries = append(entries, RawEntry{Lines: current})
	}

	return entries
}

// isExperienceBoundary reports whether a line plausibly starts a new job
// entry.
func isExperienceBoundary(line string) bool {
	if dateRangePattern.MatchString(line) {
		return true
	}

	// Short lines with a title/company separator read as headers; long prose
	// that happens to contain " - " does not.
	if len(line) < maxHeaderLength && !bulletOrNumberPrefix.MatchString(line) {
		for _, sep := range titleCompanySeparators {
			if strings.Contains(line, sep) {
				return true
			}
		}
	}

	return false
}

// DedupeEntries drops near-duplicate entries produced by boundary
// mis-detection. An entry is dropped when its fingerprint (lowercased
// truncated concatenation of its first two lines) exactly matches a kept
// entry, or when its first line is fuzzy-similar to a kept entry's first line
// above threshold. Kept entries stay in first-seen order.
func DedupeEntries(entries []RawEntry, threshold float64) []RawEntry {
	if threshold <= 0 {
		threshold = DefaultDuplicateThreshold
	}

	seen := make(map[string]bool)
	var kept []RawEntry
	var keptFirstLines []string

	for _, entry := range entries {
		if len(entry.Lines) == 0 {
			continue
		}

		fp := entryFingerprint(entry)
		if seen[fp] {
			continue
		}

		firstLine := entry.Lines[0]
		duplicate := false
		for _, keptLine := range keptFirstLines {
			if SimilarityRatio(firstLine, keptLine) >= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		seen[fp] = true
		kept = append(kept, entry)
		keptFirstLines = append(keptFirstLines, firstLine)
	}

	return kept
}

// entryFingerprint derives the short string used for exact duplicate
// detection: the lowercased first two lines, truncated.
func entryFingerprint(entry RawEntry) string {
	parts := entry.Lines
	if len(parts) > 2 {
		parts = parts[:2]
	}
	fp := strings.ToLower(strings.Join(parts, " "))
	if len(fp) > fingerprintLength {
		fp = fp[:fingerprintLength]
	}
	return fp
}
