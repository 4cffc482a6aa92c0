// Package types provides type definitions for structured data used throughout the resume-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind identifies a logical resume section.
type SectionKind string

const (
	SectionContact        SectionKind = "contact"
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionUnassigned     SectionKind = "unassigned"
)

// SectionMap maps each section kind to the ordered lines assigned to it.
// Every non-blank input line is assigned to exactly one kind; lines that
// match no header fall into SectionUnassigned rather than being dropped.
type SectionMap map[SectionKind][]string

// Lines returns the lines assigned to kind, or nil if none were.
func (m SectionMap) Lines(kind SectionKind) []string {
	return m[kind]
}

// Has reports whether any lines were assigned to kind.
func (m SectionMap) Has(kind SectionKind) bool {
	return len(m[kind]) > 0
}

// LineCount returns the total number of lines across all sections.
func (m SectionMap) LineCount() int {
	total := 0
	for _, lines := range m {
		total += len(lines)
	}
	return total
}
