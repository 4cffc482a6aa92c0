package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestPrintResumeRecord(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintResumeRecord(&types.ResumeRecord{
		Contact:    types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Experience: []types.ExperienceEntry{{Title: "Engineer"}},
		Skills:     []string{"Go", "SQL", "Docker", "Kafka", "Redis", "Terraform", "AWS"},
		Metadata:   types.DocumentMetadata{Filename: "jane.pdf", Strategy: "pdf_native", WordCount: 480},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Experience entries: 1")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintResumeRecordNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeRecord(nil)

	assert.Empty(t, buf.String())
}

func TestPrintConfidenceShowsChecks(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintConfidence(types.ParseConfidence{
		Score:  82,
		Checks: map[string]bool{"valid_email": true, "has_skills": false},
	})

	out := buf.String()
	assert.Contains(t, out, "82 / 100")
	assert.Contains(t, out, "✓ valid_email")
	assert.Contains(t, out, "✗ has_skills")
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintScoreReport(&types.ScoreReport{
		Role:    "backend_engineer",
		Level:   types.LevelSenior,
		Mode:    types.ModeKeywordHeavy,
		Overall: 78,
		Categories: []types.CategoryScore{
			{Name: "keywords", Score: 40, RawScore: 45, Max: 45},
		},
		Issues: []types.Issue{
			{Severity: types.SeverityWarning, Message: "no phone number found"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SCORE REPORT")
	assert.Contains(t, out, "78 / 100")
	assert.Contains(t, out, "(raw 45)")
	assert.Contains(t, out, "[warning] no phone number found")
}
