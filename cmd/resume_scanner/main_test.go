package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		format  types.DocumentFormat
		wantErr bool
	}{
		{"resume.pdf", types.FormatPDF, false},
		{"Resume.PDF", types.FormatPDF, false},
		{"resume.docx", types.FormatDOCX, false},
		{"resume.doc", "", true},
		{"resume.txt", "", true},
		{"resume", "", true},
	}
	for _, tc := range tests {
		format, err := detectFormat(tc.path)
		if tc.wantErr {
			assert.Error(t, err, tc.path)
		} else {
			require.NoError(t, err, tc.path)
			assert.Equal(t, tc.format, format)
		}
	}
}

func TestLoadScannerConfigDefaults(t *testing.T) {
	cfg, err := loadScannerConfig("")
	require.NoError(t, err)

	assert.Equal(t, 0.80, cfg.FuzzyThreshold)
	assert.Equal(t, 70, cfg.ConfidenceThreshold)
	assert.FileExists(t, cfg.TaxonomyPath)
	assert.FileExists(t, cfg.SynonymsPath)
}

func TestBuildScannerFromShippedReferenceData(t *testing.T) {
	cfg, err := loadScannerConfig("")
	require.NoError(t, err)

	scanner, err := buildScanner(cfg)
	require.NoError(t, err)
	assert.NotNil(t, scanner)
}

func TestCommandsAreRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["parse"])
	assert.True(t, names["score"])
	assert.True(t, names["taxonomy"])
}

func TestParseRequiresFileFlag(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"parse"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestTaxonomyValidateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"taxonomy", "validate"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "valid")
}

func TestTaxonomyRolesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"taxonomy", "roles"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "backend_engineer")
}

func writeResumeDOCX(t *testing.T) string {
	t.Helper()

	paragraphs := []string{
		"Jane Doe",
		"jane.doe@example.com",
		"+1 415-555-2671",
		"PROFESSIONAL SUMMARY",
		"Backend engineer with eight years of experience building distributed systems in Go.",
		"EXPERIENCE",
		"Senior Software Engineer - Acme Corp, Jan 2019 - Present",
		"Led migration of payment services to Go, cutting latency 40%",
		"EDUCATION",
		"Bachelor of Science in Computer Science - State University, 2015",
		"SKILLS",
		"Go, SQL, Kubernetes, Docker, gRPC, PostgreSQL",
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var doc strings.Builder
	doc.WriteString(`<w:document><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)
	_, err = w.Write([]byte(doc.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "jane_doe.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestScoreCommandEndToEnd(t *testing.T) {
	path := writeResumeDOCX(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"score",
		"--file", path,
		"--role", "backend_engineer",
		"--level", "senior",
		"--json",
	})

	require.NoError(t, rootCmd.Execute())

	var report types.ScoreReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "backend_engineer", report.Role)
	assert.GreaterOrEqual(t, report.Overall, 0)
	assert.LessOrEqual(t, report.Overall, 100)
	assert.NotEmpty(t, report.Categories)
}

func TestParseCommandEndToEnd(t *testing.T) {
	path := writeResumeDOCX(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"parse", "--file", path, "--json"})

	require.NoError(t, rootCmd.Execute())

	var parsed struct {
		Record     types.ResumeRecord   `json:"record"`
		Confidence types.ParseConfidence `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, "Jane Doe", parsed.Record.Contact.Name)
	assert.Greater(t, parsed.Confidence.Score, 0)
}
