// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(record.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(record.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(record.Contact.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(record.Contact.Location)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:     %d\n", len(record.Certifications)))

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Skills[i]))
		}
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Source: %s (%s, %d words)", orDash(record.Metadata.Filename), record.Metadata.Strategy, record.Metadata.WordCount))

	p.printBox("EXTRACTED RESUME", sb.String())
}

// PrintConfidence outputs the parse-confidence score with its check breakdown.
func (p *Printer) PrintConfidence(confidence types.ParseConfidence) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d / 100\n\n", confidence.Score))

	checks := make([]string, 0, len(confidence.Checks))
	for name := range confidence.Checks {
		checks = append(checks, name)
	}
	sort.Strings(checks)

	for _, name := range checks {
		mark := "✗"
		if confidence.Checks[name] {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, name))
	}

	p.printBox("PARSE CONFIDENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs category scores and the top issues.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %d / 100\n", report.Overall))
	sb.WriteString(fmt.Sprintf("Role:     %s (%s, %s)\n\n", report.Role, report.Level, report.Mode))

	for _, cat := range report.Categories {
		sb.WriteString(fmt.Sprintf("%-12s %3d / %3d", cat.Name, cat.Score, cat.Max))
		if cat.RawScore > cat.Score {
			sb.WriteString(fmt.Sprintf("  (raw %d)", cat.RawScore))
		}
		sb.WriteString("\n")
	}

	if len(report.Issues) > 0 {
		sb.WriteString("\nTop issues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", issue.Severity, issue.Message))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	p.printBox("SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
