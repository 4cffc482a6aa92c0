// Package types provides type definitions for structured data used throughout the resume-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Severity ranks an issue by how strongly it should be surfaced to the user.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
	SeverityInfo       Severity = "info"
)

// severityRank orders severities for sorting, most urgent first.
var severityRank = map[Severity]int{
	SeverityCritical:   0,
	SeverityWarning:    1,
	SeveritySuggestion: 2,
	SeverityInfo:       3,
}

// Issue is a single actionable piece of feedback attached to a report.
type Issue struct {
	Severity    Severity `json:"severity"`
	Parameter   string   `json:"parameter"`
	Message     string   `json:"message"`
	PointImpact int      `json:"point_impact"` // points lost relative to the parameter max
}

// ParameterResult is the output of one independent scoring parameter.
type ParameterResult struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Points    int      `json:"points"`
	MaxPoints int      `json:"max_points"`
	Matched   []string `json:"matched,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	Message   string   `json:"message,omitempty"`
	Error     string   `json:"error,omitempty"` // set when the parameter failed and was zeroed
	Issues    []Issue  `json:"issues,omitempty"`
}

// CategoryScore aggregates the parameters belonging to one weighted category.
type CategoryScore struct {
	Name       string            `json:"name"`
	Score      int               `json:"score"`   // capped at Max
	RawScore   int               `json:"raw"`     // uncapped sum, preserves excellence signal
	Max        int               `json:"max"`
	Parameters []ParameterResult `json:"parameters"`
}

// ScoreReport is the immutable result of one scoring call.
type ScoreReport struct {
	ID         uuid.UUID       `json:"id"`
	Role       string          `json:"role"`
	Level      SeniorityLevel  `json:"level"`
	Mode       ScoringMode     `json:"mode"`
	Overall    int             `json:"overall"` // 0-100, sum of capped categories
	Categories []CategoryScore `json:"categories"`
	Issues     []Issue         `json:"issues"`
}

// IssuesBySeverity groups the report's issues keyed by severity string,
// the shape consumed by external serializers.
func (r *ScoreReport) IssuesBySeverity() map[Severity][]Issue {
	grouped := make(map[Severity][]Issue)
	for _, issue := range r.Issues {
		grouped[issue.Severity] = append(grouped[issue.Severity], issue)
	}
	return grouped
}

// DedupeAndRankIssues removes issues with duplicate normalized messages and
// orders the rest severity-first, then by point impact descending.
// The first occurrence of a duplicated message wins.
func DedupeAndRankIssues(issues []Issue) []Issue {
	seen := make(map[string]bool)
	deduped := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		key := normalizeIssueMessage(issue.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, issue)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		ri, rj := severityRank[deduped[i].Severity], severityRank[deduped[j].Severity]
		if ri != rj {
			return ri < rj
		}
		return deduped[i].PointImpact > deduped[j].PointImpact
	})

	return deduped
}

// normalizeIssueMessage canonicalizes a message for duplicate detection.
func normalizeIssueMessage(msg string) string {
	return strings.Join(strings.Fields(strings.ToLower(msg)), " ")
}
