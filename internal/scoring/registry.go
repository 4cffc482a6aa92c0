// Package scoring runs the parameter battery over a ResumeRecord and
// aggregates the results into a ScoreReport. Every parameter is an
// independent pure function over read-only input; one failing parameter is
// zeroed and annotated without aborting its siblings.
package scoring

import (
	"context"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Category names for parameter grouping.
const (
	CategoryKeywords  = "keywords"
	CategoryContent   = "content"
	CategoryStructure = "structure"
	CategoryPolish    = "polish"
)

// categoryOrder fixes the presentation order of categories in a report.
var categoryOrder = []string{CategoryKeywords, CategoryContent, CategoryStructure, CategoryPolish}

// categoryCaps holds the per-mode headline cap for each category. Caps sum
// to 100 in every mode; parameter maxima intentionally exceed the caps so
// the uncapped raw sum keeps the excellence signal.
var categoryCaps = map[types.ScoringMode]map[string]int{
	types.ModeKeywordHeavy: {
		CategoryKeywords:  45,
		CategoryContent:   25,
		CategoryStructure: 20,
		CategoryPolish:    10,
	},
	types.ModeQualityFocused: {
		CategoryKeywords:  30,
		CategoryContent:   35,
		CategoryStructure: 20,
		CategoryPolish:    15,
	},
}

// ParameterDefinition defines metadata for one scoring parameter.
type ParameterDefinition struct {
	ID        string
	Category  string
	MaxPoints int
}

// ParameterFunc computes one parameter's result. It must not mutate the
// input and must not depend on any other parameter's output.
type ParameterFunc func(ctx context.Context, in *Input) (*types.ParameterResult, error)

// parameter pairs a definition with its implementation.
type parameter struct {
	def ParameterDefinition
	fn  ParameterFunc
}

// ParameterRegistry holds the definitions of the full battery, in
// evaluation order.
var ParameterRegistry = []ParameterDefinition{
	{ID: "required_keywords", Category: CategoryKeywords, MaxPoints: 30},
	{ID: "preferred_keywords", Category: CategoryKeywords, MaxPoints: 15},
	{ID: "action_verbs", Category: CategoryContent, MaxPoints: 10},
	{ID: "quantification", Category: CategoryContent, MaxPoints: 10},
	{ID: "experience_level", Category: CategoryContent, MaxPoints: 10},
	{ID: "summary_quality", Category: CategoryContent, MaxPoints: 5},
	{ID: "section_completeness", Category: CategoryStructure, MaxPoints: 10},
	{ID: "contact_completeness", Category: CategoryStructure, MaxPoints: 10},
	{ID: "formatting", Category: CategoryPolish, MaxPoints: 10},
	{ID: "skills_breadth", Category: CategoryPolish, MaxPoints: 5},
}

// parameterFuncs maps parameter ids to their implementations.
var parameterFuncs = map[string]ParameterFunc{
	"required_keywords":    scoreRequiredKeywords,
	"preferred_keywords":   scorePreferredKeywords,
	"action_verbs":         scoreActionVerbs,
	"quantification":       scoreQuantification,
	"experience_level":     scoreExperienceLevel,
	"summary_quality":      scoreSummaryQuality,
	"section_completeness": scoreSectionCompleteness,
	"contact_completeness": scoreContactCompleteness,
	"formatting":           scoreFormatting,
	"skills_breadth":       scoreSkillsBreadth,
}
