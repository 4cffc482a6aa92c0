// Package types provides type definitions for structured data used throughout the resume-scanner system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// SeniorityLevel is the target seniority the resume is evaluated against.
type SeniorityLevel string

const (
	LevelEntry     SeniorityLevel = "entry"
	LevelMid       SeniorityLevel = "mid"
	LevelSenior    SeniorityLevel = "senior"
	LevelLead      SeniorityLevel = "lead"
	LevelExecutive SeniorityLevel = "executive"
)

// ScoringMode selects how category weights are distributed.
type ScoringMode string

const (
	// ModeKeywordHeavy shifts weight toward taxonomy keyword coverage,
	// approximating how automated screeners rank resumes.
	ModeKeywordHeavy ScoringMode = "keyword_heavy"
	// ModeQualityFocused shifts weight toward content quality signals
	// (action verbs, quantification, structure).
	ModeQualityFocused ScoringMode = "quality_focused"
)

// ScoreRequest carries the scoring inputs supplied by the caller.
type ScoreRequest struct {
	Role           string         `json:"role" validate:"required,min=1"`
	Level          SeniorityLevel `json:"level" validate:"required,oneof=entry mid senior lead executive"`
	Mode           ScoringMode    `json:"mode" validate:"required,oneof=keyword_heavy quality_focused"`
	JobDescription string         `json:"job_description,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
