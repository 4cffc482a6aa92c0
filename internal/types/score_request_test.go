package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRequest_Validate_Valid(t *testing.T) {
	req := &ScoreRequest{
		Role:  "backend_engineer",
		Level: LevelSenior,
		Mode:  ModeKeywordHeavy,
	}
	assert.NoError(t, req.Validate())
}

func TestScoreRequest_Validate_MissingRole(t *testing.T) {
	req := &ScoreRequest{
		Level: LevelMid,
		Mode:  ModeQualityFocused,
	}
	assert.Error(t, req.Validate())
}

func TestScoreRequest_Validate_UnknownLevel(t *testing.T) {
	req := &ScoreRequest{
		Role:  "backend_engineer",
		Level: SeniorityLevel("intern"),
		Mode:  ModeKeywordHeavy,
	}
	assert.Error(t, req.Validate())
}

func TestScoreRequest_Validate_UnknownMode(t *testing.T) {
	req := &ScoreRequest{
		Role:  "backend_engineer",
		Level: LevelEntry,
		Mode:  ScoringMode("balanced"),
	}
	assert.Error(t, req.Validate())
}

func TestExperienceEntry_IsCurrent(t *testing.T) {
	assert.True(t, (&ExperienceEntry{EndDate: PresentSentinel}).IsCurrent())
	assert.False(t, (&ExperienceEntry{EndDate: "2021"}).IsCurrent())
}

func TestSectionMap_Coverage(t *testing.T) {
	m := SectionMap{
		SectionExperience: {"line a", "line b"},
		SectionUnassigned: {"stray"},
	}

	assert.True(t, m.Has(SectionExperience))
	assert.False(t, m.Has(SectionSkills))
	assert.Equal(t, 3, m.LineCount())
	assert.Equal(t, []string{"stray"}, m.Lines(SectionUnassigned))
}
