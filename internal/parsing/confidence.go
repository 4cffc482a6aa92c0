package parsing

import (
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Confidence sub-check weights. Section completeness dominates because a
// resume missing whole sections cannot be scored meaningfully.
const (
	weightSections = 40
	weightQuality  = 30
	weightEntities = 30

	// minSkillsForConfidence is how many skills a complete extraction is
	// expected to yield.
	minSkillsForConfidence = 5

	// DefaultConfidenceThreshold is the score under which callers should
	// treat extraction as degraded and consider a re-parse. Tunable default,
	// not a hard invariant.
	DefaultConfidenceThreshold = 70
)

// ComputeConfidence derives a 0-100 estimate of extraction correctness from
// the structured record. The value gates whether a fallback re-parse is
// warranted; it is recomputed on demand, never stored.
//
// Breakdown: 40% section completeness (experience, education, enough
// skills), 30% data quality (valid email, plausible name, no residual
// spacing artifact in the name), 30% entity validation (fraction of entries
// with both halves of their identity populated).
func ComputeConfidence(record *types.ResumeRecord) types.ParseConfidence {
	checks := make(map[string]bool)
	score := 0.0

	// Section completeness: 40 points across three checks.
	sectionChecks := []struct {
		name string
		ok   bool
	}{
		{"has_experience", len(record.Experience) > 0},
		{"has_education", len(record.Education) > 0},
		{"has_skills", len(record.Skills) >= minSkillsForConfidence},
	}
	perSection := float64(weightSections) / float64(len(sectionChecks))
	for _, c := range sectionChecks {
		checks[c.name] = c.ok
		if c.ok {
			score += perSection
		}
	}

	// Data quality: 30 points across three checks.
	qualityChecks := []struct {
		name string
		ok   bool
	}{
		{"valid_email", emailPattern.MatchString(record.Contact.Email)},
		{"plausible_name", isPlausibleName(record.Contact.Name)},
		{"name_artifact_free", record.Contact.Name != "" && !hasSpacingArtifact(record.Contact.Name)},
	}
	perQuality := float64(weightQuality) / float64(len(qualityChecks))
	for _, c := range qualityChecks {
		checks[c.name] = c.ok
		if c.ok {
			score += perQuality
		}
	}

	// Entity validation: 30 points scaled by the fraction of complete
	// entries.
	fraction := completeEntryFraction(record)
	checks["entities_complete"] = fraction >= 0.5
	score += float64(weightEntities) * fraction

	return types.ParseConfidence{
		Score:  int(score + 0.5),
		Checks: checks,
	}
}

// completeEntryFraction returns the fraction of experience and education
// entries carrying both halves of their identity (title+company,
// degree+institution). A record with no entries at all scores zero.
func completeEntryFraction(record *types.ResumeRecord) float64 {
	total := len(record.Experience) + len(record.Education)
	if total == 0 {
		return 0.0
	}

	complete := 0
	for _, exp := range record.Experience {
		if exp.Title != "" && exp.Company != "" {
			complete++
		}
	}
	for _, edu := range record.Education {
		if edu.Degree != "" && edu.Institution != "" {
			complete++
		}
	}

	return float64(complete) / float64(total)
}

// hasSpacingArtifact reports whether a field still carries the
// letter-by-letter spacing artifact the normalizer should have repaired.
func hasSpacingArtifact(field string) bool {
	if spacedCapsPattern.MatchString(field) {
		return true
	}
	// A name whose words are overwhelmingly single letters is an artifact
	// even below the pattern's three-letter trigger.
	words := strings.Fields(field)
	if len(words) < 4 {
		return false
	}
	single := 0
	for _, w := range words {
		if len(w) == 1 {
			single++
		}
	}
	return single*2 > len(words)
}
