package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
	"github.com/jonathan/resume-scanner/internal/types"
)

// Input is the read-only bundle every parameter scores against.
type Input struct {
	Record   *types.ResumeRecord
	Keywords *taxonomy.RoleKeywords
	Matcher  *matching.Matcher
	Level    types.SeniorityLevel
	JobText  string

	// text caches the searchable document text; built once per scoring call.
	text string
}

// NewInput builds a parameter input, precomputing the searchable text.
func NewInput(record *types.ResumeRecord, keywords *taxonomy.RoleKeywords, matcher *matching.Matcher, level types.SeniorityLevel, jobText string) *Input {
	return &Input{
		Record:   record,
		Keywords: keywords,
		Matcher:  matcher,
		Level:    level,
		JobText:  jobText,
		text:     documentText(record),
	}
}

// documentText flattens a record into the text keyword matching runs over.
// The raw extracted text is preferred; structured fields are the fallback
// when the record was built programmatically.
func documentText(record *types.ResumeRecord) string {
	if record.RawText != "" {
		return record.RawText
	}
	var b strings.Builder
	b.WriteString(record.Summary)
	b.WriteString("\n")
	for _, exp := range record.Experience {
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Company)
		b.WriteString("\n")
		b.WriteString(exp.Description)
		b.WriteString("\n")
	}
	for _, edu := range record.Education {
		b.WriteString(edu.Degree)
		b.WriteString(" ")
		b.WriteString(edu.Institution)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(record.Skills, "\n"))
	b.WriteString("\n")
	for _, cert := range record.Certifications {
		b.WriteString(cert.Name)
		b.WriteString("\n")
	}
	return b.String()
}

var (
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	digitPattern = regexp.MustCompile(`\d`)

	// metricPattern marks a bullet as quantified: percentages, money,
	// multipliers, or plain counts with scale words.
	metricPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(%|percent|x\b|ms\b|s\b|k\b|m\b|million|billion|users|requests|qps|rps)|\$\s*\d|\d{2,}`)
)

// actionVerbs is the closed set of strong bullet openers.
var actionVerbs = map[string]bool{
	"led": true, "built": true, "designed": true, "developed": true,
	"implemented": true, "launched": true, "managed": true, "improved": true,
	"reduced": true, "increased": true, "created": true, "delivered": true,
	"automated": true, "migrated": true, "optimized": true, "architected": true,
	"shipped": true, "drove": true, "owned": true, "scaled": true,
	"mentored": true, "refactored": true, "deployed": true, "maintained": true,
}

// expectedYears is the minimum professional experience assumed per level.
var expectedYears = map[types.SeniorityLevel]int{
	types.LevelEntry:     0,
	types.LevelMid:       2,
	types.LevelSenior:    5,
	types.LevelLead:      8,
	types.LevelExecutive: 10,
}

func scoreRequiredKeywords(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 30
	result := in.Matcher.MatchKeywords(in.text, in.Keywords.Required)

	points := scaled(result.Coverage(), maxPoints)
	pr := &types.ParameterResult{
		ID:        "required_keywords",
		Category:  CategoryKeywords,
		Points:    points,
		MaxPoints: maxPoints,
		Matched:   result.Matched,
		Missing:   result.Missing,
		Message:   fmt.Sprintf("%d of %d required keywords found", len(result.Matched), len(result.Matched)+len(result.Missing)),
	}

	if len(result.Missing) > 0 {
		severity := types.SeverityWarning
		if result.Coverage() < 0.5 {
			severity = types.SeverityCritical
		}
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    severity,
			Parameter:   pr.ID,
			Message:     "missing required keywords: " + strings.Join(result.Missing, ", "),
			PointImpact: maxPoints - points,
		})
	}
	return pr, nil
}

func scorePreferredKeywords(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 15
	result := in.Matcher.MatchKeywords(in.text, in.Keywords.Preferred)

	points := scaled(result.Coverage(), maxPoints)
	pr := &types.ParameterResult{
		ID:        "preferred_keywords",
		Category:  CategoryKeywords,
		Points:    points,
		MaxPoints: maxPoints,
		Matched:   result.Matched,
		Missing:   result.Missing,
		Message:   fmt.Sprintf("%d of %d preferred keywords found", len(result.Matched), len(result.Matched)+len(result.Missing)),
	}

	for _, missing := range result.Missing {
		severity := types.SeveritySuggestion
		// A preferred keyword the job posting itself mentions is worth
		// flagging louder than one only the taxonomy suggests.
		if in.JobText != "" && keywordInJob(in, missing) {
			severity = types.SeverityWarning
		}
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    severity,
			Parameter:   pr.ID,
			Message:     fmt.Sprintf("consider adding preferred keyword %q", missing),
			PointImpact: maxPoints / max(len(in.Keywords.Preferred), 1),
		})
	}
	return pr, nil
}

func keywordInJob(in *Input, keyword string) bool {
	jobResult := in.Matcher.MatchKeywords(in.JobText, []string{keyword})
	return len(jobResult.Matched) == 1
}

func scoreActionVerbs(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	bullets := experienceBullets(in.Record)
	pr := &types.ParameterResult{ID: "action_verbs", Category: CategoryContent, MaxPoints: maxPoints}

	if len(bullets) == 0 {
		pr.Message = "no experience bullets to evaluate"
		return pr, nil
	}

	strong := 0
	for _, bullet := range bullets {
		words := strings.Fields(strings.ToLower(bullet))
		if len(words) > 0 && actionVerbs[strings.Trim(words[0], ".,;:")] {
			strong++
		}
	}

	ratio := float64(strong) / float64(len(bullets))
	pr.Points = scaled(ratio, maxPoints)
	pr.Message = fmt.Sprintf("%d of %d bullets open with an action verb", strong, len(bullets))

	if ratio < 0.5 {
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     "most experience bullets do not start with an action verb",
			PointImpact: maxPoints - pr.Points,
		})
	}
	return pr, nil
}

func scoreQuantification(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	bullets := experienceBullets(in.Record)
	pr := &types.ParameterResult{ID: "quantification", Category: CategoryContent, MaxPoints: maxPoints}

	if len(bullets) == 0 {
		pr.Message = "no experience bullets to evaluate"
		return pr, nil
	}

	quantified := 0
	for _, bullet := range bullets {
		if metricPattern.MatchString(bullet) {
			quantified++
		}
	}

	ratio := float64(quantified) / float64(len(bullets))
	// A third of bullets carrying a metric is already strong writing.
	pr.Points = scaled(min(ratio*3, 1.0), maxPoints)
	pr.Message = fmt.Sprintf("%d of %d bullets include a measurable result", quantified, len(bullets))

	if quantified == 0 {
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeveritySuggestion,
			Parameter:   pr.ID,
			Message:     "no experience bullet includes a number; quantify impact where possible",
			PointImpact: maxPoints,
		})
	}
	return pr, nil
}

func scoreExperienceLevel(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	pr := &types.ParameterResult{ID: "experience_level", Category: CategoryContent, MaxPoints: maxPoints}

	years := estimateYears(in.Record.Experience, time.Now().Year())
	expected := expectedYears[in.Level]
	pr.Message = fmt.Sprintf("estimated %d years of experience against a %s-level target", years, in.Level)

	switch {
	case expected == 0:
		pr.Points = maxPoints
	case years >= expected:
		pr.Points = maxPoints
	default:
		pr.Points = scaled(float64(years)/float64(expected), maxPoints)
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     fmt.Sprintf("resume shows about %d years of experience; %s roles typically expect %d or more", years, in.Level, expected),
			PointImpact: maxPoints - pr.Points,
		})
	}
	return pr, nil
}

func scoreSummaryQuality(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 5
	pr := &types.ParameterResult{ID: "summary_quality", Category: CategoryContent, MaxPoints: maxPoints}

	summary := strings.TrimSpace(in.Record.Summary)
	if summary == "" {
		pr.Message = "no professional summary found"
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeveritySuggestion,
			Parameter:   pr.ID,
			Message:     "add a short professional summary near the top of the resume",
			PointImpact: maxPoints,
		})
		return pr, nil
	}

	pr.Points = 2
	if len(summary) >= 80 && len(summary) <= 600 {
		pr.Points += 2
	} else {
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeveritySuggestion,
			Parameter:   pr.ID,
			Message:     "keep the summary between two and four sentences",
			PointImpact: 2,
		})
	}
	if digitPattern.MatchString(summary) {
		pr.Points++
	}
	pr.Message = fmt.Sprintf("summary present (%d characters)", len(summary))
	return pr, nil
}

func scoreSectionCompleteness(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	pr := &types.ParameterResult{ID: "section_completeness", Category: CategoryStructure, MaxPoints: maxPoints}

	record := in.Record
	addMissing := func(points int, severity types.Severity, what string) {
		pr.Missing = append(pr.Missing, what)
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    severity,
			Parameter:   pr.ID,
			Message:     "resume has no " + what + " section",
			PointImpact: points,
		})
	}

	if len(record.Experience) > 0 {
		pr.Points += 4
		pr.Matched = append(pr.Matched, "experience")
	} else {
		addMissing(4, types.SeverityCritical, "experience")
	}
	if len(record.Education) > 0 {
		pr.Points += 2
		pr.Matched = append(pr.Matched, "education")
	} else {
		addMissing(2, types.SeverityWarning, "education")
	}
	if len(record.Skills) > 0 {
		pr.Points += 2
		pr.Matched = append(pr.Matched, "skills")
	} else {
		addMissing(2, types.SeverityWarning, "skills")
	}
	if strings.TrimSpace(record.Summary) != "" {
		pr.Points++
		pr.Matched = append(pr.Matched, "summary")
	} else {
		addMissing(1, types.SeveritySuggestion, "summary")
	}
	if len(record.Certifications) > 0 {
		pr.Points++
		pr.Matched = append(pr.Matched, "certifications")
	} else {
		pr.Missing = append(pr.Missing, "certifications")
	}

	pr.Message = fmt.Sprintf("%d of 5 core sections present", len(pr.Matched))
	return pr, nil
}

func scoreContactCompleteness(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	pr := &types.ParameterResult{ID: "contact_completeness", Category: CategoryStructure, MaxPoints: maxPoints}

	contact := in.Record.Contact
	if contact.Email != "" {
		pr.Points += 3
		pr.Matched = append(pr.Matched, "email")
	} else {
		pr.Missing = append(pr.Missing, "email")
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityCritical,
			Parameter:   pr.ID,
			Message:     "no email address found; recruiters cannot reach the candidate",
			PointImpact: 3,
		})
	}
	if contact.Phone != "" {
		pr.Points += 2
		pr.Matched = append(pr.Matched, "phone")
	} else {
		pr.Missing = append(pr.Missing, "phone")
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     "no phone number found",
			PointImpact: 2,
		})
	}
	if contact.Name != "" {
		pr.Points += 2
		pr.Matched = append(pr.Matched, "name")
	} else {
		pr.Missing = append(pr.Missing, "name")
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     "no candidate name detected",
			PointImpact: 2,
		})
	}
	if contact.Location != "" {
		pr.Points++
		pr.Matched = append(pr.Matched, "location")
	} else {
		pr.Missing = append(pr.Missing, "location")
	}
	if contact.LinkedIn != "" {
		pr.Points++
		pr.Matched = append(pr.Matched, "linkedin")
	} else {
		pr.Missing = append(pr.Missing, "linkedin")
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeveritySuggestion,
			Parameter:   pr.ID,
			Message:     "add a LinkedIn profile link",
			PointImpact: 1,
		})
	}
	if contact.GitHub != "" {
		pr.Points++
		pr.Matched = append(pr.Matched, "github")
	} else {
		pr.Missing = append(pr.Missing, "github")
	}

	pr.Message = fmt.Sprintf("%d of 6 contact fields present", len(pr.Matched))
	return pr, nil
}

func scoreFormatting(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 10
	pr := &types.ParameterResult{ID: "formatting", Category: CategoryPolish, Points: maxPoints, MaxPoints: maxPoints}

	meta := in.Record.Metadata
	if meta.WordCount > 0 {
		if meta.WordCount < 300 {
			pr.Points -= 3
			pr.Issues = append(pr.Issues, types.Issue{
				Severity:    types.SeverityWarning,
				Parameter:   pr.ID,
				Message:     fmt.Sprintf("resume is short (%d words); aim for 400 to 1000", meta.WordCount),
				PointImpact: 3,
			})
		} else if meta.WordCount > 1200 {
			pr.Points -= 2
			pr.Issues = append(pr.Issues, types.Issue{
				Severity:    types.SeveritySuggestion,
				Parameter:   pr.ID,
				Message:     fmt.Sprintf("resume is long (%d words); trim toward 1000 or fewer", meta.WordCount),
				PointImpact: 2,
			})
		}
	}
	if meta.PageCount > 2 {
		pr.Points -= 2
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeveritySuggestion,
			Parameter:   pr.ID,
			Message:     fmt.Sprintf("resume runs %d pages; two is the usual ceiling", meta.PageCount),
			PointImpact: 2,
		})
	}
	if meta.HasPhoto {
		pr.Points -= 3
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     "embedded photo detected; automated screeners often mishandle images",
			PointImpact: 3,
		})
	}
	if pr.Points < 0 {
		pr.Points = 0
	}
	pr.Message = "formatting checks on length, pages, and images"
	return pr, nil
}

func scoreSkillsBreadth(_ context.Context, in *Input) (*types.ParameterResult, error) {
	const maxPoints = 5
	pr := &types.ParameterResult{ID: "skills_breadth", Category: CategoryPolish, MaxPoints: maxPoints}

	count := len(in.Record.Skills)
	switch {
	case count >= 10:
		pr.Points = maxPoints
	case count >= 5:
		pr.Points = 3
	case count >= 1:
		pr.Points = 1
	default:
		pr.Issues = append(pr.Issues, types.Issue{
			Severity:    types.SeverityWarning,
			Parameter:   pr.ID,
			Message:     "no skills section content detected",
			PointImpact: maxPoints,
		})
	}
	pr.Message = fmt.Sprintf("%d distinct skills listed", count)
	return pr, nil
}

// experienceBullets flattens experience descriptions into trimmed lines.
func experienceBullets(record *types.ResumeRecord) []string {
	var bullets []string
	for _, exp := range record.Experience {
		for _, line := range strings.Split(exp.Description, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(line, "•◦▪·-* \t"))
			if line != "" {
				bullets = append(bullets, line)
			}
		}
	}
	return bullets
}

// estimateYears sums per-entry durations from the years in date strings.
// Open-ended entries run to the current year.
func estimateYears(entries []types.ExperienceEntry, currentYear int) int {
	total := 0
	for _, entry := range entries {
		start := firstYear(entry.StartDate)
		if start == 0 {
			continue
		}
		end := firstYear(entry.EndDate)
		if end == 0 {
			if entry.IsCurrent() || entry.EndDate == "" {
				end = currentYear
			} else {
				continue
			}
		}
		if end >= start {
			total += end - start
		}
	}
	return total
}

func firstYear(date string) int {
	match := yearPattern.FindString(date)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// scaled converts a [0,1] ratio to points out of maxPoints, rounding to
// nearest.
func scaled(ratio float64, maxPoints int) int {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return int(ratio*float64(maxPoints) + 0.5)
}
