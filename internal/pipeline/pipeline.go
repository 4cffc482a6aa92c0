// Package pipeline provides the high-level orchestration for resume
// scanning: Process turns uploaded document bytes into a ResumeRecord, and
// Score turns a ResumeRecord plus a scoring request into a ScoreReport.
// A Scanner is stateless across calls; documents may be processed in
// parallel with no coordination.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/matching"
	"github.com/jonathan/resume-scanner/internal/parsing"
	"github.com/jonathan/resume-scanner/internal/scoring"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
	"github.com/jonathan/resume-scanner/internal/types"
)

// Config wires the reference data and thresholds into a Scanner.
type Config struct {
	Taxonomy *taxonomy.Taxonomy
	Synonyms *taxonomy.Synonyms

	// DuplicateThreshold is the fuzzy-similarity ratio above which two
	// split entries are treated as one. Zero selects the default.
	DuplicateThreshold float64

	// FuzzyThreshold is the keyword-matching similarity floor. Zero
	// selects the default.
	FuzzyThreshold float64

	// ExtractionBudget caps wall-clock time across extraction fallbacks
	// for one document. Zero selects the default.
	ExtractionBudget time.Duration
}

// ProcessOptions carries one document through extraction.
type ProcessOptions struct {
	Data     []byte
	Format   types.DocumentFormat
	Filename string
}

// Scanner runs the extraction and scoring pipelines.
type Scanner struct {
	extractor          *extraction.Extractor
	taxonomy           *taxonomy.Taxonomy
	synonyms           *taxonomy.Synonyms
	engine             *scoring.Engine
	duplicateThreshold float64
	fuzzyThreshold     float64
}

// NewScanner builds a scanner from config, applying defaults for unset
// thresholds.
func NewScanner(cfg Config) *Scanner {
	dup := cfg.DuplicateThreshold
	if dup <= 0 {
		dup = parsing.DefaultDuplicateThreshold
	}
	fuzzy := cfg.FuzzyThreshold
	if fuzzy <= 0 {
		fuzzy = matching.DefaultFuzzyThreshold
	}
	return &Scanner{
		extractor:          extraction.NewExtractorWithBudget(cfg.ExtractionBudget),
		taxonomy:           cfg.Taxonomy,
		synonyms:           cfg.Synonyms,
		engine:             scoring.NewEngine(),
		duplicateThreshold: dup,
		fuzzyThreshold:     fuzzy,
	}
}

// Process extracts a ResumeRecord from raw document bytes. Extraction
// exhausting every strategy is the only fatal outcome; a record with weak
// content is still returned, with its quality reflected by Confidence.
func (s *Scanner) Process(ctx context.Context, opts ProcessOptions) (*types.ResumeRecord, error) {
	extracted, err := s.extractor.Extract(ctx, opts.Data, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", opts.Filename, err)
	}

	text := parsing.NormalizeArtifacts(extracted.Text)
	sections := parsing.SegmentSections(text)

	record := &types.ResumeRecord{
		Contact:        parsing.ExtractContact(text),
		Summary:        strings.Join(sections.Lines(types.SectionSummary), "\n"),
		Experience:     s.experienceEntries(sections),
		Education:      s.educationEntries(sections),
		Skills:         parsing.FilterSkills(sections.Lines(types.SectionSkills)),
		Certifications: certificationEntries(sections),
		Metadata: types.DocumentMetadata{
			Filename:  opts.Filename,
			Format:    opts.Format,
			PageCount: extracted.PageCount,
			WordCount: len(strings.Fields(text)),
			HasPhoto:  extracted.HasPhoto,
			Strategy:  extracted.Strategy,
		},
		RawText: text,
	}
	return record, nil
}

// Confidence recomputes the parse confidence for a record.
func (s *Scanner) Confidence(record *types.ResumeRecord) types.ParseConfidence {
	return parsing.ComputeConfidence(record)
}

// Score evaluates a record against a role, level, and mode. Request
// validation failures and unknown (role, level) pairs return typed errors
// distinct from document-processing failures.
func (s *Scanner) Score(ctx context.Context, record *types.ResumeRecord, req types.ScoreRequest) (*types.ScoreReport, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid score request: %w", err)
	}

	keywords, err := s.taxonomy.Lookup(req.Role, req.Level)
	if err != nil {
		return nil, err
	}

	matcher := matching.NewMatcher(s.synonyms, s.fuzzyThreshold)
	input := scoring.NewInput(record, keywords, matcher, req.Level, req.JobDescription)
	return s.engine.Score(ctx, input, req.Role, req.Mode), nil
}

func (s *Scanner) experienceEntries(sections types.SectionMap) []types.ExperienceEntry {
	raw := parsing.SplitExperienceEntries(sections.Lines(types.SectionExperience))
	raw = parsing.DedupeEntries(raw, s.duplicateThreshold)

	entries := make([]types.ExperienceEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, parsing.ParseExperienceEntry(r))
	}
	return entries
}

func (s *Scanner) educationEntries(sections types.SectionMap) []types.EducationEntry {
	raw := parsing.SplitEducationEntries(sections.Lines(types.SectionEducation))
	raw = parsing.DedupeEntries(raw, s.duplicateThreshold)

	entries := make([]types.EducationEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, parsing.ParseEducationEntry(r))
	}
	return entries
}

func certificationEntries(sections types.SectionMap) []types.CertificationEntry {
	var entries []types.CertificationEntry
	for _, line := range sections.Lines(types.SectionCertifications) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, parsing.ParseCertification(line))
	}
	return entries
}
