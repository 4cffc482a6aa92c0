package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/pipeline"
	"github.com/jonathan/resume-scanner/internal/schemas"
	"github.com/jonathan/resume-scanner/internal/taxonomy"
	"github.com/jonathan/resume-scanner/internal/types"
)

// loadScannerConfig loads the optional config file and merges it with the
// shipped defaults.
func loadScannerConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	merged := cfg.MergeWithDefaults(config.DefaultConfig())

	// Reference paths in the defaults are repo-relative; resolve them so
	// the CLI works from nested working directories too.
	merged.TaxonomyPath = resolvePath(merged.TaxonomyPath)
	merged.SynonymsPath = resolvePath(merged.SynonymsPath)
	merged.TaxonomySchemaPath = resolvePath(merged.TaxonomySchemaPath)
	merged.SynonymsSchemaPath = resolvePath(merged.SynonymsSchemaPath)

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if resolved := schemas.ResolveSchemaPath(path); resolved != "" {
		return resolved
	}
	return path
}

// buildScanner loads reference data per config and wires up a scanner.
func buildScanner(cfg config.Config) (*pipeline.Scanner, error) {
	tax, err := taxonomy.LoadTaxonomy(cfg.TaxonomyPath, cfg.TaxonomySchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	syn, err := taxonomy.LoadSynonyms(cfg.SynonymsPath, cfg.SynonymsSchemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load synonyms: %w", err)
	}

	return pipeline.NewScanner(pipeline.Config{
		Taxonomy:           tax,
		Synonyms:           syn,
		DuplicateThreshold: cfg.DuplicateThreshold,
		FuzzyThreshold:     cfg.FuzzyThreshold,
		ExtractionBudget:   time.Duration(cfg.ExtractionBudgetSeconds) * time.Second,
	}), nil
}

// detectFormat maps a filename extension to a document format.
func detectFormat(path string) (types.DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.FormatPDF, nil
	case ".docx":
		return types.FormatDOCX, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q: expected .pdf or .docx", filepath.Ext(path))
	}
}
