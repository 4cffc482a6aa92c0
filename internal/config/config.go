// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the scanner configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Reference data
	TaxonomyPath       string `json:"taxonomy,omitempty"`        // Path to taxonomy JSON
	SynonymsPath       string `json:"synonyms,omitempty"`        // Path to synonyms JSON
	TaxonomySchemaPath string `json:"taxonomy_schema,omitempty"` // Schema for taxonomy validation
	SynonymsSchemaPath string `json:"synonyms_schema,omitempty"` // Schema for synonyms validation

	// Thresholds. The shipped defaults are starting points, not tuned
	// invariants; they are configurable for exactly that reason.
	DuplicateThreshold  float64 `json:"duplicate_threshold,omitempty"`  // Fuzzy entry-dedup ratio (0-1)
	FuzzyThreshold      float64 `json:"fuzzy_threshold,omitempty"`      // Keyword-match similarity floor (0-1)
	ConfidenceThreshold int     `json:"confidence_threshold,omitempty"` // Parse-confidence floor (0-100)

	// Behavior
	ExtractionBudgetSeconds int  `json:"extraction_budget_seconds,omitempty"` // Wall-clock cap per document
	Verbose                 bool `json:"verbose,omitempty"`                   // Print detailed debug information
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() Config {
	return Config{
		TaxonomyPath:            "reference/taxonomy.json",
		SynonymsPath:            "reference/synonyms.json",
		TaxonomySchemaPath:      "schemas/taxonomy.schema.json",
		SynonymsSchemaPath:      "schemas/synonyms.schema.json",
		DuplicateThreshold:      0.80,
		FuzzyThreshold:          0.80,
		ConfidenceThreshold:     70,
		ExtractionBudgetSeconds: 20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DuplicateThreshold < 0 || c.DuplicateThreshold > 1 {
		return fmt.Errorf("config error: 'duplicate_threshold' must be between 0 and 1")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 1")
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 100 {
		return fmt.Errorf("config error: 'confidence_threshold' must be between 0 and 100")
	}
	if c.ExtractionBudgetSeconds < 0 {
		return fmt.Errorf("config error: 'extraction_budget_seconds' must be non-negative")
	}

	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	if c.SynonymsPath != "" {
		if _, err := os.Stat(c.SynonymsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: synonyms file not found: %s", c.SynonymsPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.SynonymsPath == "" {
		result.SynonymsPath = defaults.SynonymsPath
	}
	if result.TaxonomySchemaPath == "" {
		result.TaxonomySchemaPath = defaults.TaxonomySchemaPath
	}
	if result.SynonymsSchemaPath == "" {
		result.SynonymsSchemaPath = defaults.SynonymsSchemaPath
	}
	if result.DuplicateThreshold == 0 {
		result.DuplicateThreshold = defaults.DuplicateThreshold
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.ConfidenceThreshold == 0 {
		result.ConfidenceThreshold = defaults.ConfidenceThreshold
	}
	if result.ExtractionBudgetSeconds == 0 {
		result.ExtractionBudgetSeconds = defaults.ExtractionBudgetSeconds
	}

	return result
}
