package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"taxonomy": "ref/tax.json",
		"duplicate_threshold": 0.85,
		"fuzzy_threshold": 0.75,
		"confidence_threshold": 60,
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ref/tax.json", cfg.TaxonomyPath)
	assert.Equal(t, 0.85, cfg.DuplicateThreshold)
	assert.Equal(t, 0.75, cfg.FuzzyThreshold)
	assert.Equal(t, 60, cfg.ConfidenceThreshold)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateRejectsOutOfRangeThresholds(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"duplicate above one", Config{DuplicateThreshold: 1.5}},
		{"fuzzy negative", Config{FuzzyThreshold: -0.1}},
		{"confidence above hundred", Config{ConfidenceThreshold: 150}},
		{"negative budget", Config{ExtractionBudgetSeconds: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}

func TestValidateChecksReferencePathsExist(t *testing.T) {
	cfg := Config{TaxonomyPath: filepath.Join(t.TempDir(), "absent.json")}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "taxonomy file not found")
}

func TestMergeWithDefaultsFillsZeroValues(t *testing.T) {
	cfg := Config{FuzzyThreshold: 0.9}

	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, 0.9, merged.FuzzyThreshold)
	assert.Equal(t, 0.80, merged.DuplicateThreshold)
	assert.Equal(t, 70, merged.ConfidenceThreshold)
	assert.Equal(t, "reference/taxonomy.json", merged.TaxonomyPath)
	assert.Equal(t, 20, merged.ExtractionBudgetSeconds)
}

func TestDefaultConfigIsValidExceptPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TaxonomyPath = ""
	cfg.SynonymsPath = ""

	assert.NoError(t, cfg.Validate())
}
