// Package taxonomy loads and serves the scanner's static reference data:
// the per-role/level keyword taxonomy and the synonym table. Both are loaded
// once at startup, validated against their JSON Schemas, and read-only
// thereafter; components receive them by injection, never as ambient
// globals.
package taxonomy

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/resume-scanner/internal/schemas"
	"github.com/jonathan/resume-scanner/internal/types"
)

// RoleKeywords is the keyword expectation set for one (role, level) pair.
type RoleKeywords struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// taxonomyFile mirrors the on-disk taxonomy JSON layout.
type taxonomyFile struct {
	Roles map[string]struct {
		Levels map[string]RoleKeywords `json:"levels"`
	} `json:"roles"`
}

// Taxonomy is the loaded, immutable keyword taxonomy.
type Taxonomy struct {
	roles map[string]map[string]RoleKeywords
}

// NewTaxonomy builds a taxonomy from an in-memory role map. Role and level
// keys are lowercased.
func NewTaxonomy(roles map[string]map[string]RoleKeywords) *Taxonomy {
	normalized := make(map[string]map[string]RoleKeywords, len(roles))
	for role, levels := range roles {
		levelMap := make(map[string]RoleKeywords, len(levels))
		for level, kw := range levels {
			levelMap[strings.ToLower(level)] = kw
		}
		normalized[strings.ToLower(role)] = levelMap
	}
	return &Taxonomy{roles: normalized}
}

// LoadTaxonomy reads and validates a taxonomy JSON file. When schemaPath is
// non-empty the file is validated against that schema before parsing.
func LoadTaxonomy(path, schemaPath string) (*Taxonomy, error) {
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "taxonomy schema validation", Cause: err}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read", Cause: err}
	}

	var file taxonomyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Path: path, Message: "parse", Cause: err}
	}

	roles := make(map[string]map[string]RoleKeywords, len(file.Roles))
	for role, body := range file.Roles {
		roles[role] = body.Levels
	}
	return NewTaxonomy(roles), nil
}

// Lookup returns the keyword sets for a (role, level) pair, or a typed
// *TaxonomyError when the pair is absent.
func (t *Taxonomy) Lookup(role string, level types.SeniorityLevel) (*RoleKeywords, error) {
	levels, ok := t.roles[strings.ToLower(role)]
	if !ok {
		return nil, &TaxonomyError{Role: role, Level: string(level)}
	}
	kw, ok := levels[strings.ToLower(string(level))]
	if !ok {
		return nil, &TaxonomyError{Role: role, Level: string(level)}
	}
	return &RoleKeywords{Required: kw.Required, Preferred: kw.Preferred}, nil
}

// Roles returns the sorted role ids the taxonomy knows about.
func (t *Taxonomy) Roles() []string {
	roles := make([]string, 0, len(t.roles))
	for role := range t.roles {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
