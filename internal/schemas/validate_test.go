package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShippedReferenceData(t *testing.T) {
	taxonomySchema := ResolveSchemaPath("schemas/taxonomy.schema.json")
	require.NotEmpty(t, taxonomySchema)

	assert.NoError(t, ValidateJSON(taxonomySchema, ResolveSchemaPath("reference/taxonomy.json")))

	synonymsSchema := ResolveSchemaPath("schemas/synonyms.schema.json")
	require.NotEmpty(t, synonymsSchema)

	assert.NoError(t, ValidateJSON(synonymsSchema, ResolveSchemaPath("reference/synonyms.json")))
}

func TestValidateJSONStringRejectsBadTaxonomy(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {
			"roles": {"type": "object", "minProperties": 1}
		},
		"required": ["roles"]
	}`

	err := ValidateJSONString(schema, `{"roles": {}}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONStringAcceptsValidData(t *testing.T) {
	schema := `{"type": "object", "required": ["synonyms"]}`

	assert.NoError(t, ValidateJSONString(schema, `{"synonyms": {"ml": ["machine learning"]}}`))
}

func TestValidateJSONStringBadSchemaIsLoadError(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSONMissingFiles(t *testing.T) {
	err := ValidateJSON("does/not/exist.schema.json", "also/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPathMissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("no/such/file.json"))
}
