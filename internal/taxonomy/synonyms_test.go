package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSynonyms() *Synonyms {
	return NewSynonyms(map[string][]string{
		"machine learning": {"ml", "machine-learning"},
		"kubernetes":       {"k8s"},
	})
}

func TestExpandCanonicalIncludesVariants(t *testing.T) {
	syn := testSynonyms()

	expanded := syn.Expand("machine learning")
	assert.Contains(t, expanded, "machine learning")
	assert.Contains(t, expanded, "ml")
	assert.Contains(t, expanded, "machine-learning")
}

func TestExpandVariantIncludesCanonical(t *testing.T) {
	syn := testSynonyms()

	expanded := syn.Expand("ml")
	assert.Contains(t, expanded, "machine learning")
	assert.Contains(t, expanded, "ml")
}

func TestExpansionIsSymmetric(t *testing.T) {
	syn := testSynonyms()

	fromCanonical := syn.Expand("machine learning")
	fromVariant := syn.Expand("ml")
	assert.Equal(t, fromCanonical, fromVariant)
}

func TestExpandUnknownTermReturnsItself(t *testing.T) {
	syn := testSynonyms()

	assert.Equal(t, []string{"cobol"}, syn.Expand("cobol"))
}

func TestExpandLowercasesAndTrims(t *testing.T) {
	syn := testSynonyms()

	expanded := syn.Expand("  K8s ")
	assert.Contains(t, expanded, "kubernetes")
	assert.Contains(t, expanded, "k8s")
}

func TestLoadSynonymsFromReferenceFile(t *testing.T) {
	syn, err := LoadSynonyms("../../reference/synonyms.json", "../../schemas/synonyms.schema.json")
	require.NoError(t, err)

	expanded := syn.Expand("ml")
	assert.Contains(t, expanded, "machine learning")
}
