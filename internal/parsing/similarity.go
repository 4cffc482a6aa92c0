package parsing

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SimilarityRatio returns the edit-distance similarity between two strings as
// a value in [0, 1], where 1 means identical. Comparison is case-insensitive.
func SimilarityRatio(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}

	return 1.0 - float64(distance)/float64(longer)
}
