package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSkills_RejectsDescriptiveSentences(t *testing.T) {
	skills := FilterSkills([]string{"Python, Java, Experience in developing pricing models, Docker"})
	assert.Equal(t, []string{"Python", "Java", "Docker"}, skills)
}

func TestFilterSkills_LengthBounds(t *testing.T) {
	tooLong := strings.Repeat("x", 60)
	skills := FilterSkills([]string{fmt.Sprintf("Go, a, %s, Rust", tooLong)})
	assert.Equal(t, []string{"Go", "Rust"}, skills)
}

func TestFilterSkills_StopWordDensityRejectsFragments(t *testing.T) {
	skills := FilterSkills([]string{"worked on the design of the system; Kubernetes"})
	assert.Equal(t, []string{"Kubernetes"}, skills)
}

func TestFilterSkills_CompoundTechTokensExempt(t *testing.T) {
	// Compound technical tokens are never rejected on stop-word grounds.
	skills := FilterSkills([]string{"C++; Node.js; CI/CD; C#"})
	assert.Equal(t, []string{"C++", "Node.js", "CI/CD", "C#"}, skills)
}

func TestFilterSkills_CaseInsensitiveDedup(t *testing.T) {
	skills := FilterSkills([]string{"Docker, docker, DOCKER"})
	assert.Equal(t, []string{"Docker"}, skills)
}

func TestFilterSkills_CanonicalCasing(t *testing.T) {
	skills := FilterSkills([]string{"javascript, golang, k8s"})
	assert.Equal(t, []string{"JavaScript", "Go", "Kubernetes"}, skills)
}

func TestFilterSkills_CapAtFifty(t *testing.T) {
	var tokens []string
	for i := 0; i < 80; i++ {
		tokens = append(tokens, fmt.Sprintf("Skill%02d", i))
	}
	skills := FilterSkills([]string{strings.Join(tokens, ", ")})
	assert.Len(t, skills, MaxSkills)
}

func TestFilterSkills_SplitsOnAllDelimiters(t *testing.T) {
	skills := FilterSkills([]string{"Go; Python | Rust\nTerraform • Ansible"})
	assert.ElementsMatch(t, []string{"Go", "Python", "Rust", "Terraform", "Ansible"}, skills)
}

func TestFilterSkills_BulletDecorationStripped(t *testing.T) {
	skills := FilterSkills([]string{"• Go\n• Distributed Systems"})
	assert.Equal(t, []string{"Go", "Distributed Systems"}, skills)
}
