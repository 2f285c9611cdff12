package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/taxonomy"
)

func newTestExtractor(t *testing.T) *SkillExtractor {
	t.Helper()
	tax, err := taxonomy.LoadSkillTaxonomy()
	require.NoError(t, err)
	ext, err := NewSkillExtractor(tax)
	require.NoError(t, err)
	return ext
}

func TestExtract_CaseInsensitive(t *testing.T) {
	ext := newTestExtractor(t)

	upper := ext.Extract("Experienced with PYTHON and Docker.")
	lower := ext.Extract("experienced with python and docker.")

	require.Equal(t, upper, lower, "extraction is case-insensitive")
	assert.Equal(t, []string{"Python"}, upper["languages"])
	assert.Equal(t, []string{"Docker"}, upper["cloud"])
}

func TestExtract_WholeWordOnly(t *testing.T) {
	ext := newTestExtractor(t)

	profile := ext.Extract("Wrote frontend code in javascript for three years.")
	assert.Equal(t, []string{"Javascript"}, profile["languages"],
		"java must not match inside javascript")

	profile = ext.Extract("Backend built in java and deployed on aws.")
	assert.Equal(t, []string{"Java"}, profile["languages"])
	assert.Equal(t, []string{"Aws"}, profile["cloud"])
}

func TestExtract_VocabularyOrderPreserved(t *testing.T) {
	ext := newTestExtractor(t)

	// Mentioned in reverse vocabulary order; output still follows the
	// vocabulary.
	profile := ext.Extract("rust, go, javascript, java, python")
	assert.Equal(t, []string{"Python", "Java", "Javascript", "Go", "Rust"}, profile["languages"])
}

func TestExtract_EmptyCategoriesOmitted(t *testing.T) {
	ext := newTestExtractor(t)

	profile := ext.Extract("I mostly write python scripts.")
	require.Contains(t, profile, "languages")
	assert.NotContains(t, profile, "databases")
	assert.NotContains(t, profile, "frameworks")
}

func TestExtract_EmptyInput(t *testing.T) {
	ext := newTestExtractor(t)
	assert.Empty(t, ext.Extract(""))
}

func TestExtract_Idempotent(t *testing.T) {
	ext := newTestExtractor(t)

	text := "python, django, postgresql, aws, tensorflow, git"
	first := ext.Extract(text)
	second := ext.Extract(text)
	assert.Equal(t, first, second)
}

func TestExtract_MultiWordTerms(t *testing.T) {
	ext := newTestExtractor(t)

	profile := ext.Extract("Built machine learning pipelines backed by sql server.")
	assert.Contains(t, profile["ml_ai"], "Machine Learning")
	assert.Contains(t, profile["databases"], "Sql Server")
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"machine learning", "Machine Learning"},
		{"node.js", "Node.Js"},
		{"ci/cd", "Ci/Cd"},
		{"scikit-learn", "Scikit-Learn"},
		{"c++", "C++"},
		{"rest api", "Rest Api"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "titleCase(%q)", tt.in)
	}
}
