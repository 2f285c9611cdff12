package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestLoadSkillTaxonomy(t *testing.T) {
	tax, err := LoadSkillTaxonomy()
	require.NoError(t, err)
	require.NotEmpty(t, tax.Categories)

	names := make([]string, 0, len(tax.Categories))
	for _, cat := range tax.Categories {
		names = append(names, cat.Name)
		assert.NotEmpty(t, cat.Terms, "category %s should have terms", cat.Name)
	}

	// Category order is part of the contract (extraction reports in
	// vocabulary order).
	assert.Equal(t, []string{"languages", "frameworks", "databases", "cloud", "ml_ai", "tools"}, names)
}

func TestLoadSkillTaxonomy_TermsAreLowercase(t *testing.T) {
	tax, err := LoadSkillTaxonomy()
	require.NoError(t, err)

	for _, cat := range tax.Categories {
		for _, term := range cat.Terms {
			assert.Equal(t, strings.ToLower(term), term,
				"vocabulary terms are matched against lowercased text and must be lowercase")
		}
	}
}

func TestLoadQuestionBank(t *testing.T) {
	bank, err := LoadQuestionBank()
	require.NoError(t, err)

	difficulties := []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}
	for _, d := range difficulties {
		for _, qt := range types.QuestionTypeRotation {
			templates, err := bank.Templates(d, qt)
			require.NoError(t, err, "bank must cover (%s, %s)", d, qt)
			assert.Len(t, templates, 2, "two templates per (difficulty, type)")
		}
	}
}

func TestQuestionBank_TemplatesUnknownDifficulty(t *testing.T) {
	bank, err := LoadQuestionBank()
	require.NoError(t, err)

	_, err = bank.Templates(types.Difficulty("impossible"), types.QuestionTechnical)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "impossible")
}

func TestQuestionBank_SkillPlaceholders(t *testing.T) {
	bank, err := LoadQuestionBank()
	require.NoError(t, err)

	// Technical and conceptual templates are skill-aware; behavioral ones
	// never reference a skill.
	for _, d := range []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard} {
		technical, err := bank.Templates(d, types.QuestionTechnical)
		require.NoError(t, err)
		for _, tpl := range technical {
			assert.Contains(t, tpl, "{skill}")
		}

		behavioral, err := bank.Templates(d, types.QuestionBehavioral)
		require.NoError(t, err)
		for _, tpl := range behavioral {
			assert.NotContains(t, tpl, "{skill}")
		}
	}
}

func TestValidate_RejectsMalformedDocument(t *testing.T) {
	err := validate(skillsSchemaJSON, `{"categories": []}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
