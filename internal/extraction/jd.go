package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/taxonomy"
	"github.com/jonathan/interview-coach/internal/types"
)

// sectionExcerptLen caps the required/preferred text excerpts, in runes.
const sectionExcerptLen = 500

// jdExperienceFallback is assumed when a JD never states a number of years.
const jdExperienceFallback = 2

// JDParser turns job-description text into a JDProfile.
type JDParser struct {
	skills *SkillExtractor
}

// NewJDParser builds a parser over the given vocabulary.
func NewJDParser(tax *taxonomy.SkillTaxonomy) (*JDParser, error) {
	skills, err := NewSkillExtractor(tax)
	if err != nil {
		return nil, err
	}
	return &JDParser{skills: skills}, nil
}

// Parse extracts required skills, experience, role level, responsibilities,
// and the required/preferred excerpts from JD text.
func (p *JDParser) Parse(text string) *types.JDProfile {
	skills := p.skills.Extract(text)

	requiredSection := requiredSectionRule.Region(text)
	if requiredSection == "" {
		// No requirements heading: the whole posting is the requirements.
		requiredSection = text
	}

	return &types.JDProfile{
		RequiredSkills:      skills,
		TotalRequiredSkills: skills.TotalSkills(),
		ExperienceRequired:  MaxYears(text, JDExperienceRules, jdExperienceFallback),
		RoleLevel:           DetectRoleLevel(text),
		Responsibilities:    SplitBullets(responsibilitySectionRule.Region(text)),
		RequiredSection:     excerpt(requiredSection, sectionExcerptLen),
		PreferredSection:    excerpt(preferredSectionRule.Region(text), sectionExcerptLen),
	}
}

// ComputeSkillMatch reports what fraction of the JD's skills the resume
// covers. Comparison is case-insensitive; output lists are sorted for
// stable responses.
func ComputeSkillMatch(resumeSkills, jdSkills types.SkillProfile) types.SkillMatch {
	resumeSet := make(map[string]bool)
	for _, skill := range resumeSkills.Flatten() {
		resumeSet[strings.ToLower(skill)] = true
	}

	jdSet := make(map[string]bool)
	for _, skill := range jdSkills.Flatten() {
		jdSet[strings.ToLower(skill)] = true
	}

	var matched, missing []string
	for skill := range jdSet {
		if resumeSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	percentage := 0.0
	if len(jdSet) > 0 {
		percentage = float64(len(matched)) / float64(len(jdSet)) * 100
	}

	return types.SkillMatch{
		MatchPercentage: round2(percentage),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		TotalJDSkills:   len(jdSet),
		TotalMatched:    len(matched),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
