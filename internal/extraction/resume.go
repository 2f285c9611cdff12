package extraction

import (
	"github.com/jonathan/interview-coach/internal/taxonomy"
	"github.com/jonathan/interview-coach/internal/types"
)

// rawExcerptLen is how much of the source text is kept on the profile for
// reference, in runes.
const rawExcerptLen = 1000

// ResumeParser turns resume text into a ResumeProfile.
type ResumeParser struct {
	skills *SkillExtractor
}

// NewResumeParser builds a parser over the given vocabulary.
func NewResumeParser(tax *taxonomy.SkillTaxonomy) (*ResumeParser, error) {
	skills, err := NewSkillExtractor(tax)
	if err != nil {
		return nil, err
	}
	return &ResumeParser{skills: skills}, nil
}

// Parse extracts skills, experience, and projects from resume text. Empty or
// unrecognizable text yields an empty profile, never an error.
func (p *ResumeParser) Parse(text string) *types.ResumeProfile {
	skills := p.skills.Extract(text)

	profile := &types.ResumeProfile{
		RawExcerpt:  excerpt(text, rawExcerptLen),
		Skills:      skills,
		TotalSkills: skills.TotalSkills(),
		Experience: types.ExperienceProfile{
			Years:     MaxYears(text, ResumeExperienceRules, 0),
			Companies: ExtractCompanies(text),
		},
		Projects: SplitBullets(projectSectionRule.Region(text)),
	}
	return profile
}

func excerpt(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
