// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillProfile maps a skill category name to the vocabulary terms matched in
// that category. Categories with zero matches are omitted entirely.
type SkillProfile map[string][]string

// Flatten returns every matched skill across all categories.
// Category iteration order is not significant for callers of Flatten.
func (p SkillProfile) Flatten() []string {
	var skills []string
	for _, terms := range p {
		skills = append(skills, terms...)
	}
	return skills
}

// TotalSkills returns the number of matched skills across all categories.
func (p SkillProfile) TotalSkills() int {
	total := 0
	for _, terms := range p {
		total += len(terms)
	}
	return total
}

// ExperienceProfile holds the approximate work-history estimate derived from a
// resume. Values are heuristic and never corrected after extraction.
type ExperienceProfile struct {
	Years     int      `json:"years"`
	Companies []string `json:"companies"`
}

// ResumeProfile represents everything extracted from an uploaded resume.
type ResumeProfile struct {
	RawExcerpt  string            `json:"raw_excerpt"`
	Skills      SkillProfile      `json:"skills"`
	TotalSkills int               `json:"total_skills"`
	Experience  ExperienceProfile `json:"experience"`
	Projects    []string          `json:"projects"`
}

// RoleLevel is the seniority level inferred from a job description.
type RoleLevel string

// Role levels, from least to most senior.
const (
	RoleJunior RoleLevel = "junior"
	RoleMid    RoleLevel = "mid"
	RoleSenior RoleLevel = "senior"
)

// JDProfile represents everything extracted from a job description.
type JDProfile struct {
	RequiredSkills      SkillProfile `json:"required_skills"`
	TotalRequiredSkills int          `json:"total_required_skills"`
	ExperienceRequired  int          `json:"experience_required"`
	RoleLevel           RoleLevel    `json:"role_level"`
	Responsibilities    []string     `json:"responsibilities"`
	RequiredSection     string       `json:"required_section"`
	PreferredSection    string       `json:"preferred_section"`
}

// SkillMatch reports how well a resume covers the skills a JD asks for.
type SkillMatch struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	TotalJDSkills   int      `json:"total_jd_skills"`
	TotalMatched    int      `json:"total_matched"`
}
