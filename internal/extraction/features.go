package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// ExperienceRule is a declarative years-of-experience pattern. The pattern
// must have exactly one capture group holding an integer.
type ExperienceRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// ResumeExperienceRules match self-reported experience in resumes.
var ResumeExperienceRules = []ExperienceRule{
	{"years of experience", regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`)},
	{"experience: N years", regexp.MustCompile(`experience\s*:?\s*(\d+)\+?\s*years?`)},
	{"N yrs experience", regexp.MustCompile(`(\d+)\+?\s*yrs?\s*experience`)},
}

// JDExperienceRules match required experience in job descriptions.
var JDExperienceRules = []ExperienceRule{
	{"years of experience", regexp.MustCompile(`(\d+)\+?\s*years?\s*of\s*experience`)},
	{"minimum N years", regexp.MustCompile(`minimum\s+(\d+)\+?\s*years?`)},
	{"N years experience required", regexp.MustCompile(`(\d+)\+?\s*years?\s*experience\s*required`)},
	{"at least N years", regexp.MustCompile(`at least\s+(\d+)\+?\s*years?`)},
}

// MaxYears runs every rule against the lowercased text and returns the
// largest integer captured across all matches, or fallback if nothing
// matched.
func MaxYears(text string, rules []ExperienceRule, fallback int) int {
	lower := strings.ToLower(text)
	maxYears := 0
	found := false

	for _, rule := range rules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			found = true
			if years > maxYears {
				maxYears = years
			}
		}
	}

	if !found {
		return fallback
	}
	return maxYears
}

// Seniority keyword sets, checked in priority order: senior wins over junior
// when both appear.
var (
	seniorKeywords = []string{"senior", "lead", "principal", "staff", "architect"}
	juniorKeywords = []string{"junior", "entry", "graduate", "fresher"}
)

// DetectRoleLevel scans for seniority keywords. Anything without an explicit
// signal is treated as a mid-level role.
func DetectRoleLevel(text string) types.RoleLevel {
	lower := strings.ToLower(text)

	for _, kw := range seniorKeywords {
		if strings.Contains(lower, kw) {
			return types.RoleSenior
		}
	}
	for _, kw := range juniorKeywords {
		if strings.Contains(lower, kw) {
			return types.RoleJunior
		}
	}
	return types.RoleMid
}

// SectionRule locates a labeled region of text: from a heading keyword up to
// the next heading keyword or end of text. Capture group 2 is the region
// body.
type SectionRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Section rules. Matching is case-insensitive on the original text so
// capitalization inside the region survives.
var (
	projectSectionRule = SectionRule{
		Name:    "projects",
		Pattern: regexp.MustCompile(`(?is)(projects?|portfolio)(.*?)(education|skills|experience|certification|$)`),
	}
	experienceSectionRule = SectionRule{
		Name:    "experience",
		Pattern: regexp.MustCompile(`(?is)(experience|work history|employment)(.*?)(education|skills|projects|$)`),
	}
	responsibilitySectionRule = SectionRule{
		Name:    "responsibilities",
		Pattern: regexp.MustCompile(`(?is)(responsibilities?|duties|what you.?ll do)(.*?)(requirements?|qualifications?|skills?|$)`),
	}
	requiredSectionRule = SectionRule{
		Name:    "requirements",
		Pattern: regexp.MustCompile(`(?is)(requirements?|qualifications?|must have)(.*?)(preferred|nice to have|bonus|$)`),
	}
	preferredSectionRule = SectionRule{
		Name:    "preferred",
		Pattern: regexp.MustCompile(`(?is)(preferred|nice to have|bonus)(.*?)$`),
	}
)

// Region returns the body of the first region the rule matches, or "" when
// the heading never appears.
func (r SectionRule) Region(text string) string {
	m := r.Pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[2]
}

// Bullet line constraints, measured in runes.
const (
	bulletMinLen   = 20
	bulletMaxLen   = 200
	bulletTruncate = 150
	bulletCap      = 5
)

var bulletSplitPattern = regexp.MustCompile(`[•\-\n]`)

// SplitBullets splits a section on bullet/newline delimiters and keeps lines
// strictly longer than 20 and shorter than 200 characters, truncated to 150,
// capped at 5, in source order.
func SplitBullets(section string) []string {
	var lines []string
	for _, raw := range bulletSplitPattern.Split(section, -1) {
		line := strings.TrimSpace(raw)
		runes := []rune(line)
		if len(runes) > bulletMinLen && len(runes) < bulletMaxLen {
			if len(runes) > bulletTruncate {
				line = string(runes[:bulletTruncate])
			}
			lines = append(lines, line)
		}
		if len(lines) >= bulletCap {
			break
		}
	}
	return lines
}

// companyPattern matches capitalized phrases of two to four words that look
// like company names.
var companyPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\b`)

// ExtractCompanies returns up to five unique company-name candidates found in
// the experience section, in source order.
func ExtractCompanies(text string) []string {
	section := experienceSectionRule.Region(text)
	if section == "" {
		return nil
	}

	var companies []string
	seen := make(map[string]bool)
	for _, m := range companyPattern.FindAllStringSubmatch(section, -1) {
		if len(companies) >= bulletCap {
			break
		}
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		companies = append(companies, m[1])
	}
	return companies
}
