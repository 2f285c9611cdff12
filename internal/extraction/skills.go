// Package extraction derives structured profiles from free-form resume and
// job-description text using a fixed vocabulary and declarative regex rules.
// Everything here is pure: no I/O, no shared state, no errors on degenerate
// input (empty text yields empty results).
package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/interview-coach/internal/taxonomy"
	"github.com/jonathan/interview-coach/internal/types"
)

// SkillExtractor matches a fixed, categorized vocabulary against free text.
// Patterns are compiled once at construction.
type SkillExtractor struct {
	categories []compiledCategory
}

type compiledCategory struct {
	name  string
	terms []compiledTerm
}

type compiledTerm struct {
	display string
	pattern *regexp.Regexp
}

// NewSkillExtractor compiles whole-word match patterns for every vocabulary
// term. Matching is case-insensitive and never partial: "java" does not match
// inside "javascript".
func NewSkillExtractor(tax *taxonomy.SkillTaxonomy) (*SkillExtractor, error) {
	ext := &SkillExtractor{}
	for _, cat := range tax.Categories {
		compiled := compiledCategory{name: cat.Name}
		for _, term := range cat.Terms {
			pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("compile vocabulary term %q: %w", term, err)
			}
			compiled.terms = append(compiled.terms, compiledTerm{
				display: titleCase(term),
				pattern: pattern,
			})
		}
		ext.categories = append(ext.categories, compiled)
	}
	return ext, nil
}

// Extract returns the matched skills grouped by category, title-cased, in
// vocabulary order. Categories with no matches are omitted.
func (e *SkillExtractor) Extract(text string) types.SkillProfile {
	lower := strings.ToLower(text)
	profile := types.SkillProfile{}

	for _, cat := range e.categories {
		var found []string
		for _, term := range cat.terms {
			if term.pattern.MatchString(lower) {
				found = append(found, term.display)
			}
		}
		if len(found) > 0 {
			profile[cat.name] = found
		}
	}
	return profile
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "machine learning" becomes "Machine Learning" and
// "ci/cd" becomes "Ci/Cd". This deliberately tracks the vocabulary's display
// convention rather than Unicode title segmentation, which would keep
// "node.js" as a single word.
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}
