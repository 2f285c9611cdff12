package interview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// generateQuestion picks a skill from the combined resume/JD skill pool and a
// template for (difficulty, type), then substitutes the skill into the
// template's placeholder. Expected topics are [skill, type, difficulty].
func (e *Engine) generateQuestion(
	resume *types.ResumeProfile,
	jd *types.JDProfile,
	difficulty types.Difficulty,
	questionType types.QuestionType,
) (string, []string, error) {
	skill := e.pickSkill(resume, jd)

	templates, err := e.bank.Templates(difficulty, questionType)
	if err != nil {
		return "", nil, fmt.Errorf("generate question: %w", err)
	}
	template := templates[e.rng.Intn(len(templates))]
	question := strings.ReplaceAll(template, skillPlaceholder, skill)

	expectedTopics := []string{skill, string(questionType), string(difficulty)}
	return question, expectedTopics, nil
}

// pickSkill chooses uniformly at random from the deduplicated union of
// resume and JD skills, preserving first-seen order so a fixed seed is
// deterministic. Falls back to "programming" when both profiles are empty.
func (e *Engine) pickSkill(resume *types.ResumeProfile, jd *types.JDProfile) string {
	var pool []string
	seen := make(map[string]bool)

	add := func(skills []string) {
		for _, s := range skills {
			if !seen[s] {
				seen[s] = true
				pool = append(pool, s)
			}
		}
	}
	if resume != nil {
		add(orderedSkills(resume.Skills))
	}
	if jd != nil {
		add(orderedSkills(jd.RequiredSkills))
	}

	if len(pool) == 0 {
		return fallbackSkill
	}
	return pool[e.rng.Intn(len(pool))]
}

// orderedSkills flattens a profile in deterministic category order. Map
// iteration order would leak into question selection otherwise.
func orderedSkills(profile types.SkillProfile) []string {
	categories := make([]string, 0, len(profile))
	for cat := range profile {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var skills []string
	for _, cat := range categories {
		skills = append(skills, profile[cat]...)
	}
	return skills
}
