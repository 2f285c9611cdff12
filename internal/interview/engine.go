// Package interview implements the adaptive-difficulty interview engine: it
// rotates question types, generates skill-aware questions from the template
// bank, escalates or de-escalates difficulty from rolling answer scores, and
// decides early termination.
package interview

import (
	"math/rand"

	"github.com/jonathan/interview-coach/internal/taxonomy"
	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// MaxQuestions is the hard cap on questions per session.
	MaxQuestions = 10
	// TimeLimitSeconds is the fixed per-question answer window.
	TimeLimitSeconds = 60

	// Difficulty steps up when the mean score exceeds raiseThreshold and
	// down when it drops below lowerThreshold. Means inside [lower, raise]
	// leave the difficulty unchanged.
	raiseThreshold = 75.0
	lowerThreshold = 40.0

	// Early termination: once at least terminationWindow scores exist, the
	// interview stops when their mean falls below terminationThreshold.
	terminationWindow    = 3
	terminationThreshold = 30.0

	// fallbackSkill is used when neither profile yielded any skills.
	fallbackSkill = "programming"

	skillPlaceholder = "{skill}"
)

// Engine tracks the interview state machine for one session. It is not
// internally synchronized: each engine belongs to exactly one session and the
// caller serializes access.
type Engine struct {
	bank       taxonomy.QuestionBank
	rng        *rand.Rand
	difficulty types.Difficulty
	count      int
}

// NewEngine creates an engine starting at easy difficulty. The random source
// drives template and skill selection and is injected so tests can pin a
// seed.
func NewEngine(bank taxonomy.QuestionBank, rng *rand.Rand) *Engine {
	return &Engine{
		bank:       bank,
		rng:        rng,
		difficulty: types.DifficultyEasy,
	}
}

// Difficulty returns the current difficulty level.
func (e *Engine) Difficulty() types.Difficulty {
	return e.difficulty
}

// QuestionCount returns how many questions have been issued.
func (e *Engine) QuestionCount() int {
	return e.count
}

// MaxReached reports whether the question cap has been hit.
func (e *Engine) MaxReached() bool {
	return e.count >= MaxQuestions
}

// AdjustDifficulty moves the difficulty one step based on the mean of the
// given scores. The caller decides the window; the current design passes the
// full score history on every call. Transitions never skip a level:
// easy<->medium<->hard only.
func (e *Engine) AdjustDifficulty(recentScores []float64) types.Difficulty {
	if len(recentScores) == 0 {
		return e.difficulty
	}

	avg := mean(recentScores)
	switch {
	case avg > raiseThreshold:
		e.difficulty = e.difficulty.StepUp()
	case avg < lowerThreshold:
		e.difficulty = e.difficulty.StepDown()
	}
	return e.difficulty
}

// ShouldTerminateEarly reports sustained low performance: false until three
// scores exist, then true when the mean of the last three is strictly below
// 30.
func (e *Engine) ShouldTerminateEarly(recentScores []float64) bool {
	if len(recentScores) < terminationWindow {
		return false
	}
	lastThree := recentScores[len(recentScores)-terminationWindow:]
	return mean(lastThree) < terminationThreshold
}

// NextQuestionType returns the type the next question will have. The rotation
// is fixed and indexed by the counter before it is incremented.
func (e *Engine) NextQuestionType() types.QuestionType {
	return types.QuestionTypeRotation[e.count%len(types.QuestionTypeRotation)]
}

// ConductInterview issues the next question: derives the question type from
// the rotation, generates the text at the current difficulty, and increments
// the counter.
func (e *Engine) ConductInterview(resume *types.ResumeProfile, jd *types.JDProfile) (*types.Question, error) {
	questionType := e.NextQuestionType()

	text, expectedTopics, err := e.generateQuestion(resume, jd, e.difficulty, questionType)
	if err != nil {
		return nil, err
	}

	e.count++

	return &types.Question{
		Number:         e.count,
		Text:           text,
		ExpectedTopics: expectedTopics,
		Difficulty:     e.difficulty,
		Type:           questionType,
		MaxQuestions:   MaxQuestions,
		TimeLimit:      TimeLimitSeconds,
	}, nil
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() {
	e.difficulty = types.DifficultyEasy
	e.count = 0
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
