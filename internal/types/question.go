package types

// Difficulty is one of the three interview difficulty levels.
type Difficulty string

// Difficulty levels. Transitions move one step at a time between adjacent
// levels; easy and hard are terminal in their respective directions.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// StepUp returns the next harder difficulty. Hard stays hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return d
	}
}

// StepDown returns the next easier difficulty. Easy stays easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return d
	}
}

// QuestionType is the style of question asked.
type QuestionType string

// Question types, in rotation order.
const (
	QuestionTechnical     QuestionType = "technical"
	QuestionConceptual    QuestionType = "conceptual"
	QuestionBehavioral    QuestionType = "behavioral"
	QuestionScenarioBased QuestionType = "scenario-based"
)

// QuestionTypeRotation is the fixed cycle the engine walks through, indexed by
// question counter modulo its length.
var QuestionTypeRotation = []QuestionType{
	QuestionTechnical,
	QuestionConceptual,
	QuestionBehavioral,
	QuestionScenarioBased,
}

// Question is a single generated interview question.
type Question struct {
	Number         int          `json:"question_number"`
	Text           string       `json:"question"`
	ExpectedTopics []string     `json:"expected_topics"`
	Difficulty     Difficulty   `json:"difficulty"`
	Type           QuestionType `json:"question_type"`
	MaxQuestions   int          `json:"max_questions"`
	TimeLimit      int          `json:"time_limit"` // seconds
}
