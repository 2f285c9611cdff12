// Package taxonomy supplies the static skill vocabulary and question-template
// tables. Both are read-only configuration: they ship as embedded JSON,
// validated against embedded JSON Schemas at load time, and can be swapped
// without code changes.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-coach/internal/types"
)

//go:embed data/skills.json
var skillsJSON string

//go:embed data/skills.schema.json
var skillsSchemaJSON string

//go:embed data/question_bank.json
var questionBankJSON string

//go:embed data/question_bank.schema.json
var questionBankSchemaJSON string

// Category is one group of vocabulary terms. Term order is significant:
// extracted skills are reported in vocabulary order.
type Category struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// SkillTaxonomy is the ordered list of skill categories.
type SkillTaxonomy struct {
	Categories []Category `json:"categories"`
}

// QuestionBank maps difficulty -> question type -> templates. Templates may
// contain a single {skill} placeholder.
type QuestionBank map[types.Difficulty]map[types.QuestionType][]string

// Templates returns the template list for the given difficulty and type.
func (b QuestionBank) Templates(d types.Difficulty, t types.QuestionType) ([]string, error) {
	byType, ok := b[d]
	if !ok {
		return nil, fmt.Errorf("question bank has no difficulty %q", d)
	}
	templates, ok := byType[t]
	if !ok {
		return nil, fmt.Errorf("question bank has no %q questions at difficulty %q", t, d)
	}
	return templates, nil
}

// LoadSkillTaxonomy parses and validates the embedded skill vocabulary.
func LoadSkillTaxonomy() (*SkillTaxonomy, error) {
	if err := validate(skillsSchemaJSON, skillsJSON); err != nil {
		return nil, fmt.Errorf("skill taxonomy: %w", err)
	}

	var tax SkillTaxonomy
	if err := json.Unmarshal([]byte(skillsJSON), &tax); err != nil {
		return nil, fmt.Errorf("skill taxonomy: %w", err)
	}
	return &tax, nil
}

// LoadQuestionBank parses and validates the embedded question templates.
func LoadQuestionBank() (QuestionBank, error) {
	if err := validate(questionBankSchemaJSON, questionBankJSON); err != nil {
		return nil, fmt.Errorf("question bank: %w", err)
	}

	var bank QuestionBank
	if err := json.Unmarshal([]byte(questionBankJSON), &bank); err != nil {
		return nil, fmt.Errorf("question bank: %w", err)
	}
	return bank, nil
}

// validate checks a JSON document against a JSON Schema, both given as
// strings, and folds schema violations into a single error.
func validate(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
