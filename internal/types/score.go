package types

// AnswerScore holds the five sub-metric scores for one answer, the weighted
// overall score, and a short feedback sentence. All values are in [0,100] and
// never mutated after computation.
type AnswerScore struct {
	Accuracy       float64 `json:"accuracy"`
	Clarity        float64 `json:"clarity"`
	Depth          float64 `json:"depth"`
	Relevance      float64 `json:"relevance"`
	TimeEfficiency float64 `json:"time_efficiency"`
	Overall        float64 `json:"overall"`
	Feedback       string  `json:"feedback"`
}

// Metric returns the named sub-metric (or overall). Unknown names return 0.
func (s AnswerScore) Metric(name string) float64 {
	switch name {
	case "accuracy":
		return s.Accuracy
	case "clarity":
		return s.Clarity
	case "depth":
		return s.Depth
	case "relevance":
		return s.Relevance
	case "time_efficiency":
		return s.TimeEfficiency
	case "overall":
		return s.Overall
	default:
		return 0
	}
}

// FinalReport aggregates every AnswerScore of a session into a hiring
// assessment.
type FinalReport struct {
	FinalScore        float64            `json:"final_score"`
	SkillBreakdown    map[string]float64 `json:"skill_breakdown"`
	Strengths         []string           `json:"strengths"`
	Weaknesses        []string           `json:"weaknesses"`
	Recommendation    string             `json:"recommendation"`
	HiringReadiness   string             `json:"hiring_readiness"`
	TotalQuestions    int                `json:"total_questions"`
	EarlyTermination  bool               `json:"early_termination"`
	TerminationReason string             `json:"termination_reason,omitempty"`
}
