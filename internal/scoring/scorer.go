// Package scoring evaluates interview answers with rule-based, explainable
// heuristics and aggregates per-question scores into a final report. No
// natural-language understanding is involved: every metric is a text
// statistic clamped to [0,100].
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Weights is the fixed contribution of each sub-metric to the overall score.
type Weights struct {
	Accuracy       float64
	Clarity        float64
	Depth          float64
	Relevance      float64
	TimeEfficiency float64
}

// DefaultWeights sum to 1.0.
var DefaultWeights = Weights{
	Accuracy:       0.30,
	Clarity:        0.20,
	Depth:          0.25,
	Relevance:      0.15,
	TimeEfficiency: 0.10,
}

// metricNames lists the sub-metrics in reporting order.
var metricNames = []string{"accuracy", "clarity", "depth", "relevance", "time_efficiency"}

// structureMarkers signal an organized answer; any single occurrence grants
// the clarity structure bonus.
var structureMarkers = []string{
	"first", "second", "then", "because", "therefore",
	"however", "for example", "in conclusion",
}

// technicalTermPattern counts all-caps acronyms and call-like tokens such as
// "HTTP" or "connect()".
var technicalTermPattern = regexp.MustCompile(`\b[A-Z]{2,}\b|\b\w+\(\)`)

// wordPattern extracts words of four or more characters for the relevance
// overlap.
var wordPattern = regexp.MustCompile(`\b\w{4,}\b`)

// shortAnswerFeedback is returned by the degenerate-input guard.
const shortAnswerFeedback = "Answer is too short or empty."

// minAnswerLen is the minimum trimmed answer length that gets scored at all.
const minAnswerLen = 10

// Scorer computes AnswerScores. It is stateless and safe to share.
type Scorer struct {
	weights Weights
}

// NewScorer returns a scorer with the default weight distribution.
func NewScorer() *Scorer {
	return &Scorer{weights: DefaultWeights}
}

// ScoreAnswer scores one answer against its question, the expected topics,
// and the time taken in seconds. Answers shorter than 10 trimmed characters
// score zero on every metric with no further computation.
func (s *Scorer) ScoreAnswer(question, answer string, expectedTopics []string, timeTaken, maxTime int) types.AnswerScore {
	if len([]rune(strings.TrimSpace(answer))) < minAnswerLen {
		return types.AnswerScore{Feedback: shortAnswerFeedback}
	}

	answerLower := strings.ToLower(answer)
	wordCount := len(strings.Fields(answer))

	// Accuracy: fraction of expected topics mentioned verbatim.
	topicsCovered := 0
	for _, topic := range expectedTopics {
		if strings.Contains(answerLower, strings.ToLower(topic)) {
			topicsCovered++
		}
	}
	accuracy := clamp100(float64(topicsCovered) / float64(max(len(expectedTopics), 1)) * 100)

	// Clarity: length plus a flat bonus for structural markers.
	hasStructure := false
	for _, marker := range structureMarkers {
		if strings.Contains(answerLower, marker) {
			hasStructure = true
			break
		}
	}
	clarity := float64(wordCount) / 50 * 50
	if hasStructure {
		clarity += 50
	}
	clarity = clamp100(clarity)

	// Depth: length plus five points per technical term.
	technicalTerms := len(technicalTermPattern.FindAllString(answer, -1))
	depth := clamp100(float64(wordCount)/100*70 + float64(technicalTerms)*5)

	// Relevance: overlap of significant words between question and answer.
	questionWords := wordSet(strings.ToLower(question))
	answerWords := wordSet(answerLower)
	overlap := 0
	for w := range questionWords {
		if answerWords[w] {
			overlap++
		}
	}
	relevance := clamp100(float64(overlap) / float64(max(len(questionWords), 1)) * 100)

	timeEfficiency := timeEfficiencyScore(timeTaken, maxTime)

	overall := accuracy*s.weights.Accuracy +
		clarity*s.weights.Clarity +
		depth*s.weights.Depth +
		relevance*s.weights.Relevance +
		timeEfficiency*s.weights.TimeEfficiency

	structureLabel := "basic"
	if hasStructure {
		structureLabel = "clear"
	}
	feedback := fmt.Sprintf("Covered %d/%d expected topics with a %s explanation.",
		topicsCovered, len(expectedTopics), structureLabel)

	return types.AnswerScore{
		Accuracy:       round2(accuracy),
		Clarity:        round2(clarity),
		Depth:          round2(depth),
		Relevance:      round2(relevance),
		TimeEfficiency: round2(timeEfficiency),
		Overall:        round2(overall),
		Feedback:       feedback,
	}
}

// timeEfficiencyScore is a piecewise function of the answer time. The optimal
// window is [0.6, 0.8] of the limit; finishing faster ramps up linearly,
// running over costs up to 20 points until the limit, and past the limit the
// score restarts at 50 and loses a point per 10 seconds of overage.
func timeEfficiencyScore(timeTaken, maxTime int) float64 {
	if timeTaken <= 0 {
		return 0
	}

	t := float64(timeTaken)
	optimalMin := float64(maxTime) * 0.6
	optimalMax := float64(maxTime) * 0.8

	switch {
	case t >= optimalMin && t <= optimalMax:
		return 100
	case t < optimalMin:
		return math.Trunc(t / optimalMin * 100)
	case t <= float64(maxTime):
		penalty := (t - optimalMax) / (float64(maxTime) - optimalMax)
		return math.Trunc(100 - penalty*20)
	default:
		return math.Max(0, 50-math.Trunc((t-float64(maxTime))/10))
	}
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(text, -1) {
		set[w] = true
	}
	return set
}

func clamp100(v float64) float64 {
	return math.Min(100, v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
