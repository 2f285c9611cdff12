package scoring

import (
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Final recommendation thresholds on the session-wide overall mean.
const (
	excellentThreshold = 80.0
	goodThreshold      = 65.0
	fairThreshold      = 50.0
)

// noneIdentified fills strengths/weaknesses when no metric qualifies.
const noneIdentified = "None identified"

// CalculateFinalScore averages every sub-metric across the full session score
// history and derives the qualitative recommendation. An empty history yields
// the zero report.
func (s *Scorer) CalculateFinalScore(allScores []types.AnswerScore) types.FinalReport {
	if len(allScores) == 0 {
		return types.FinalReport{
			SkillBreakdown:  map[string]float64{},
			Strengths:       []string{},
			Weaknesses:      []string{},
			Recommendation:  "Unable to assess - no answers provided",
			HiringReadiness: "NOT RECOMMENDED",
		}
	}

	breakdown := make(map[string]float64, len(metricNames)+1)
	for _, metric := range append(append([]string{}, metricNames...), "overall") {
		sum := 0.0
		for _, score := range allScores {
			sum += score.Metric(metric)
		}
		breakdown[metric] = sum / float64(len(allScores))
	}

	var strengths, weaknesses []string
	for _, metric := range metricNames {
		avg := breakdown[metric]
		switch {
		case avg >= 75:
			strengths = append(strengths, humanizeMetric(metric))
		case avg < 50:
			weaknesses = append(weaknesses, humanizeMetric(metric))
		}
	}
	if len(strengths) == 0 {
		strengths = []string{noneIdentified}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{noneIdentified}
	}

	finalScore := breakdown["overall"]
	recommendation, readiness := recommend(finalScore)

	for metric, avg := range breakdown {
		breakdown[metric] = round2(avg)
	}

	return types.FinalReport{
		FinalScore:      round2(finalScore),
		SkillBreakdown:  breakdown,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendation:  recommendation,
		HiringReadiness: readiness,
		TotalQuestions:  len(allScores),
	}
}

func recommend(finalScore float64) (recommendation, readiness string) {
	switch {
	case finalScore >= excellentThreshold:
		return "Excellent - Ready for interviews", "HIGHLY RECOMMENDED"
	case finalScore >= goodThreshold:
		return "Good - Minor improvements needed", "RECOMMENDED"
	case finalScore >= fairThreshold:
		return "Fair - Needs practice", "CONDITIONAL"
	default:
		return "Needs significant improvement", "NOT RECOMMENDED"
	}
}

// humanizeMetric turns "time_efficiency" into "Time Efficiency".
func humanizeMetric(metric string) string {
	words := strings.Split(metric, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
