package audit

import "math"

// criterionWeights fixes the contribution of each recognized category to the
// overall score. Categories outside this table contribute nothing.
var criterionWeights = map[string]float64{
	"Hook":      0.30,
	"Retention": 0.25,
	"Visuals":   0.20,
	"Pacing":    0.15,
	"Caption":   0.10,
}

const (
	fallbackVerdict     = "Audit incomplete; verdict unavailable."
	fallbackExplanation = "Weighted average of criteria scores: Hook 30%, Retention 25%, Visuals 20%, Pacing 15%, Caption 10%."
)

// OverallScore computes the 0-100 weighted aggregate of the category scores.
// Each score is clamped to [0,10], scaled to a 0-100 contribution and
// weighted; the sum is normalized by the weights actually present so a
// partial set of criteria still yields a full-range score. No recognized
// category means 0.
//
// Pure by construction: the server-enforced score can never be spoofed or
// left absent by the model.
func OverallScore(criteria []Criterion) int {
	var sum, weightSum float64
	for _, c := range criteria {
		w, ok := criterionWeights[c.Name]
		if !ok {
			continue
		}
		score := math.Max(0, math.Min(10, c.Score))
		sum += score * 10 * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return int(math.Round(sum / weightSum))
}

// EnforceOverall overwrites the model-provided overall block. The verdict and
// explanation keep the model's text when present, otherwise fixed fallbacks;
// the score is always the server-computed value.
func EnforceOverall(res *AuditResult) {
	verdict := res.Overall.Verdict
	if verdict == "" {
		verdict = fallbackVerdict
	}
	explanation := res.Overall.ScoreExplanation
	if explanation == "" {
		explanation = fallbackExplanation
	}
	res.Overall = Overall{
		Verdict:          verdict,
		ScoreExplanation: explanation,
		Score:            OverallScore(res.Criteria),
	}
}
