package analysis

import (
	"math"
	"strings"

	"grantflow/internal/config"
	"grantflow/internal/models"
)

// RiskScore starts at 0.5, moves 0.3 down for "low risk" or else 0.3 up for "high risk",
// adds 0.2 when completeness mentions "incomplete", and clamps to [0,1].
func RiskScore(a models.AIAnalysis) float64 {
	risk := strings.ToLower(a.RiskFactors)
	score := 0.5
	if strings.Contains(risk, "low risk") {
		score -= 0.3
	} else if strings.Contains(risk, "high risk") {
		score += 0.3
	}
	if strings.Contains(strings.ToLower(a.Completeness), "incomplete") {
		score += 0.2
	}
	return clamp(score)
}

// TieredRiskScore maps the risk wording to 0.2, 0.8 or 0.5 and ignores completeness.
func TieredRiskScore(a models.AIAnalysis) float64 {
	risk := strings.ToLower(a.RiskFactors)
	switch {
	case strings.Contains(risk, "low risk"):
		return 0.2
	case strings.Contains(risk, "high risk"):
		return 0.8
	default:
		return 0.5
	}
}

// EligibilityScore checks "ineligible" first since it contains "eligible".
func EligibilityScore(a models.AIAnalysis) float64 {
	e := strings.ToLower(a.Eligibility)
	switch {
	case strings.Contains(e, "ineligible"):
		return 0.2
	case strings.Contains(e, "eligible"):
		return 0.9
	default:
		return 0.5
	}
}

// CompletenessScore checks "incomplete" first since it contains "complete".
func CompletenessScore(a models.AIAnalysis) float64 {
	c := strings.ToLower(a.Completeness)
	switch {
	case strings.Contains(c, "incomplete"):
		return 0.4
	case strings.Contains(c, "complete"):
		return 0.9
	default:
		return 0.6
	}
}

// Deriver turns an analysis into the three scores under one risk policy.
type Deriver struct {
	RiskPolicy string
}

func (d Deriver) Derive(a models.AIAnalysis) models.Scores {
	risk := RiskScore
	if d.RiskPolicy == config.RiskTiered {
		risk = TieredRiskScore
	}
	return models.Scores{
		Risk:         risk(a),
		Eligibility:  EligibilityScore(a),
		Completeness: CompletenessScore(a),
	}
}

// clamp bounds v to [0,1] and drops float noise such as 0.7999999999999999.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*100) / 100
}
