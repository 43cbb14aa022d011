package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grantflow/internal/config"
	"grantflow/internal/models"
)

func TestEligibilityTieBreak(t *testing.T) {
	require.Equal(t, 0.2, EligibilityScore(models.AIAnalysis{Eligibility: "Ineligible - missing forms"}))
	require.Equal(t, 0.9, EligibilityScore(models.AIAnalysis{Eligibility: "ELIGIBLE - meets all criteria"}))
	require.Equal(t, 0.5, EligibilityScore(models.AIAnalysis{Eligibility: "Unclear"}))
	require.Equal(t, 0.5, EligibilityScore(models.AIAnalysis{}))
}

func TestCompletenessTieBreak(t *testing.T) {
	require.Equal(t, 0.4, CompletenessScore(models.AIAnalysis{Completeness: "Incomplete - missing budget"}))
	require.Equal(t, 0.9, CompletenessScore(models.AIAnalysis{Completeness: "Complete - all documents"}))
	require.Equal(t, 0.6, CompletenessScore(models.AIAnalysis{}))
}

func TestRiskScoreAdditive(t *testing.T) {
	cases := []struct {
		name string
		in   models.AIAnalysis
		want float64
	}{
		{"neutral", models.AIAnalysis{}, 0.5},
		{"low", models.AIAnalysis{RiskFactors: "Low risk - established"}, 0.2},
		{"high", models.AIAnalysis{RiskFactors: "High risk - new org"}, 0.8},
		{"high and incomplete clamps", models.AIAnalysis{RiskFactors: "high risk", Completeness: "Incomplete"}, 1},
		{"low wins over high", models.AIAnalysis{RiskFactors: "low risk overall, not high risk"}, 0.2},
		{"low and incomplete", models.AIAnalysis{RiskFactors: "low risk", Completeness: "incomplete"}, 0.4},
		{"very low risk still matches", models.AIAnalysis{RiskFactors: "Very low risk"}, 0.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RiskScore(tc.in))
		})
	}
}

func TestTieredRiskScore(t *testing.T) {
	require.Equal(t, 0.2, TieredRiskScore(models.AIAnalysis{RiskFactors: "Low risk", Completeness: "incomplete"}))
	require.Equal(t, 0.8, TieredRiskScore(models.AIAnalysis{RiskFactors: "High risk"}))
	require.Equal(t, 0.5, TieredRiskScore(models.AIAnalysis{RiskFactors: "medium"}))
}

func TestScoresBounded(t *testing.T) {
	inputs := []models.AIAnalysis{
		{},
		ManualReview(),
		Optimistic(),
		{Eligibility: "ineligible eligible", Completeness: "incomplete complete", RiskFactors: "high risk high risk"},
		{RiskFactors: "low risk", Completeness: "incomplete incomplete"},
	}
	for _, policy := range []string{config.RiskAdditive, config.RiskTiered} {
		d := Deriver{RiskPolicy: policy}
		for _, in := range inputs {
			s := d.Derive(in)
			for _, v := range []float64{s.Risk, s.Eligibility, s.Completeness} {
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestDeriverManualReviewFallback(t *testing.T) {
	s := Deriver{}.Derive(ManualReview())
	require.Equal(t, models.Scores{Risk: 0.5, Eligibility: 0.5, Completeness: 0.6}, s)
}
