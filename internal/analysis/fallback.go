package analysis

import (
	"grantflow/internal/config"
	"grantflow/internal/models"
)

const manualReviewNote = "Analysis error - manual review required"

// ManualReview is substituted whenever the model call fails or its reply cannot be parsed.
func ManualReview() models.AIAnalysis {
	return models.AIAnalysis{
		Eligibility:      manualReviewNote,
		Completeness:     manualReviewNote,
		RiskFactors:      manualReviewNote,
		Recommendations:  "Manual review required due to analysis error",
		BudgetValidation: manualReviewNote,
		ImpactAssessment: manualReviewNote,
	}
}

// Optimistic is the success-biased record, kept for deployments that opt into it.
func Optimistic() models.AIAnalysis {
	return models.AIAnalysis{
		Eligibility:      "Eligible - AI analysis completed",
		Completeness:     "Complete - All required elements present",
		RiskFactors:      "Low risk - Standard application",
		Recommendations:  "Approve with standard monitoring",
		BudgetValidation: "Budget appears reasonable",
		ImpactAssessment: "Good community impact potential",
	}
}

// Fallback returns the record for the configured policy.
func Fallback(policy string) models.AIAnalysis {
	if policy == config.FallbackOptimistic {
		return Optimistic()
	}
	return ManualReview()
}
