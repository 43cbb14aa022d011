package storage

import "grantflow/internal/models"

// SampleApplications is the fixed demonstration set loaded at startup.
func SampleApplications() []models.Application {
	return []models.Application{
		{
			ID:                "1",
			Organization:      "Toronto Youth Theatre Collective",
			ProjectTitle:      "Shakespeare in the Park 2024",
			RequestedAmount:   25000,
			Category:          "Theatre",
			Neighborhood:      "High Park",
			RiskScore:         0.15,
			EligibilityScore:  0.95,
			CompletenessScore: 0.88,
			Status:            models.StatusApproved,
			SubmittedDate:     "2024-01-15",
			AIAnalysis: models.AIAnalysis{
				Eligibility:      "Eligible - Meets all criteria",
				Completeness:     "Complete - All required documents provided",
				RiskFactors:      "Low risk - Established organization with good track record",
				Recommendations:  "Approve with standard monitoring",
				BudgetValidation: "Budget is reasonable and well-justified",
				ImpactAssessment: "High community impact potential",
			},
		},
		{
			ID:                "2",
			Organization:      "Downtown Arts Initiative",
			ProjectTitle:      "Digital Art Installation Series",
			RequestedAmount:   45000,
			Category:          "Digital Arts",
			Neighborhood:      "Downtown",
			RiskScore:         0.35,
			EligibilityScore:  0.78,
			CompletenessScore: 0.72,
			Status:            models.StatusUnderReview,
			SubmittedDate:     "2024-01-20",
			AIAnalysis: models.AIAnalysis{
				Eligibility:      "Eligible - Meets basic criteria",
				Completeness:     "Incomplete - Missing financial statements",
				RiskFactors:      "Medium risk - New organization, limited track record",
				Recommendations:  "Request additional documentation",
				BudgetValidation: "Budget requires justification for high-tech equipment",
				ImpactAssessment: "Good potential but needs clearer community engagement plan",
			},
		},
		{
			ID:                "3",
			Organization:      "Scarborough Community Choir",
			ProjectTitle:      "Intergenerational Music Program",
			RequestedAmount:   12000,
			Category:          "Music",
			Neighborhood:      "Scarborough",
			RiskScore:         0.08,
			EligibilityScore:  0.92,
			CompletenessScore: 0.95,
			Status:            models.StatusApproved,
			SubmittedDate:     "2024-01-18",
			AIAnalysis: models.AIAnalysis{
				Eligibility:      "Eligible - Exceeds criteria",
				Completeness:     "Complete - Excellent documentation",
				RiskFactors:      "Very low risk - Long-standing organization",
				Recommendations:  "Approve with minimal monitoring",
				BudgetValidation: "Budget is conservative and well-planned",
				ImpactAssessment: "Excellent community impact with intergenerational focus",
			},
		},
	}
}
