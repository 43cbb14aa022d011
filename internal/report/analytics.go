package report

import (
	"math"

	"grantflow/internal/models"
)

const (
	ProcessingTimeSaved = "80%"
	HoursSavedPerWeek   = 15
)

// Summarize aggregates the whole store. Averages are 0 when there are no applications.
func Summarize(apps []models.Application) models.Analytics {
	out := models.Analytics{
		TotalApplications:    len(apps),
		CategoryDistribution: make(map[string]int),
		ProcessingTimeSaved:  ProcessingTimeSaved,
		HoursSavedPerWeek:    HoursSavedPerWeek,
	}
	var risk, elig, comp float64
	for _, a := range apps {
		switch a.Status {
		case models.StatusApproved:
			out.ApprovedCount++
		case models.StatusUnderReview:
			out.UnderReviewCount++
		}
		risk += a.RiskScore
		elig += a.EligibilityScore
		comp += a.CompletenessScore
		out.CategoryDistribution[a.Category]++
	}
	if n := float64(len(apps)); n > 0 {
		out.AvgRiskScore = round2(risk / n)
		out.AvgEligibilityScore = round2(elig / n)
		out.AvgCompletenessScore = round2(comp / n)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
