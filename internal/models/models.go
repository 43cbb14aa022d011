package models

const (
	StatusApproved    = "Approved"
	StatusUnderReview = "Under Review"
	StatusRejected    = "Rejected"
)

// AIAnalysis is the six-field qualitative assessment of one application.
// A field the model did not return is the empty string.
type AIAnalysis struct {
	Eligibility      string `json:"eligibility"`
	Completeness     string `json:"completeness"`
	RiskFactors      string `json:"risk_factors"`
	Recommendations  string `json:"recommendations"`
	BudgetValidation string `json:"budget_validation"`
	ImpactAssessment string `json:"impact_assessment"`
}

type Scores struct {
	Risk         float64 `json:"risk_score"`
	Eligibility  float64 `json:"eligibility_score"`
	Completeness float64 `json:"completeness_score"`
}

type Application struct {
	ID                string     `json:"id"`
	Organization      string     `json:"organization"`
	ProjectTitle      string     `json:"project_title"`
	RequestedAmount   float64    `json:"requested_amount"`
	Category          string     `json:"category"`
	Neighborhood      string     `json:"neighborhood"`
	RiskScore         float64    `json:"risk_score"`
	EligibilityScore  float64    `json:"eligibility_score"`
	CompletenessScore float64    `json:"completeness_score"`
	Status            string     `json:"status"`
	SubmittedDate     string     `json:"submitted_date"`
	AIAnalysis        AIAnalysis `json:"ai_analysis"`
}

type Analytics struct {
	TotalApplications    int            `json:"total_applications"`
	ApprovedCount        int            `json:"approved_count"`
	UnderReviewCount     int            `json:"under_review_count"`
	AvgRiskScore         float64        `json:"avg_risk_score"`
	AvgEligibilityScore  float64        `json:"avg_eligibility_score"`
	AvgCompletenessScore float64        `json:"avg_completeness_score"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	ProcessingTimeSaved  string         `json:"processing_time_saved"`
	HoursSavedPerWeek    int            `json:"hours_saved_per_week"`
}

type ExportQueue struct {
	ExportDate        string        `json:"export_date"`
	TotalApplications int           `json:"total_applications"`
	PrioritizedQueue  []Application `json:"prioritized_queue"`
	ProcessingNotes   string        `json:"processing_notes"`
}
