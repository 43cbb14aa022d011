package workflows

import "grantflow/internal/analysis"

type AssessApplicationInput struct {
	Text           string `json:"text"`
	RiskPolicy     string `json:"risk_policy"`
	FallbackPolicy string `json:"fallback_policy"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type AssessApplicationOutput struct {
	Assessment analysis.Assessment `json:"assessment"`
	Outcome    string              `json:"outcome"`
	Provider   string              `json:"provider,omitempty"`
}

type AssessProgress struct {
	Stage   string `json:"stage"`
	Outcome string `json:"outcome,omitempty"`
}
