package activities

import "grantflow/internal/models"

type AnalyzeTextInput struct {
	Text string `json:"text"`
}

type AnalyzeTextOutput struct {
	Analysis models.AIAnalysis `json:"ai_analysis"`
	Outcome  string            `json:"outcome"`
	Provider string            `json:"provider"`
	Model    string            `json:"model"`
}
