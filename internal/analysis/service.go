package analysis

import (
	"context"

	"grantflow/internal/models"
)

type Assessment struct {
	Analysis models.AIAnalysis `json:"ai_analysis"`
	Scores   models.Scores     `json:"scores"`
}

// Service runs the analyzer and derives the scores in-process.
type Service struct {
	analyzer *Analyzer
	deriver  Deriver
}

func NewService(analyzer *Analyzer, deriver Deriver) *Service {
	return &Service{analyzer: analyzer, deriver: deriver}
}

func (s *Service) Assess(ctx context.Context, text string) Assessment {
	a := s.analyzer.Analyze(ctx, text)
	return Assessment{Analysis: a, Scores: s.deriver.Derive(a)}
}
