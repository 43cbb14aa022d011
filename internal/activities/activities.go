package activities

import (
	"context"

	"grantflow/internal/analysis"
)

type Activities struct {
	analyzer *analysis.Analyzer
}

func New(analyzer *analysis.Analyzer) *Activities {
	return &Activities{analyzer: analyzer}
}

// AnalyzeTextActivity makes the single model call for one application. Upstream failures are
// already folded into the fallback record, so the activity itself does not fail on them.
func (a *Activities) AnalyzeTextActivity(ctx context.Context, in AnalyzeTextInput) (AnalyzeTextOutput, error) {
	res := a.analyzer.AnalyzeDetailed(ctx, in.Text)
	return AnalyzeTextOutput{
		Analysis: res.Analysis,
		Outcome:  res.Outcome,
		Provider: res.Provider,
		Model:    res.Model,
	}, nil
}
