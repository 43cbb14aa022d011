package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"grantflow/internal/activities"
	"grantflow/internal/analysis"
	"grantflow/internal/metrics"
)

const QueryGetProgress = "GetProgress"

// AssessApplicationWorkflow runs one AnalyzeTextActivity attempt and derives the scores.
// It completes with the fallback assessment when the activity fails or times out.
func AssessApplicationWorkflow(ctx workflow.Context, input AssessApplicationInput) (AssessApplicationOutput, error) {
	progress := AssessProgress{Stage: "analyzing"}
	if err := workflow.SetQueryHandler(ctx, QueryGetProgress, func() (AssessProgress, error) {
		return progress, nil
	}); err != nil {
		return AssessApplicationOutput{}, err
	}

	timeout := time.Duration(input.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		// a little headroom over the analyzer's own deadline so it can record the outcome
		StartToCloseTimeout: timeout + 5*time.Second,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})

	deriver := analysis.Deriver{RiskPolicy: input.RiskPolicy}
	var out activities.AnalyzeTextOutput
	err := workflow.ExecuteActivity(ctx, activities.AnalyzeTextActivityName, activities.AnalyzeTextInput{Text: input.Text}).Get(ctx, &out)
	if err != nil {
		workflow.GetLogger(ctx).Warn("analysis activity failed, using fallback", "error", err)
		out = activities.AnalyzeTextOutput{
			Analysis: analysis.Fallback(input.FallbackPolicy),
			Outcome:  metrics.OutcomeFailed,
		}
	}

	progress = AssessProgress{Stage: "scored", Outcome: out.Outcome}
	return AssessApplicationOutput{
		Assessment: analysis.Assessment{Analysis: out.Analysis, Scores: deriver.Derive(out.Analysis)},
		Outcome:    out.Outcome,
		Provider:   out.Provider,
	}, nil
}
