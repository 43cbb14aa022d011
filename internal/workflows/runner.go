package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	tclient "go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"grantflow/internal/analysis"
	"grantflow/internal/config"
)

// Starter is the part of the Temporal client the runner uses.
type Starter interface {
	ExecuteWorkflow(ctx context.Context, options tclient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (tclient.WorkflowRun, error)
}

// Runner assesses applications through AssessApplicationWorkflow and waits for the result.
// Any start or execution error resolves to the fallback assessment.
type Runner struct {
	temporal Starter
	cfg      config.Config
	log      *zap.Logger
}

func NewRunner(c Starter, cfg config.Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{temporal: c, cfg: cfg, log: log}
}

func (r *Runner) Assess(ctx context.Context, text string) analysis.Assessment {
	wait := r.cfg.AnalysisTimeoutDuration() + 15*time.Second
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	wfID := "assess-" + uuid.NewString()
	run, err := r.temporal.ExecuteWorkflow(ctx, tclient.StartWorkflowOptions{
		ID:                       wfID,
		TaskQueue:                r.cfg.TemporalTaskQueue,
		WorkflowExecutionTimeout: wait,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}, AssessApplicationWorkflow, AssessApplicationInput{
		Text:           text,
		RiskPolicy:     r.cfg.RiskPolicy,
		FallbackPolicy: r.cfg.FallbackPolicy,
		TimeoutSeconds: r.cfg.AnalysisTimeout,
	})
	if err != nil {
		r.log.Warn("start assessment workflow failed", zap.String("workflow_id", wfID), zap.Error(err))
		return r.fallback()
	}

	var out AssessApplicationOutput
	if err := run.Get(ctx, &out); err != nil {
		r.log.Warn("assessment workflow failed", zap.String("workflow_id", wfID), zap.Error(err))
		return r.fallback()
	}
	r.log.Info("assessment workflow completed",
		zap.String("workflow_id", wfID),
		zap.String("outcome", out.Outcome),
		zap.String("provider", out.Provider),
	)
	return out.Assessment
}

func (r *Runner) fallback() analysis.Assessment {
	a := analysis.Fallback(r.cfg.FallbackPolicy)
	return analysis.Assessment{Analysis: a, Scores: analysis.Deriver{RiskPolicy: r.cfg.RiskPolicy}.Derive(a)}
}
