package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"grantflow/internal/analysis"
	"grantflow/internal/metrics"
	"grantflow/internal/providers"
)

func TestAnalyzeTextActivity(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	a := New(analysis.NewAnalyzer(providers.NewStaticManager(), analysis.Options{}))
	env.RegisterActivity(a.AnalyzeTextActivity)

	val, err := env.ExecuteActivity(a.AnalyzeTextActivity, AnalyzeTextInput{Text: "A choir program, high risk venue."})
	require.NoError(t, err)
	var out AnalyzeTextOutput
	require.NoError(t, val.Get(&out))
	require.Equal(t, metrics.OutcomeOK, out.Outcome)
	require.Equal(t, "mock", out.Provider)
	require.Contains(t, out.Analysis.RiskFactors, "High risk")
}

func TestAnalyzeTextActivityFallbackIsNotAnError(t *testing.T) {
	mgr := providers.NewStaticManager(providers.NamedLLMProvider{
		Ref:      providers.ProviderRef{Raw: "mock", Name: "mock"},
		Provider: &providers.MockProvider{Raw: "no json here"},
	})
	a := New(analysis.NewAnalyzer(mgr, analysis.Options{}))
	out, err := a.AnalyzeTextActivity(context.Background(), AnalyzeTextInput{Text: "x"})
	require.NoError(t, err)
	require.Equal(t, metrics.OutcomeUnparseable, out.Outcome)
	require.Equal(t, analysis.ManualReview(), out.Analysis)
}
