package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grantflow/internal/config"
	"grantflow/internal/metrics"
)

func TestNewAnalyzerWithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{
		LLMProviders:    "mock",
		CouncilName:     "Toronto Arts Council",
		AnalysisTimeout: 5,
		FallbackPolicy:  config.FallbackManualReview,
		RedisAddr:       mr.Addr(),
		CacheTTLSeconds: 60,
	}
	a, cleanup, err := NewAnalyzer(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	first := a.AnalyzeDetailed(context.Background(), "A youth theatre program.")
	require.Equal(t, metrics.OutcomeOK, first.Outcome)
	second := a.AnalyzeDetailed(context.Background(), "A youth theatre program.")
	require.Equal(t, metrics.OutcomeCached, second.Outcome)
	require.Equal(t, first.Analysis, second.Analysis)
}

func TestNewAnalyzerUnreachableRedisFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := NewAnalyzer(context.Background(), config.Config{LLMProviders: "mock", RedisAddr: addr}, zap.NewNop())
	require.Error(t, err)
}

func TestNewAnalyzerUnknownProvider(t *testing.T) {
	_, _, err := NewAnalyzer(context.Background(), config.Config{LLMProviders: "carrier-pigeon"}, zap.NewNop())
	require.Error(t, err)
}
