package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grantflow/internal/config"
	"grantflow/internal/metrics"
	"grantflow/internal/models"
	"grantflow/internal/providers"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]models.AIAnalysis
}

func (c *memCache) Get(_ context.Context, key string) (models.AIAnalysis, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.data[key]
	return a, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, a models.AIAnalysis) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]models.AIAnalysis{}
	}
	c.data[key] = a
	return nil
}

type memRecorder struct {
	mu   sync.Mutex
	recs []CallRecord
}

func (r *memRecorder) Record(_ context.Context, rec CallRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

// captureProvider remembers the last request and answers with a fixed reply.
type captureProvider struct {
	reply string
	delay time.Duration
	last  providers.GenerateRequest
	calls int
}

func (c *captureProvider) Generate(ctx context.Context, req providers.GenerateRequest) (providers.GenerateResponse, providers.ProviderInfo, error) {
	c.calls++
	c.last = req
	info := providers.ProviderInfo{Name: "capture", Model: "capture-1"}
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return providers.GenerateResponse{}, info, ctx.Err()
		}
	}
	return providers.GenerateResponse{Text: c.reply}, info, nil
}

func managerWith(p providers.LLMProvider) *providers.Manager {
	return providers.NewStaticManager(providers.NamedLLMProvider{
		Ref:      providers.ProviderRef{Raw: "capture", Name: "capture"},
		Provider: p,
	})
}

func TestAnalyzerSendsClippedPromptWithSamplingParams(t *testing.T) {
	p := &captureProvider{reply: `{"eligibility":"Eligible"}`}
	a := NewAnalyzer(managerWith(p), Options{Council: "Toronto Arts Council", Logger: zap.NewNop()})

	long := strings.Repeat("a", MaxInputChars) + "TAIL-MARKER"
	got := a.Analyze(context.Background(), long)
	require.Equal(t, "Eligible", got.Eligibility)
	require.Equal(t, 1, p.calls)
	require.Equal(t, Temperature, p.last.Temperature)
	require.Equal(t, MaxTokens, p.last.MaxTokens)
	require.Contains(t, p.last.Prompt, "Toronto Arts Council")
	require.NotContains(t, p.last.Prompt, "TAIL-MARKER")
}

func TestAnalyzerCallFailureUsesFallback(t *testing.T) {
	rec := &memRecorder{}
	mock := &providers.MockProvider{Err: errors.New("openai generate: error 503: temporarily unavailable")}
	a := NewAnalyzer(managerWith(mock), Options{Recorder: rec})

	res := a.AnalyzeDetailed(context.Background(), "Community mural project")
	require.Equal(t, ManualReview(), res.Analysis)
	require.Equal(t, metrics.OutcomeFailed, res.Outcome)
	require.Len(t, rec.recs, 1)
	require.Equal(t, metrics.OutcomeFailed, rec.recs[0].Status)
	require.Equal(t, string(providers.ErrorTransient), rec.recs[0].ErrorType)
	require.NotEmpty(t, rec.recs[0].CallID)
}

func TestAnalyzerUnparseableUsesConfiguredFallback(t *testing.T) {
	mock := &providers.MockProvider{Raw: "This application looks great!"}
	a := NewAnalyzer(managerWith(mock), Options{FallbackPolicy: config.FallbackOptimistic})
	res := a.AnalyzeDetailed(context.Background(), "Community mural project")
	require.Equal(t, Optimistic(), res.Analysis)
	require.Equal(t, metrics.OutcomeUnparseable, res.Outcome)

	a = NewAnalyzer(managerWith(mock), Options{})
	require.Equal(t, ManualReview(), a.Analyze(context.Background(), "Community mural project"))
}

func TestAnalyzerTimeoutIsFailure(t *testing.T) {
	p := &captureProvider{reply: `{"eligibility":"Eligible"}`, delay: time.Second}
	a := NewAnalyzer(managerWith(p), Options{Timeout: 20 * time.Millisecond})
	res := a.AnalyzeDetailed(context.Background(), "Community mural project")
	require.Equal(t, ManualReview(), res.Analysis)
	require.Equal(t, metrics.OutcomeFailed, res.Outcome)
}

func TestAnalyzerCachesOnlyParsedResults(t *testing.T) {
	cache := &memCache{}
	p := &captureProvider{reply: "not json"}
	a := NewAnalyzer(managerWith(p), Options{Cache: cache})

	a.Analyze(context.Background(), "same text")
	a.Analyze(context.Background(), "same text")
	require.Equal(t, 2, p.calls)
	require.Empty(t, cache.data)

	p.reply = `{"eligibility":"Eligible","completeness":"Complete"}`
	first := a.AnalyzeDetailed(context.Background(), "same text")
	second := a.AnalyzeDetailed(context.Background(), "same text")
	require.Equal(t, 3, p.calls)
	require.Equal(t, metrics.OutcomeOK, first.Outcome)
	require.Equal(t, metrics.OutcomeCached, second.Outcome)
	require.Equal(t, first.Analysis, second.Analysis)
}

func TestServiceAssess(t *testing.T) {
	svc := NewService(NewAnalyzer(providers.NewStaticManager(), Options{}), Deriver{RiskPolicy: config.RiskAdditive})
	got := svc.Assess(context.Background(), "A youth theatre program. Budget section is incomplete.")
	require.Contains(t, got.Analysis.Completeness, "Incomplete")
	require.Equal(t, 0.4, got.Scores.Completeness)
	require.Equal(t, 0.9, got.Scores.Eligibility)
	require.Equal(t, 0.4, got.Scores.Risk)
}
