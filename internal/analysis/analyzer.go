package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"grantflow/internal/metrics"
	"grantflow/internal/models"
	"grantflow/internal/providers"
	"grantflow/internal/util"
)

const operationAnalyze = "analyze_application"

// Cache stores parsed analyses by key. Implementations must treat a miss as (zero, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (models.AIAnalysis, bool, error)
	Set(ctx context.Context, key string, a models.AIAnalysis) error
}

// CallRecord describes one analyzer call for the audit log.
type CallRecord struct {
	CallID    string
	Operation string
	Provider  string
	Model     string
	KeyAlias  string
	Status    string
	ErrorType string
	Latency   time.Duration
}

type Recorder interface {
	Record(ctx context.Context, rec CallRecord) error
}

type Options struct {
	Council        string
	FallbackPolicy string
	Timeout        time.Duration
	Cache          Cache
	Recorder       Recorder
	Logger         *zap.Logger
}

// Analyzer sends application text to the first configured provider, once, and always
// returns a complete record: the parsed reply or the configured fallback.
type Analyzer struct {
	providers *providers.Manager
	opts      Options
	log       *zap.Logger
}

// Result is an analysis plus how it was obtained.
type Result struct {
	Analysis models.AIAnalysis `json:"ai_analysis"`
	Outcome  string            `json:"outcome"`
	Provider string            `json:"provider"`
	Model    string            `json:"model"`
}

func NewAnalyzer(mgr *providers.Manager, opts Options) *Analyzer {
	if mgr == nil {
		mgr = providers.NewStaticManager()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{providers: mgr, opts: opts, log: log}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) models.AIAnalysis {
	return a.AnalyzeDetailed(ctx, text).Analysis
}

func (a *Analyzer) AnalyzeDetailed(ctx context.Context, text string) Result {
	start := time.Now()
	provider, ref := a.providers.FirstLLMProvider()
	clipped := util.ClipRunes(text, MaxInputChars)
	key := cacheKey(ref, a.opts.Council, clipped)

	if a.opts.Cache != nil {
		cached, ok, err := a.opts.Cache.Get(ctx, key)
		if err != nil {
			a.log.Warn("analysis cache read failed", zap.Error(err))
		} else if ok {
			res := Result{Analysis: cached, Outcome: metrics.OutcomeCached, Provider: ref.Name}
			a.finish(ctx, res, ref, nil, start)
			return res
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()
	resp, info, err := provider.Generate(callCtx, providers.GenerateRequest{
		Operation:   operationAnalyze,
		System:      systemPrompt,
		Prompt:      BuildPrompt(a.opts.Council, clipped),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if info.Name == "" {
		info.Name = ref.Name
	}
	if err != nil {
		res := Result{Analysis: Fallback(a.opts.FallbackPolicy), Outcome: metrics.OutcomeFailed, Provider: info.Name, Model: info.Model}
		a.finish(ctx, res, ref, err, start)
		return res
	}

	parsed, err := ParseAnalysis(resp.Text)
	if err != nil {
		res := Result{Analysis: Fallback(a.opts.FallbackPolicy), Outcome: metrics.OutcomeUnparseable, Provider: info.Name, Model: info.Model}
		a.finish(ctx, res, ref, err, start)
		return res
	}

	if a.opts.Cache != nil {
		if err := a.opts.Cache.Set(ctx, key, parsed); err != nil {
			a.log.Warn("analysis cache write failed", zap.Error(err))
		}
	}
	res := Result{Analysis: parsed, Outcome: metrics.OutcomeOK, Provider: info.Name, Model: info.Model}
	a.finish(ctx, res, ref, nil, start)
	return res
}

func (a *Analyzer) finish(ctx context.Context, res Result, ref providers.ProviderRef, callErr error, start time.Time) {
	elapsed := time.Since(start)
	metrics.AnalysisOutcomes.WithLabelValues(res.Provider, res.Outcome).Inc()
	metrics.AnalysisDuration.WithLabelValues(res.Provider, res.Outcome).Observe(elapsed.Seconds())

	fields := []zap.Field{
		zap.String("provider", res.Provider),
		zap.String("model", res.Model),
		zap.String("outcome", res.Outcome),
		zap.Duration("latency", elapsed),
	}
	errType := ""
	if callErr != nil {
		if errors.Is(callErr, util.ErrUnparseableAnalysis) {
			errType = "parse"
		} else {
			errType = string(providers.ClassifyError(callErr))
		}
		a.log.Warn("analysis fell back", append(fields, zap.String("error_type", errType), zap.Error(callErr))...)
	} else {
		a.log.Info("analysis completed", fields...)
	}

	if a.opts.Recorder == nil {
		return
	}
	rec := CallRecord{
		CallID:    uuid.NewString(),
		Operation: operationAnalyze,
		Provider:  res.Provider,
		Model:     res.Model,
		KeyAlias:  ref.KeyAlias,
		Status:    res.Outcome,
		ErrorType: errType,
		Latency:   elapsed,
	}
	// recorded even when the request context is already done
	if err := a.opts.Recorder.Record(context.WithoutCancel(ctx), rec); err != nil {
		a.log.Warn("llm audit insert failed", zap.Error(err))
	}
}

func cacheKey(ref providers.ProviderRef, council, clipped string) string {
	return util.HashParts(ref.Raw, council, clipped)
}
