package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"grantflow/internal/analysis"
	"grantflow/internal/config"
	"grantflow/internal/providers"
	"grantflow/internal/storage"
)

// NewAnalyzer builds the analyzer for cfg. The Postgres audit log and the Redis cache are
// attached only when their addresses are set; a configured backend that cannot be reached
// fails startup. The returned cleanup closes whatever was opened.
func NewAnalyzer(ctx context.Context, cfg config.Config, log *zap.Logger) (*analysis.Analyzer, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}
	mgr, err := providers.NewManager(cfg)
	if err != nil {
		return nil, nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		db  *storage.DB
		rdb *redis.Client
	)
	g, gctx := errgroup.WithContext(dialCtx)
	if cfg.PostgresURL != "" {
		g.Go(func() error {
			conn, err := storage.NewDB(gctx, cfg.PostgresURL)
			if err != nil {
				return fmt.Errorf("llm audit: %w", err)
			}
			db = conn
			return nil
		})
	}
	if cfg.RedisAddr != "" {
		g.Go(func() error {
			client, err := storage.NewRedisClient(gctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
			if err != nil {
				return fmt.Errorf("analysis cache: %w", err)
			}
			rdb = client
			return nil
		})
	}
	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		db.Close()
	}
	if err := g.Wait(); err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := analysis.Options{
		Council:        cfg.CouncilName,
		FallbackPolicy: cfg.FallbackPolicy,
		Timeout:        cfg.AnalysisTimeoutDuration(),
		Logger:         log,
	}
	if db != nil {
		audit := storage.NewLLMAuditRepo(db.Pool)
		if err := audit.EnsureSchema(dialCtx); err != nil {
			cleanup()
			return nil, nil, err
		}
		opts.Recorder = audit
	}
	if rdb != nil {
		opts.Cache = storage.NewAnalysisCache(rdb, cfg.CacheTTL())
	}

	log.Info("analyzer ready",
		zap.Strings("llm_providers", providerNames(mgr)),
		zap.Bool("audit", opts.Recorder != nil),
		zap.Bool("cache", opts.Cache != nil),
		zap.String("fallback_policy", cfg.FallbackPolicy),
	)
	return analysis.NewAnalyzer(mgr, opts), cleanup, nil
}

// providerNames lists the configured provider refs; only the first one is called.
func providerNames(mgr *providers.Manager) []string {
	refs := mgr.LLMProviderRefs()
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Raw)
	}
	return out
}
