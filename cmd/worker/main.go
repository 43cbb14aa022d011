package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"

	"grantflow/internal/activities"
	"grantflow/internal/app"
	"grantflow/internal/config"
	"grantflow/internal/logger"
	"grantflow/internal/workflows"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	log := logger.Must(cfg.LogMode)
	defer func() { _ = log.Sync() }()

	c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		log.Fatal("dial temporal", zap.Error(err))
	}
	defer c.Close()

	analyzer, cleanup, err := app.NewAnalyzer(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("build analyzer", zap.Error(err))
	}
	defer cleanup()

	w := worker.New(c, cfg.TemporalTaskQueue, worker.Options{})
	workflows.Register(w)
	activities.Register(w, activities.New(analyzer))

	log.Info("grantflow worker listening",
		zap.String("temporal", cfg.TemporalAddress),
		zap.String("queue", cfg.TemporalTaskQueue),
		zap.String("llm_providers", cfg.LLMProviders),
	)
	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatal("worker stopped", zap.Error(err))
	}
}
