package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"grantflow/internal/analysis"
	"grantflow/internal/api"
	"grantflow/internal/app"
	"grantflow/internal/config"
	"grantflow/internal/intake"
	"grantflow/internal/logger"
	"grantflow/internal/models"
	"grantflow/internal/storage"
	"grantflow/internal/workflows"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	log := logger.Must(cfg.LogMode)
	defer func() { _ = log.Sync() }()

	var seed []models.Application
	if cfg.SeedSamples {
		seed = storage.SampleApplications()
	}
	store, err := storage.NewMemoryStore(seed...)
	if err != nil {
		log.Fatal("seed application store", zap.Error(err))
	}

	var assessor intake.Assessor
	if cfg.AnalysisMode == config.ModeTemporal {
		c, err := client.Dial(client.Options{HostPort: cfg.TemporalAddress})
		if err != nil {
			log.Fatal("dial temporal", zap.Error(err))
		}
		defer c.Close()
		assessor = workflows.NewRunner(c, cfg, log)
	} else {
		analyzer, cleanup, err := app.NewAnalyzer(context.Background(), cfg, log)
		if err != nil {
			log.Fatal("build analyzer", zap.Error(err))
		}
		defer cleanup()
		assessor = analysis.NewService(analyzer, analysis.Deriver{RiskPolicy: cfg.RiskPolicy})
	}

	h := api.NewServer(cfg, store, intake.NewService(assessor, store, log), log)
	log.Info("grantflow api listening",
		zap.String("addr", cfg.APIAddr),
		zap.String("analysis_mode", cfg.AnalysisMode),
		zap.String("llm_providers", cfg.LLMProviders),
		zap.Int("seeded", len(seed)),
	)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal("api server stopped", zap.Error(err))
	}
}
