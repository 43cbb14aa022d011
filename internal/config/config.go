package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	FallbackManualReview = "manual_review"
	FallbackOptimistic   = "optimistic"

	RiskAdditive = "additive"
	RiskTiered   = "tiered"

	ModeInline   = "inline"
	ModeTemporal = "temporal"
)

type Config struct {
	APIAddr           string `mapstructure:"api_addr"`
	LogMode           string `mapstructure:"log_mode"`
	LLMProviders      string `mapstructure:"llm_providers"`
	OpenAIModel       string `mapstructure:"openai_model"`
	GroqModel         string `mapstructure:"groq_model"`
	OllamaBaseURL     string `mapstructure:"ollama_base_url"`
	OllamaModel       string `mapstructure:"ollama_model"`
	GeminiModel       string `mapstructure:"gemini_model"`
	CouncilName       string `mapstructure:"council_name"`
	AnalysisTimeout   int    `mapstructure:"analysis_timeout_seconds"`
	FallbackPolicy    string `mapstructure:"fallback_policy"`
	RiskPolicy        string `mapstructure:"risk_policy"`
	AnalysisMode      string `mapstructure:"analysis_mode"`
	SeedSamples       bool   `mapstructure:"seed_samples"`
	MaxUploadBytes    int64  `mapstructure:"max_upload_bytes"`
	PostgresURL       string `mapstructure:"postgres_url"`
	RedisAddr         string `mapstructure:"redis_addr"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db"`
	CacheTTLSeconds   int    `mapstructure:"cache_ttl_seconds"`
	TemporalAddress   string `mapstructure:"temporal_address"`
	TemporalTaskQueue string `mapstructure:"temporal_task_queue"`
}

var defaults = map[string]any{
	"api_addr":                 ":5001",
	"log_mode":                 "dev",
	"llm_providers":            "openai",
	"openai_model":             "gpt-4",
	"groq_model":               "llama-3.1-8b-instant",
	"ollama_base_url":          "http://localhost:11434",
	"ollama_model":             "llama3.1",
	"gemini_model":             "gemini-2.5-flash",
	"council_name":             "Toronto Arts Council",
	"analysis_timeout_seconds": 30,
	"fallback_policy":          FallbackManualReview,
	"risk_policy":              RiskAdditive,
	"analysis_mode":            ModeInline,
	"seed_samples":             true,
	"max_upload_bytes":         int64(16 << 20),
	"postgres_url":             "",
	"redis_addr":               "",
	"redis_password":           "",
	"redis_db":                 0,
	"cache_ttl_seconds":        86400,
	"temporal_address":         "localhost:7233",
	"temporal_task_queue":      "grantflow",
}

// Load reads GRANTFLOW_* environment variables over the built-in defaults.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("GRANTFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		cfg = fromDefaults(v)
	}
	cfg.normalize()
	return cfg
}

func fromDefaults(v *viper.Viper) Config {
	return Config{
		APIAddr:           v.GetString("api_addr"),
		LogMode:           v.GetString("log_mode"),
		LLMProviders:      v.GetString("llm_providers"),
		OpenAIModel:       v.GetString("openai_model"),
		GroqModel:         v.GetString("groq_model"),
		OllamaBaseURL:     v.GetString("ollama_base_url"),
		OllamaModel:       v.GetString("ollama_model"),
		GeminiModel:       v.GetString("gemini_model"),
		CouncilName:       v.GetString("council_name"),
		AnalysisTimeout:   v.GetInt("analysis_timeout_seconds"),
		FallbackPolicy:    v.GetString("fallback_policy"),
		RiskPolicy:        v.GetString("risk_policy"),
		AnalysisMode:      v.GetString("analysis_mode"),
		SeedSamples:       v.GetBool("seed_samples"),
		MaxUploadBytes:    v.GetInt64("max_upload_bytes"),
		PostgresURL:       v.GetString("postgres_url"),
		RedisAddr:         v.GetString("redis_addr"),
		RedisPassword:     v.GetString("redis_password"),
		RedisDB:           v.GetInt("redis_db"),
		CacheTTLSeconds:   v.GetInt("cache_ttl_seconds"),
		TemporalAddress:   v.GetString("temporal_address"),
		TemporalTaskQueue: v.GetString("temporal_task_queue"),
	}
}

func (c *Config) normalize() {
	c.FallbackPolicy = strings.ToLower(strings.TrimSpace(c.FallbackPolicy))
	if c.FallbackPolicy != FallbackOptimistic {
		c.FallbackPolicy = FallbackManualReview
	}
	c.RiskPolicy = strings.ToLower(strings.TrimSpace(c.RiskPolicy))
	if c.RiskPolicy != RiskTiered {
		c.RiskPolicy = RiskAdditive
	}
	c.AnalysisMode = strings.ToLower(strings.TrimSpace(c.AnalysisMode))
	if c.AnalysisMode != ModeTemporal {
		c.AnalysisMode = ModeInline
	}
	if c.AnalysisTimeout <= 0 {
		c.AnalysisTimeout = 30
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 16 << 20
	}
	if c.CacheTTLSeconds <= 0 {
		c.CacheTTLSeconds = 86400
	}
}

func (c Config) AnalysisTimeoutDuration() time.Duration {
	return time.Duration(c.AnalysisTimeout) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
