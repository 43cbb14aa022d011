package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"grantflow/internal/models"
)

const analysisKeyPrefix = "grantflow:analysis:"

// NewRedisClient builds a client with conservative timeouts and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// AnalysisCache keeps parsed analyses in Redis. It implements analysis.Cache.
type AnalysisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalysisCache(rdb *redis.Client, ttl time.Duration) *AnalysisCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AnalysisCache{rdb: rdb, ttl: ttl}
}

func (c *AnalysisCache) Get(ctx context.Context, key string) (models.AIAnalysis, bool, error) {
	raw, err := c.rdb.Get(ctx, analysisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.AIAnalysis{}, false, nil
	}
	if err != nil {
		return models.AIAnalysis{}, false, fmt.Errorf("read cached analysis: %w", err)
	}
	var a models.AIAnalysis
	if err := json.Unmarshal(raw, &a); err != nil {
		// treat a corrupt entry as a miss; the next parsed result overwrites it
		return models.AIAnalysis{}, false, nil
	}
	return a, true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, key string, a models.AIAnalysis) error {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	if err := c.rdb.Set(ctx, analysisKeyPrefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("write cached analysis: %w", err)
	}
	return nil
}
