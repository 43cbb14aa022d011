package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// OutcomeCount aggregates llm_calls rows per provider and status.
type OutcomeCount struct {
	Provider     string  `json:"provider"`
	Status       string  `json:"status"`
	Calls        int64   `json:"calls"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	LastCallAt   string  `json:"last_call_at"`
}

func ListOutcomeCounts(ctx context.Context, q Querier, since time.Time) ([]OutcomeCount, error) {
	rows, err := q.Query(ctx, `
SELECT provider_name, status, COUNT(*), COALESCE(AVG(latency_ms),0)::float8, MAX(created_at)
FROM llm_calls
WHERE created_at >= $1
GROUP BY provider_name, status
ORDER BY provider_name, status`, since)
	if err != nil {
		return nil, fmt.Errorf("list llm call outcomes: %w", err)
	}
	defer rows.Close()
	out := make([]OutcomeCount, 0)
	for rows.Next() {
		var c OutcomeCount
		var last time.Time
		if err := rows.Scan(&c.Provider, &c.Status, &c.Calls, &c.AvgLatencyMs, &last); err != nil {
			return nil, fmt.Errorf("scan llm call outcome: %w", err)
		}
		c.LastCallAt = last.UTC().Format(time.RFC3339)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm call outcomes: %w", err)
	}
	return out, nil
}
