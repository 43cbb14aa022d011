package storage

import (
	"context"
	"fmt"
	"sync"

	"grantflow/internal/analysis"
)

const llmCallsDDL = `
CREATE TABLE IF NOT EXISTS llm_calls (
  call_id UUID PRIMARY KEY,
  operation TEXT NOT NULL,
  provider_name TEXT NOT NULL,
  model TEXT NOT NULL DEFAULT '',
  key_alias TEXT,
  status TEXT NOT NULL CHECK (status IN ('ok','cached','unparseable','failed')),
  error_type TEXT,
  latency_ms BIGINT NOT NULL DEFAULT 0,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_llm_calls_created ON llm_calls(created_at DESC);
`

// LLMAuditRepo writes one llm_calls row per analyzer call. It implements analysis.Recorder.
type LLMAuditRepo struct {
	db Execer

	schemaMu       sync.Mutex
	schemaPrepared bool
}

func NewLLMAuditRepo(db Execer) *LLMAuditRepo {
	return &LLMAuditRepo{db: db}
}

func (r *LLMAuditRepo) EnsureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()
	if r.schemaPrepared {
		return nil
	}
	if _, err := r.db.Exec(ctx, llmCallsDDL); err != nil {
		return fmt.Errorf("ensure llm_calls schema: %w", err)
	}
	r.schemaPrepared = true
	return nil
}

func (r *LLMAuditRepo) Record(ctx context.Context, rec analysis.CallRecord) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, `
INSERT INTO llm_calls(call_id, operation, provider_name, model, key_alias, status, error_type, latency_ms)
VALUES (COALESCE(NULLIF($1,'')::uuid, gen_random_uuid()), $2, $3, $4, NULLIF($5,''), $6, NULLIF($7,''), $8)`,
		rec.CallID, rec.Operation, rec.Provider, rec.Model, rec.KeyAlias, rec.Status, rec.ErrorType, rec.Latency.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}
