package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"grantflow/internal/analysis"
)

type fakeExecer struct {
	sqls []string
	args [][]any
	err  error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestLLMAuditRepoRecord(t *testing.T) {
	db := &fakeExecer{}
	repo := NewLLMAuditRepo(db)
	rec := analysis.CallRecord{CallID: "c1", Operation: "analyze_application", Provider: "openai", Model: "gpt-4", Status: "failed", ErrorType: "auth", Latency: 1500 * time.Millisecond}

	require.NoError(t, repo.Record(context.Background(), rec))
	require.NoError(t, repo.Record(context.Background(), rec))

	// schema once, then one insert per call
	require.Len(t, db.sqls, 3)
	require.True(t, strings.Contains(db.sqls[0], "CREATE TABLE IF NOT EXISTS llm_calls"))
	require.True(t, strings.Contains(db.sqls[1], "INSERT INTO llm_calls"))
	require.Equal(t, []any{"c1", "analyze_application", "openai", "gpt-4", "", "failed", "auth", int64(1500)}, db.args[1])
}

func TestLLMAuditRepoWrapsErrors(t *testing.T) {
	db := &fakeExecer{err: errors.New("connection refused")}
	err := NewLLMAuditRepo(db).Record(context.Background(), analysis.CallRecord{})
	require.ErrorContains(t, err, "ensure llm_calls schema")
}
