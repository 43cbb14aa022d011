package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"grantflow/internal/analysis"
	"grantflow/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScoreCommand(t *testing.T) {
	t.Setenv("GRANTFLOW_RISK_POLICY", "additive")
	path := writeFile(t, "analysis.json", `{"eligibility":"Eligible","completeness":"Incomplete","risk_factors":"Low risk"}`)

	out, err := run(t, "score", path)
	require.NoError(t, err)
	var s models.Scores
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, models.Scores{Risk: 0.4, Eligibility: 0.9, Completeness: 0.4}, s)
}

func TestScoreCommandTieredFlag(t *testing.T) {
	path := writeFile(t, "analysis.json", `{"completeness":"Incomplete","risk_factors":"Low risk"}`)

	out, err := run(t, "score", "--risk-policy", "tiered", path)
	require.NoError(t, err)
	var s models.Scores
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	require.Equal(t, 0.2, s.Risk)
}

func TestScoreCommandBadJSON(t *testing.T) {
	_, err := run(t, "score", writeFile(t, "analysis.json", "not json"))
	require.Error(t, err)
}

func TestAnalyzeCommandWithMockProvider(t *testing.T) {
	t.Setenv("GRANTFLOW_LLM_PROVIDERS", "mock")
	t.Setenv("GRANTFLOW_REDIS_ADDR", "")
	t.Setenv("GRANTFLOW_POSTGRES_URL", "")
	path := writeFile(t, "application.txt", "Community mural project. The budget section is incomplete.")

	out, err := run(t, "analyze", path)
	require.NoError(t, err)
	var got analysis.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Analysis.Eligibility)
	require.Equal(t, 0.4, got.Scores.Completeness)
}

func TestAnalyzeCommandRejectsEmptyFile(t *testing.T) {
	t.Setenv("GRANTFLOW_LLM_PROVIDERS", "mock")
	_, err := run(t, "analyze", writeFile(t, "empty.txt", "   \n"))
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "grantctl version: unknown")
}

func TestAuditCommandNeedsPostgres(t *testing.T) {
	t.Setenv("GRANTFLOW_POSTGRES_URL", "")
	_, err := run(t, "audit")
	require.ErrorContains(t, err, "GRANTFLOW_POSTGRES_URL")
}

func TestProvidersCommandMarksFirstActive(t *testing.T) {
	t.Setenv("GRANTFLOW_LLM_PROVIDERS", "mock|groq:team")

	out, err := run(t, "providers")
	require.NoError(t, err)
	var got []providerEntry
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []providerEntry{
		{Name: "mock", Active: true},
		{Name: "groq", KeyAlias: "team", Active: false},
	}, got)
}
