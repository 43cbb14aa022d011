package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveGroqKeyAlias(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "default-key")
	t.Setenv("GRANTFLOW_GROQ_KEY_TEAM_A", "team-key")
	require.Equal(t, "team-key", NewGroqProvider("team-a", "").apiKey)
	require.Equal(t, "default-key", NewGroqProvider("other", "").apiKey)
}

func TestGroqMissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	_, info, err := NewGroqProvider("", "").Generate(context.Background(), GenerateRequest{Prompt: "hi"})
	require.True(t, errors.Is(err, ErrMissingKey))
	require.Equal(t, "groq", info.Name)
}

func TestChatCompletionSendsSamplingParams(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"eligibility\":\"Eligible\"}"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("", "gpt-4")
	p.apiKey = "k"
	p.url = srv.URL
	resp, info, err := p.Generate(context.Background(), GenerateRequest{Prompt: "assess", Temperature: 0.3, MaxTokens: 500})
	require.NoError(t, err)
	require.Equal(t, `{"eligibility":"Eligible"}`, resp.Text)
	require.Equal(t, "gpt-4", info.Model)
	require.Equal(t, "gpt-4", got["model"])
	require.InDelta(t, 0.3, got["temperature"], 1e-9)
	require.EqualValues(t, 500, got["max_tokens"])
}

func TestChatCompletionSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	p := NewGroqProvider("", "")
	p.apiKey = "k"
	p.url = srv.URL
	_, _, err := p.Generate(context.Background(), GenerateRequest{Prompt: "assess"})
	require.Error(t, err)
	require.Equal(t, ErrorRate, ClassifyError(err))
}
