package providers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockProviderKeywords(t *testing.T) {
	prompt := "Eligibility Assessment (Eligible/Ineligible)\nApplication text:\nThe budget is incomplete.\nProvide response in JSON format:"
	resp, info, err := NewMockProvider().Generate(context.Background(), GenerateRequest{Prompt: prompt})
	require.NoError(t, err)
	require.Equal(t, "mock", info.Name)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &out))
	require.Len(t, out, 6)
	require.Equal(t, "Eligible - Meets council criteria", out["eligibility"])
	require.Contains(t, out["completeness"], "Incomplete")
}

func TestMockProviderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewMockProvider().Generate(ctx, GenerateRequest{Prompt: "x"})
	require.ErrorIs(t, err, context.Canceled)
}
