package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const groqChatURL = "https://api.groq.com/openai/v1/chat/completions"

// GroqProvider supports LLM generation via Groq's OpenAI-compatible API.
type GroqProvider struct {
	keyName string
	apiKey  string
	model   string
	url     string
	client  *http.Client
}

func NewGroqProvider(keyName, model string) *GroqProvider {
	if strings.TrimSpace(model) == "" {
		model = "llama-3.1-8b-instant"
	}
	return &GroqProvider{
		keyName: keyName,
		apiKey:  resolveKey("groq", keyName, "GROQ_API_KEY"),
		model:   model,
		url:     groqChatURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *GroqProvider) info() ProviderInfo {
	return ProviderInfo{Name: "groq", Model: g.model, Key: g.keyName}
}

func (g *GroqProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	if g.apiKey == "" {
		return GenerateResponse{}, g.info(), fmt.Errorf("groq alias %q: %w", g.keyName, ErrMissingKey)
	}
	text, err := chatCompletion(ctx, g.client, g.url, g.apiKey, g.model, req)
	if err != nil {
		return GenerateResponse{}, g.info(), fmt.Errorf("groq generate: %w", err)
	}
	return GenerateResponse{Text: text}, g.info(), nil
}
