package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider calls the OpenAI chat completions REST API.
type OpenAIProvider struct {
	keyName string
	apiKey  string
	model   string
	url     string
	client  *http.Client
}

func NewOpenAIProvider(keyName, model string) *OpenAIProvider {
	if strings.TrimSpace(model) == "" {
		model = "gpt-4"
	}
	return &OpenAIProvider{
		keyName: keyName,
		apiKey:  resolveKey("openai", keyName, "OPENAI_API_KEY"),
		model:   model,
		url:     openAIChatURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *OpenAIProvider) info() ProviderInfo {
	return ProviderInfo{Name: "openai", Model: o.model, Key: o.keyName}
}

func (o *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	if o.apiKey == "" {
		return GenerateResponse{}, o.info(), fmt.Errorf("openai alias %q: %w", o.keyName, ErrMissingKey)
	}
	text, err := chatCompletion(ctx, o.client, o.url, o.apiKey, o.model, req)
	if err != nil {
		return GenerateResponse{}, o.info(), fmt.Errorf("openai generate: %w", err)
	}
	return GenerateResponse{Text: text}, o.info(), nil
}
