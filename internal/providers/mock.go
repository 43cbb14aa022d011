package providers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// MockProvider returns a deterministic six-field assessment. Keywords in the prompt steer it:
// "ineligible", "incomplete" and "high risk" flip the matching field.
type MockProvider struct {
	// Raw, when set, is returned verbatim instead of the generated assessment.
	Raw string
	// Err, when set, fails every call.
	Err error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	info := ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}
	if err := ctx.Err(); err != nil {
		return GenerateResponse{}, info, err
	}
	if m.Err != nil {
		return GenerateResponse{}, info, m.Err
	}
	if m.Raw != "" {
		return GenerateResponse{Text: m.Raw}, info, nil
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return GenerateResponse{}, info, errors.New("mock: empty prompt")
	}

	text := strings.ToLower(applicationSection(req.Prompt))
	out := map[string]string{
		"eligibility":       "Eligible - Meets council criteria",
		"completeness":      "Complete - Required sections present",
		"risk_factors":      "Low risk - Clear plan and modest budget",
		"recommendations":   "Approve with standard monitoring",
		"budget_validation": "Budget is reasonable",
		"impact_assessment": "Good community impact potential",
	}
	if strings.Contains(text, "ineligible") {
		out["eligibility"] = "Ineligible - Outside council mandate"
		out["recommendations"] = "Reject - Does not meet eligibility criteria"
	}
	if strings.Contains(text, "incomplete") {
		out["completeness"] = "Incomplete - Missing budget details"
		out["recommendations"] = "Request more info"
	}
	if strings.Contains(text, "high risk") {
		out["risk_factors"] = "High risk - Unproven delivery capacity"
	}
	b, _ := json.Marshal(out)
	return GenerateResponse{Text: string(b)}, info, nil
}

// applicationSection keeps the mock from reacting to keywords in the instruction template.
func applicationSection(prompt string) string {
	const marker = "Application text:"
	if i := strings.Index(prompt, marker); i >= 0 {
		rest := prompt[i+len(marker):]
		if j := strings.Index(rest, "Provide response in JSON format"); j >= 0 {
			return rest[:j]
		}
		return rest
	}
	return prompt
}
