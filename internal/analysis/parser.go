package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"grantflow/internal/models"
	"grantflow/internal/util"
)

// ParseAnalysis decodes a model reply into the six-field record.
// Missing or null fields become "". Lists are joined with "; " and other values keep their JSON form.
func ParseAnalysis(raw string) (models.AIAnalysis, error) {
	raw = stripCodeFence(strings.TrimSpace(raw))
	if raw == "" {
		return models.AIAnalysis{}, fmt.Errorf("empty reply: %w", util.ErrUnparseableAnalysis)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.AIAnalysis{}, fmt.Errorf("%v: %w", err, util.ErrUnparseableAnalysis)
	}
	if payload == nil {
		return models.AIAnalysis{}, fmt.Errorf("null reply: %w", util.ErrUnparseableAnalysis)
	}
	return models.AIAnalysis{
		Eligibility:      fieldText(payload["eligibility"]),
		Completeness:     fieldText(payload["completeness"]),
		RiskFactors:      fieldText(payload["risk_factors"]),
		Recommendations:  fieldText(payload["recommendations"]),
		BudgetValidation: fieldText(payload["budget_validation"]),
		ImpactAssessment: fieldText(payload["impact_assessment"]),
	}, nil
}

func fieldText(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		return strings.Join(list, "; ")
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, v); err == nil {
		return compact.String()
	}
	return string(v)
}

func stripCodeFence(s string) string {
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```JSON")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
