package analysis

import (
	"fmt"
	"strings"
)

const (
	// MaxInputChars bounds how much application text reaches the model.
	MaxInputChars = 2000
	Temperature   = 0.3
	MaxTokens     = 500
)

const systemPrompt = "You are a grant program officer. Reply with a single JSON object and nothing else."

const promptTemplate = `Analyze this grant application for %s. Provide a structured analysis including:

1. Eligibility Assessment (Eligible/Ineligible with reasoning)
2. Completeness Check (Complete/Incomplete with missing items)
3. Risk Assessment (Low/Medium/High risk with factors)
4. Budget Validation (Reasonable/Needs justification)
5. Impact Assessment (Community impact potential)
6. Recommendations (Approve/Request more info/Reject with reasoning)

Application text:
%s

Provide response in JSON format:
{
  "eligibility": "assessment with reasoning",
  "completeness": "check with missing items",
  "risk_factors": "risk assessment with factors",
  "recommendations": "recommendation with reasoning",
  "budget_validation": "budget assessment",
  "impact_assessment": "community impact assessment"
}`

// BuildPrompt embeds already-clipped application text into the instruction template.
func BuildPrompt(council, text string) string {
	council = strings.TrimSpace(council)
	if council == "" {
		council = "Toronto Arts Council"
	}
	return fmt.Sprintf(promptTemplate, council, text)
}
