// Package mock provides the deterministic completer used when no live LLM
// credential is configured. Its raw text flows through the same normalizer
// as live output, so both paths produce structurally identical results.
package mock

import (
	"context"
	"fmt"

	"github.com/astrasemi/fabassist/pkg/models"
)

const operationsText = "### MOCK ANALYSIS\n" +
	"- **Main:** 10 active shipments.\n" +
	"- **Unusual:** SHP002 is delayed.\n" +
	"- **Top 3:** 1. Check Austin log, 2. Confirm yield, 3. Update status."

const interpreterTextFmt = "MOCK: '%s' interpreted as 'Normal operating procedure. No risks detected.'"

const identifierText = "MOCK: Image identified as a 'Silicon Wafer (Type-P)'. Surface looks clear."

const predictiveText = "### MOCK RELIABILITY REVIEW\n" +
	"- Readings are consistent with the computed health score.\n" +
	"- Schedule maintenance on the recommended date.\n" +
	"- Re-check vibration after the next production run."

// qualityJSON is returned as a fenced block so the mock path exercises the
// same extraction the live path uses.
const qualityJSON = "```json\n" + `{
  "riskLevel": "LOW",
  "riskInterpretation": "The observation appears routine. Continue monitoring and follow standard procedures.",
  "keyPoints": [
    "Observation has been noted",
    "No immediate action required",
    "Continue standard monitoring"
  ],
  "actions": [
    "Document the observation",
    "Continue normal operations",
    "Report any changes"
  ],
  "clarifyingQuestions": [
    "Is this a recurring observation?",
    "Are there any patterns to note?"
  ],
  "disclaimer": "` + models.Disclaimer + `"
}` + "\n```"

// Completer returns fixed per-mode payloads; only the interpreter reply
// echoes the submitted text. It never fails and never blocks.
type Completer struct{}

func NewCompleter() *Completer { return &Completer{} }

func (c *Completer) Name() string { return "mock" }

func (c *Completer) Complete(_ context.Context, req models.PromptRequest) (string, error) {
	switch req.Mode {
	case models.ModeOperations:
		return operationsText, nil
	case models.ModeInterpreter:
		return fmt.Sprintf(interpreterTextFmt, req.User), nil
	case models.ModeIdentifier:
		return identifierText, nil
	case models.ModeQuality:
		return qualityJSON, nil
	case models.ModePredictive:
		return predictiveText, nil
	default:
		return "MOCK: No analysis available for this request.", nil
	}
}

var _ models.Completer = (*Completer)(nil)
