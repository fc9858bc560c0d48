package normalize

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/astrasemi/fabassist/pkg/models"
)

// JSON extraction from model text: prefer a fenced code block, then fall
// back to the first {...} span.
var (
	reFencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	reBareObject = regexp.MustCompile(`(?s)\{.*\}`)
)

// partialInsight distinguishes absent fields (nil) from present-but-empty
// ones, so defaults only fill what the model actually omitted.
type partialInsight struct {
	RiskLevel           *string  `json:"riskLevel"`
	RiskInterpretation  *string  `json:"riskInterpretation"`
	KeyPoints           []string `json:"keyPoints"`
	Actions             []string `json:"actions"`
	ClarifyingQuestions []string `json:"clarifyingQuestions"`
}

// fieldDefaults fill individual fields the model omitted from an otherwise
// parsable response.
func fieldDefaults() models.QualityInsight {
	return models.QualityInsight{
		RiskLevel:          models.RiskMedium,
		RiskInterpretation: "The observation requires attention and follow-up.",
		KeyPoints: []string{
			"Review the observation details",
			"Consult with supervisor if needed",
		},
		Actions: []string{
			"Document the observation",
			"Follow standard procedures",
			"Report if necessary",
		},
		ClarifyingQuestions: []string{},
		Disclaimer:          models.Disclaimer,
	}
}

// ParseFailureInsight is the full replacement used when no JSON could be
// extracted from the model output at all.
func ParseFailureInsight() models.QualityInsight {
	return models.QualityInsight{
		RiskLevel:          models.RiskMedium,
		RiskInterpretation: "The observation has been noted and requires standard follow-up procedures.",
		KeyPoints: []string{
			"Document the observation clearly",
			"Follow standard operating procedures",
			"Report to supervisor if needed",
		},
		Actions: []string{
			"Review observation details",
			"Check standard procedures",
			"Consult with team if uncertain",
		},
		ClarifyingQuestions: []string{
			"When did this observation occur?",
			"Has this been observed before?",
		},
		Disclaimer: models.Disclaimer,
	}
}

// UnavailableInsight is the safe success-shaped output when the provider
// call itself failed after validation.
func UnavailableInsight() models.QualityInsight {
	return models.QualityInsight{
		RiskLevel:          models.RiskMedium,
		RiskInterpretation: "Unable to process observation at this time. Please consult with your supervisor.",
		KeyPoints: []string{
			"Document the observation",
			"Follow standard procedures",
			"Report to supervisor",
		},
		Actions: []string{
			"Review standard operating procedures",
			"Consult with team members",
			"Escalate if needed",
		},
		ClarifyingQuestions: []string{},
		Disclaimer:          models.Disclaimer,
	}
}

// ParseInsight repairs raw model text into a QualityInsight. Partial output
// is healed with field defaults; unparsable output degrades to
// ParseFailureInsight. The disclaimer is always overwritten with the
// canonical sentence. Never fails.
func ParseInsight(raw string) models.QualityInsight {
	partial, ok := extractInsight(raw)
	if !ok {
		slog.Warn("quality insight parse failed, using fallback response")
		return ParseFailureInsight()
	}

	insight := fieldDefaults()
	if partial.RiskLevel != nil {
		insight.RiskLevel = normalizeRiskLevel(*partial.RiskLevel)
	}
	if partial.RiskInterpretation != nil {
		insight.RiskInterpretation = *partial.RiskInterpretation
	}
	if partial.KeyPoints != nil {
		insight.KeyPoints = partial.KeyPoints
	}
	if partial.Actions != nil {
		insight.Actions = partial.Actions
	}
	if partial.ClarifyingQuestions != nil {
		insight.ClarifyingQuestions = partial.ClarifyingQuestions
	}
	insight.Disclaimer = models.Disclaimer
	return insight
}

func extractInsight(raw string) (partialInsight, bool) {
	var partial partialInsight

	if m := reFencedJSON.FindStringSubmatch(raw); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &partial); err == nil {
			return partial, true
		}
	}
	if m := reBareObject.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), &partial); err == nil {
			return partial, true
		}
	}
	return partialInsight{}, false
}

func normalizeRiskLevel(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case models.RiskLow:
		return models.RiskLow
	case models.RiskHigh:
		return models.RiskHigh
	case models.RiskMedium:
		return models.RiskMedium
	default:
		return models.RiskMedium
	}
}
