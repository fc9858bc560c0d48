// Package prompt assembles mode-specific LLM requests. Builders are pure:
// they never touch the network or any mutable state.
package prompt

import (
	"fmt"
	"strings"

	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/astrasemi/fabassist/pkg/tabular"
)

// How many CSV rows of shipment data go into the prompt.
const shipmentSampleRows = 10

// Token budgets for the bounded modes.
const (
	identifyMaxTokens = 500
	qualityMaxTokens  = 500
	defaultMaxTokens  = 1024
)

const operationsSystem = "You are an AstraSemi Ops Expert."

const interpreterSystem = "Simplify this semiconductor log for a trainee. Use simple words and highlight risks."

const identifierSystem = "You explain semiconductor equipment and materials to new employees in plain language."

const predictiveSystem = "You are a semiconductor equipment reliability expert advising a new employee."

const qualitySystem = `You are a helpful quality assistant for semiconductor manufacturing.
Your role is to provide beginner-friendly insights about quality observations.

IMPORTANT RULES:
- Be beginner-friendly and use simple language
- Do NOT provide technical diagnosis or defect prediction
- Use words like "may", "might", "could" - never claim certainty
- Provide practical, actionable next steps
- Keep responses short and scannable
- Always include the exact disclaimer: "` + models.Disclaimer + `"

Output ONLY valid JSON matching this exact structure:
{
  "riskLevel": "LOW|MEDIUM|HIGH",
  "riskInterpretation": "1-2 sentences explaining the observation in simple terms",
  "keyPoints": ["bullet point 1", "bullet point 2", "bullet point 3"],
  "actions": ["action 1", "action 2", "action 3"],
  "clarifyingQuestions": ["question 1", "question 2"] or [],
  "disclaimer": "` + models.Disclaimer + `"
}`

// Operations builds the shipment-analysis request from an uploaded table.
func Operations(table *tabular.Table) models.PromptRequest {
	user := fmt.Sprintf(
		"Analyze this semiconductor shipment data:\n%s\nProvide: 1. Main Points, 2. Unusual findings/Anomalies, 3. Top 3 Priorities for a new employee.",
		table.RenderHead(shipmentSampleRows),
	)
	return models.PromptRequest{
		Mode:      models.ModeOperations,
		System:    operationsSystem,
		User:      user,
		MaxTokens: defaultMaxTokens,
	}
}

// Interpret builds the log-interpretation request in the requested style.
func Interpret(text string, mode models.InterpretMode) models.PromptRequest {
	var style string
	switch mode {
	case models.InterpretEmail:
		style = "Rewrite the interpretation as a short, polite email to a colleague."
	case models.InterpretManager:
		style = "Rewrite the interpretation as a brief status update for a manager, leading with impact."
	default:
		style = "Summarize the interpretation as short bullet points."
	}

	return models.PromptRequest{
		Mode:      models.ModeInterpreter,
		System:    interpreterSystem + " " + style,
		User:      text,
		MaxTokens: defaultMaxTokens,
	}
}

// Identify builds the image-identification request. The image is already
// encoded for transmission; the builder only attaches it.
func Identify(image models.ImagePayload) models.PromptRequest {
	return models.PromptRequest{
		Mode:      models.ModeIdentifier,
		System:    identifierSystem,
		User:      "Identify this semiconductor part or wafer. List any visible defects or important features for a new employee.",
		Image:     &image,
		MaxTokens: identifyMaxTokens,
	}
}

// Quality builds the strict-JSON quality-insight request.
func Quality(observation, context string) models.PromptRequest {
	user := fmt.Sprintf(
		"Context: %s\n\nObservation: %s\n\nTask: Analyze this observation and provide a structured quality insight. \nReturn ONLY the JSON object with no additional text.",
		context, observation,
	)
	return models.PromptRequest{
		Mode:      models.ModeQuality,
		System:    qualitySystem,
		User:      user,
		MaxTokens: qualityMaxTokens,
	}
}

// Predictive builds the maintenance-advice request for one scored machine.
func Predictive(m models.MachineHealth) models.PromptRequest {
	var b strings.Builder
	fmt.Fprintf(&b, "Machine %s current readings:\n", m.Reading.MachineID)
	fmt.Fprintf(&b, "- Runtime hours: %.0f\n", m.Reading.RuntimeHours)
	fmt.Fprintf(&b, "- Days since last maintenance: %.0f\n", m.Reading.LastMaintenanceDays)
	fmt.Fprintf(&b, "- Temperature: %.1f C\n", m.Reading.Temperature)
	fmt.Fprintf(&b, "- Vibration: %.1f mm/s\n", m.Reading.Vibration)
	fmt.Fprintf(&b, "- Error codes (%d): %s\n", m.Reading.ErrorCount(), strings.Join(m.Reading.ErrorCodes, ", "))
	fmt.Fprintf(&b, "\nComputed assessment:\n")
	fmt.Fprintf(&b, "- Failure probability: %.3f\n", m.Assessment.FailureProbability)
	fmt.Fprintf(&b, "- Health score: %.1f\n", m.Assessment.HealthScore)
	fmt.Fprintf(&b, "- Recommended maintenance in %d days (%s)\n",
		m.Assessment.DaysToMaintenance,
		m.Assessment.RecommendedMaintenanceDate.Format("2006-01-02"))
	b.WriteString("\nExplain the machine's condition for a new employee and recommend concrete next steps.")

	return models.PromptRequest{
		Mode:      models.ModePredictive,
		System:    predictiveSystem,
		User:      b.String(),
		MaxTokens: defaultMaxTokens,
	}
}
