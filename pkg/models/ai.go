// Package models contains shared data models used across the FabAssist codebase.
package models

import (
	"context"
	"errors"
)

// Completer is the core interface every LLM integration must implement.
// Never call a specific provider directly — always inject this interface.
type Completer interface {
	// Complete sends one prompt request and returns the raw model text.
	// One call per request is the full contract: no retries, no caching.
	Complete(ctx context.Context, req PromptRequest) (string, error)
	// Name returns the provider identifier (e.g., "anthropic", "mock").
	Name() string
}

// Typed completion failures. Providers wrap their own errors into these so
// nothing crosses the orchestrator boundary untyped.
var (
	ErrProviderUnavailable = errors.New("llm provider unavailable")
	ErrInferenceTimeout    = errors.New("llm inference timeout")
	ErrInvalidResponse     = errors.New("llm provider returned invalid response")
)

// AnalysisMode selects which orchestration path a request follows.
type AnalysisMode string

const (
	ModeOperations  AnalysisMode = "operations"
	ModeInterpreter AnalysisMode = "interpreter"
	ModeIdentifier  AnalysisMode = "identifier"
	ModeQuality     AnalysisMode = "quality"
	ModePredictive  AnalysisMode = "predictive"
)

// PromptRequest is the fully assembled input to a Completer. Built by the
// prompt package; carries no connection or credential state.
type PromptRequest struct {
	Mode      AnalysisMode
	System    string
	User      string
	Image     *ImagePayload
	MaxTokens int
}

// ImagePayload is an image encoded for transmission to the model.
type ImagePayload struct {
	MediaType  string
	Base64Data string
}
