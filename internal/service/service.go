// Package service orchestrates the per-mode analysis pipelines: validate
// input, score where applicable, build the prompt, complete against the
// configured LLM (live or mock), and normalize the output.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/astrasemi/fabassist/internal/normalize"
	"github.com/astrasemi/fabassist/internal/risk"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Validation failures. These short-circuit before any LLM call and map to
// client errors at the HTTP boundary.
var (
	ErrMissingFile       = errors.New("file is required")
	ErrInvalidFileType   = errors.New("unsupported file type")
	ErrEmptyText         = errors.New("text is required")
	ErrObservationLength = errors.New("observationText must be between 20 and 1000 characters")
	ErrImageTooLarge     = errors.New("image exceeds the size limit")
	ErrUnknownMachine    = errors.New("unknown machine id")
)

// Completion failures after validation degrade to this warning-prefixed
// text instead of failing the request.
const unavailableNotice = "⚠️ Analysis is temporarily unavailable. Please try again in a moment."

// AnalysisService wires the orchestration pipeline. All dependencies are
// explicit; there is no ambient global state.
type AnalysisService struct {
	completer models.Completer
	scorer    *risk.Scorer
	timeout   time.Duration
}

// New creates an AnalysisService. The timeout bounds every completer call.
func New(completer models.Completer, scorer *risk.Scorer, timeout time.Duration) *AnalysisService {
	return &AnalysisService{
		completer: completer,
		scorer:    scorer,
		timeout:   timeout,
	}
}

// Provider returns the name of the configured completer.
func (s *AnalysisService) Provider() string { return s.completer.Name() }

// complete runs one bounded completion and renders the result. Completer
// failures degrade to a warning-flavored result; by this point the input
// has already validated, so the request still succeeds.
func (s *AnalysisService) complete(ctx context.Context, req models.PromptRequest) models.AnalysisResult {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completer.Complete(cctx, req)
	if err != nil {
		slog.Warn("llm completion failed",
			"mode", req.Mode,
			"provider", s.completer.Name(),
			"error", err,
		)
		return models.AnalysisResult{
			PlainText:      unavailableNotice,
			RenderedMarkup: normalize.RenderMarkdown(unavailableNotice),
		}
	}

	return models.AnalysisResult{
		PlainText:      raw,
		RenderedMarkup: normalize.RenderMarkdown(raw),
	}
}
