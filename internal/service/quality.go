package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/astrasemi/fabassist/internal/normalize"
	"github.com/astrasemi/fabassist/internal/prompt"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Observation length bounds, in characters.
const (
	minObservationChars = 20
	maxObservationChars = 1000
)

const defaultObservationContext = "General process note"

// QualityInsight generates a structured quality risk insight for an
// observation. Validation failures are errors; completion and parse
// failures after validation degrade to documented safe payloads, so the
// response is always schema-complete with the canonical disclaimer.
func (s *AnalysisService) QualityInsight(ctx context.Context, observation, contextNote string) (models.QualityInsight, error) {
	observation = strings.TrimSpace(observation)
	contextNote = strings.TrimSpace(contextNote)
	if contextNote == "" {
		contextNote = defaultObservationContext
	}

	if n := utf8.RuneCountInString(observation); n < minObservationChars || n > maxObservationChars {
		return models.QualityInsight{}, fmt.Errorf("%w: got %d", ErrObservationLength, n)
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.completer.Complete(cctx, prompt.Quality(observation, contextNote))
	if err != nil {
		slog.Warn("quality insight completion failed",
			"provider", s.completer.Name(),
			"error", err,
		)
		return normalize.UnavailableInsight(), nil
	}

	return normalize.ParseInsight(raw), nil
}
