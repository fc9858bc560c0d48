package service

import (
	"context"
	"strings"

	"github.com/astrasemi/fabassist/internal/prompt"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Interpret simplifies a raw log snippet for a trainee in the requested
// style. The mode is already typed; unknown styles are rejected before this
// point.
func (s *AnalysisService) Interpret(ctx context.Context, text string, mode models.InterpretMode) (models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.AnalysisResult{}, ErrEmptyText
	}
	return s.complete(ctx, prompt.Interpret(text, mode)), nil
}
