package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/astrasemi/fabassist/internal/api/response"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Interpreter is the service interface for the interpret endpoint.
type Interpreter interface {
	Interpret(ctx context.Context, text string, mode models.InterpretMode) (models.AnalysisResult, error)
}

// NewInterpretHandler returns the handler for POST /api/interpret.
func NewInterpretHandler(svc Interpreter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
			Mode string `json:"mode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
			return
		}

		// Omitted mode means summary; an unknown value is rejected, never
		// silently defaulted.
		mode := models.InterpretSummary
		if req.Mode != "" {
			var err error
			mode, err = models.ParseInterpretMode(req.Mode)
			if err != nil {
				response.Error(w, http.StatusBadRequest, "INVALID_MODE", err.Error())
				return
			}
		}

		result, err := svc.Interpret(r.Context(), req.Text, mode)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		response.JSON(w, analysisResponse{
			Analysis:     result.PlainText,
			AnalysisHTML: result.RenderedMarkup,
		})
	}
}

type analysisResponse struct {
	Analysis     string `json:"analysis"`
	AnalysisHTML string `json:"analysis_html"`
}
