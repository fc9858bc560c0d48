package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/astrasemi/fabassist/internal/api/response"
	"github.com/astrasemi/fabassist/pkg/models"
)

// InsightGenerator is the service interface for the quality-insight
// endpoint.
type InsightGenerator interface {
	QualityInsight(ctx context.Context, observation, contextNote string) (models.QualityInsight, error)
}

// NewQualityInsightHandler returns the handler for POST /api/quality-insight.
func NewQualityInsightHandler(svc InsightGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ObservationText string `json:"observationText"`
			Context         string `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
			return
		}
		if req.ObservationText == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "observationText is required")
			return
		}

		insight, err := svc.QualityInsight(r.Context(), req.ObservationText, req.Context)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		response.JSON(w, insight)
	}
}
