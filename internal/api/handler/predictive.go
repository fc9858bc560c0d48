package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/astrasemi/fabassist/internal/api/response"
	"github.com/astrasemi/fabassist/internal/service"
	"github.com/astrasemi/fabassist/pkg/models"
)

// FleetScorer is the service interface for the predictive-data endpoint.
type FleetScorer interface {
	PredictiveData(ctx context.Context, csv io.Reader) (*service.FleetReport, error)
}

// MachineAdvisor is the service interface for the predictive-analysis
// endpoint.
type MachineAdvisor interface {
	PredictiveAnalysis(ctx context.Context, machineID string) (*service.MachineReport, error)
}

// NewPredictiveDataHandler returns the handler for POST /api/predictive-data.
// The equipment CSV upload is optional: without one, the built-in synthetic
// fleet is scored.
func NewPredictiveDataHandler(svc FleetScorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var csv io.Reader
		if err := r.ParseMultipartForm(maxUploadMemory); err == nil {
			if file, _, ferr := r.FormFile("csv_file"); ferr == nil {
				defer file.Close()
				csv = file
			} else if !errors.Is(ferr, http.ErrMissingFile) {
				response.Error(w, http.StatusBadRequest, "INVALID_FILE", "could not read csv_file upload")
				return
			}
		}

		report, err := svc.PredictiveData(r.Context(), csv)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		response.JSON(w, report)
	}
}

// NewPredictiveAnalysisHandler returns the handler for
// POST /api/predictive-analysis.
func NewPredictiveAnalysisHandler(svc MachineAdvisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			MachineID string `json:"machine_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
			return
		}
		if strings.TrimSpace(req.MachineID) == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "machine_id is required")
			return
		}

		report, err := svc.PredictiveAnalysis(r.Context(), strings.TrimSpace(req.MachineID))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		response.JSON(w, machineResponse{
			Analysis:     report.Analysis.PlainText,
			AnalysisHTML: report.Analysis.RenderedMarkup,
			Machine:      report.Machine,
		})
	}
}

type machineResponse struct {
	Analysis     string               `json:"analysis"`
	AnalysisHTML string               `json:"analysis_html"`
	Machine      models.MachineHealth `json:"machine"`
}
