package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/astrasemi/fabassist/internal/api/response"
	"github.com/astrasemi/fabassist/internal/service"
)

const maxUploadMemory = 10 << 20

// ShipmentAnalyzer is the service interface for the operations endpoint.
type ShipmentAnalyzer interface {
	AnalyzeShipments(ctx context.Context, filename string, csv io.Reader) (*service.ShipmentReport, error)
}

// NewOperationsHandler returns the handler for POST /operations.
func NewOperationsHandler(svc ShipmentAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", "Request must be multipart form data with a csv_file field")
			return
		}

		file, header, err := r.FormFile("csv_file")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", "csv_file is required")
			return
		}
		defer file.Close()

		report, err := svc.AnalyzeShipments(r.Context(), header.Filename, file)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		response.JSON(w, shipmentResponse{
			Shipments:    report.Shipments,
			Analysis:     report.Analysis.PlainText,
			AnalysisHTML: report.Analysis.RenderedMarkup,
		})
	}
}

type shipmentResponse struct {
	Shipments    []map[string]string `json:"shipments"`
	Analysis     string              `json:"analysis"`
	AnalysisHTML string              `json:"analysis_html"`
}

// writeServiceError maps service errors to HTTP responses. Validation
// failures are client errors; anything else is an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFile),
		errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, service.ErrImageTooLarge):
		response.Error(w, http.StatusBadRequest, "INVALID_FILE", err.Error())
	case errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrObservationLength):
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, service.ErrUnknownMachine):
		response.Error(w, http.StatusNotFound, "MACHINE_NOT_FOUND", err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
