package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/astrasemi/fabassist/internal/api/response"
	"github.com/astrasemi/fabassist/internal/service"
	"github.com/astrasemi/fabassist/pkg/models"
)

// Identifier is the service interface for the identify endpoint.
type Identifier interface {
	Identify(ctx context.Context, filename string, image []byte) (models.AnalysisResult, error)
}

// NewIdentifyHandler returns the handler for POST /api/identify.
func NewIdentifyHandler(svc Identifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", "Request must be multipart form data with an image field")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", "image is required")
			return
		}
		defer file.Close()

		// Read one byte past the limit so the service can reject oversized
		// uploads without the handler buffering arbitrary input.
		image, err := io.ReadAll(io.LimitReader(file, service.MaxImageBytes+1))
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", "could not read image upload")
			return
		}

		result, err := svc.Identify(r.Context(), header.Filename, image)
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
