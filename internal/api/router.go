package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/astrasemi/fabassist/internal/api/middleware"
	"github.com/astrasemi/fabassist/internal/api/response"
)

// Dependencies holds all handler dependencies for the router.
type Dependencies struct {
	HealthHandler             http.HandlerFunc
	OperationsHandler         http.HandlerFunc
	InterpretHandler          http.HandlerFunc
	IdentifyHandler           http.HandlerFunc
	PredictiveDataHandler     http.HandlerFunc
	PredictiveAnalysisHandler http.HandlerFunc
	QualityInsightHandler     http.HandlerFunc
}

// NewRouter builds the chi router with the middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/health", orNotImplemented(deps.HealthHandler))

	r.Post("/operations", orNotImplemented(deps.OperationsHandler))
	r.Post("/api/interpret", orNotImplemented(deps.InterpretHandler))
	r.Post("/api/identify", orNotImplemented(deps.IdentifyHandler))
	r.Post("/api/predictive-data", orNotImplemented(deps.PredictiveDataHandler))
	r.Post("/api/predictive-analysis", orNotImplemented(deps.PredictiveAnalysisHandler))
	r.Post("/api/quality-insight", orNotImplemented(deps.QualityInsightHandler))

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented")
	}
}
