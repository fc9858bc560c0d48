// Package handler contains one HTTP handler per endpoint. Handlers depend
// on narrow service interfaces so they can be tested against stubs.
package handler

import (
	"net/http"

	"github.com/astrasemi/fabassist/internal/api/response"
)

// NewHealthHandler returns the handler for GET /api/health.
func NewHealthHandler(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, map[string]string{
			"status":   "ok",
			"provider": provider,
		})
	}
}
