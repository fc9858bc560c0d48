package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/astrasemi/fabassist/internal/api/handler"
	"github.com/astrasemi/fabassist/internal/service"
	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- stub service ---

type stubInsightGenerator struct {
	fn func(ctx context.Context, observation, contextNote string) (models.QualityInsight, error)
}

func (s *stubInsightGenerator) QualityInsight(ctx context.Context, observation, contextNote string) (models.QualityInsight, error) {
	return s.fn(ctx, observation, contextNote)
}

func lowRiskInsight() models.QualityInsight {
	return models.QualityInsight{
		RiskLevel:           models.RiskLow,
		RiskInterpretation:  "Routine observation.",
		KeyPoints:           []string{"Noted"},
		Actions:             []string{"Document"},
		ClarifyingQuestions: []string{},
		Disclaimer:          models.Disclaimer,
	}
}

// --- helpers ---

func jsonReq(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Data
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Error.Code
}

// --- tests ---

func TestQualityInsightHandler_Success(t *testing.T) {
	h := handler.NewQualityInsightHandler(&stubInsightGenerator{
		fn: func(_ context.Context, observation, contextNote string) (models.QualityInsight, error) {
			assert.Equal(t, "Small haze ring observed near wafer edge.", observation)
			assert.Equal(t, "Wet bench", contextNote)
			return lowRiskInsight(), nil
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, "/api/quality-insight", map[string]string{
		"observationText": "Small haze ring observed near wafer edge.",
		"context":         "Wet bench",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "LOW", data["riskLevel"])
	assert.Equal(t, models.Disclaimer, data["disclaimer"])
}

func TestQualityInsightHandler_MissingObservation(t *testing.T) {
	h := handler.NewQualityInsightHandler(&stubInsightGenerator{
		fn: func(context.Context, string, string) (models.QualityInsight, error) {
			t.Fatal("service must not be called for missing observation")
			return models.QualityInsight{}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, "/api/quality-insight", map[string]string{"context": "x"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeErrorCode(t, rec))
}

func TestQualityInsightHandler_LengthValidationMapsTo400(t *testing.T) {
	h := handler.NewQualityInsightHandler(&stubInsightGenerator{
		fn: func(context.Context, string, string) (models.QualityInsight, error) {
			return models.QualityInsight{}, service.ErrObservationLength
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, "/api/quality-insight", map[string]string{"observationText": strings.Repeat("a", 19)}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeErrorCode(t, rec))
}

func TestQualityInsightHandler_InvalidJSON(t *testing.T) {
	h := handler.NewQualityInsightHandler(&stubInsightGenerator{
		fn: func(context.Context, string, string) (models.QualityInsight, error) {
			return lowRiskInsight(), nil
		},
	})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/quality-insight", strings.NewReader("{nope"))
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
