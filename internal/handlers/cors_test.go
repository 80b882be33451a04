package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func preflight(s *testPipelineSuite, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/audit", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	t.Run("PreflightAllowedOrigin", func(t *testing.T) {
		s := setupTestPipelineSuite(t)
		rec := preflight(s, testOrigin)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("PreflightForeignOriginGetsNoAllowOrigin", func(t *testing.T) {
		s := setupTestPipelineSuite(t)
		rec := preflight(s, "https://evil.example")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("PreflightWithoutOrigin", func(t *testing.T) {
		s := setupTestPipelineSuite(t)
		rec := preflight(s, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ErrorResponsesCarryCORSHeaders", func(t *testing.T) {
		s := setupTestPipelineSuite(t)
		rec := s.postAudit(`{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})
}
