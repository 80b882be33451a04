package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelcoach/internal/config"
)

func getHealth(handler *HealthHandler, path string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handler.HandleHealthz)
	mux.HandleFunc("/health", handler.HandleHealth)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := func() time.Time { return now }

	t.Run("OKWhenBothCredentialsPresent", func(t *testing.T) {
		handler := NewHealthHandler(&config.Config{ApifyToken: "t", OpenAIAPIKey: "k"}, clock)
		rec := getHealth(handler, "/healthz")

		require.Equal(t, http.StatusOK, rec.Code)
		var body healthzBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body.Status)
		assert.True(t, body.Apify)
		assert.True(t, body.OpenAI)
		assert.Equal(t, now.UnixMilli(), body.TS)
	})

	t.Run("ConfigMissingWhenEitherCredentialAbsent", func(t *testing.T) {
		for name, cfg := range map[string]*config.Config{
			"NoApify":  {OpenAIAPIKey: "k"},
			"NoOpenAI": {ApifyToken: "t"},
			"Neither":  {},
		} {
			t.Run(name, func(t *testing.T) {
				handler := NewHealthHandler(cfg, clock)
				rec := getHealth(handler, "/healthz")

				require.Equal(t, http.StatusInternalServerError, rec.Code)
				var body healthzBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "config-missing", body.Status)
			})
		}
	})
}

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(&config.Config{}, nil)
	rec := getHealth(handler, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
