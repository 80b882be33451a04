package handlers

import (
	"net/http"
	"time"

	"reelcoach/internal/config"
)

// HealthHandler exposes the two liveness probes.
type HealthHandler struct {
	cfg *config.Config
	now func() time.Time
}

// NewHealthHandler builds the probe handlers. A nil now func defaults to
// time.Now.
func NewHealthHandler(cfg *config.Config, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{cfg: cfg, now: now}
}

type healthzBody struct {
	Status string `json:"status"`
	Apify  bool   `json:"apify"`
	OpenAI bool   `json:"openai"`
	TS     int64  `json:"ts"`
}

// HandleHealthz reports readiness: ok only when both vendor credentials are
// configured, config-missing (500) otherwise.
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	body := healthzBody{
		Apify:  h.cfg.ApifyToken != "",
		OpenAI: h.cfg.OpenAIAPIKey != "",
		TS:     h.now().UnixMilli(),
	}
	if h.cfg.ConfigOK() {
		body.Status = "ok"
		writeJSON(w, http.StatusOK, body)
		return
	}
	body.Status = "config-missing"
	writeJSON(w, http.StatusInternalServerError, body)
}

// HandleHealth is the unconditional liveness probe.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
