package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	sentry "github.com/getsentry/sentry-go"

	"reelcoach/internal/audit"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}

// writeRaw sends an already-marshaled JSON payload (cached responses).
func writeRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// statusForError maps pipeline errors to HTTP statuses. Anything not in the
// taxonomy is an upstream or internal failure and surfaces as 500 with its
// raw message.
func statusForError(err error) int {
	switch {
	case errors.Is(err, audit.ErrNoPosts), errors.Is(err, audit.ErrNoRecentPost):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// failRequest converts a pipeline error into the JSON error body. Server
// faults are logged and reported to Sentry; client-visible misses are not.
func failRequest(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("audit pipeline: %v", err)
		sentry.CaptureException(err)
	}
	writeError(w, status, err.Error())
}

// clientID extracts the caller identifier for rate limiting: first entry of
// X-Forwarded-For, else a sentinel.
func clientID(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(forwarded, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return "unknown"
	}
	return first
}

// normalizeHandle strips leading "@" characters and surrounding whitespace.
func normalizeHandle(username string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(username), "@"))
}

// cacheKey disambiguates cached results by content-type preference.
func cacheKey(handle string, preferReels bool) string {
	if preferReels {
		return handle + "|reels"
	}
	return handle + "|posts"
}
