package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-Id"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
	})
}

// recovererMiddleware is the outer boundary of the audit pipeline: any panic
// becomes a well-formed JSON 500 instead of a bare protocol failure. It runs
// inside the CORS middleware so even these responses carry CORS headers.
func recovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic serving %s: %v", r.URL.Path, rec)
				log.Printf("recovered: %v", err)
				sentry.CaptureException(err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
