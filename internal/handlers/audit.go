package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"reelcoach/internal/audit"
	"reelcoach/internal/cache"
)

// defaultResultsLimit bounds how many records one fetch requests from the
// provider; only the newest is audited.
const defaultResultsLimit = 10

// AuditHandler runs the request pipeline: rate check, validation, cache
// probe, provider fetch, newest-item selection, audit generation, score
// enforcement, cache store.
type AuditHandler struct {
	fetcher        PostFetcher
	auditor        Auditor
	store          cache.Store
	limiter        Limiter
	allowedOrigins map[string]struct{}
}

// NewAuditHandler wires the pipeline's collaborators.
func NewAuditHandler(fetcher PostFetcher, auditor Auditor, store cache.Store, limiter Limiter, allowedOrigins []string) *AuditHandler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}
	return &AuditHandler{
		fetcher:        fetcher,
		auditor:        auditor,
		store:          store,
		limiter:        limiter,
		allowedOrigins: origins,
	}
}

type auditRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PreferReels bool   `json:"preferReels"`
}

// HandleAudit serves POST /audit.
func (h *AuditHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.limiter.Allow(clientID(r)) {
		writeError(w, http.StatusTooManyRequests, "Rate limit")
		return
	}

	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	handle := normalizeHandle(req.Username)
	key := cacheKey(handle, req.PreferReels)

	if payload, ok := h.store.Get(ctx, key); ok {
		writeRaw(w, http.StatusOK, payload)
		return
	}

	records, err := h.fetcher.FetchLatestPosts(ctx, handle, audit.FetchOptions{
		PreferReels: req.PreferReels,
		Limit:       defaultResultsLimit,
	})
	if err != nil {
		failRequest(w, err)
		return
	}
	if len(records) == 0 {
		failRequest(w, audit.ErrNoPosts)
		return
	}

	newest := audit.SelectNewest(records)
	if newest == nil {
		failRequest(w, audit.ErrNoRecentPost)
		return
	}
	summary := audit.Summarize(handle, *newest)

	result, err := h.auditor.GenerateAudit(ctx, summary)
	if err != nil {
		failRequest(w, err)
		return
	}
	audit.EnforceOverall(&result)

	payload, err := json.Marshal(audit.AuditResponse{
		OK:    true,
		Post:  summary,
		Audit: result,
		Email: req.Email,
	})
	if err != nil {
		failRequest(w, err)
		return
	}

	h.store.Set(ctx, key, payload)
	writeRaw(w, http.StatusOK, payload)
}
