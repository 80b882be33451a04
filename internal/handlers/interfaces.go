package handlers

import (
	"context"

	"reelcoach/internal/audit"
)

// PostFetcher pulls recent post records for a handle from the scraping
// provider. Implemented by scraper.Client.
type PostFetcher interface {
	FetchLatestPosts(ctx context.Context, handle string, opts audit.FetchOptions) ([]audit.PostRecord, error)
}

// Auditor turns a post summary into a structured critique.
// Implemented by llm.Client.
type Auditor interface {
	GenerateAudit(ctx context.Context, summary audit.PostSummary) (audit.AuditResult, error)
}

// Limiter admits or denies a request for a client identifier.
// Implemented by ratelimit.FixedWindow.
type Limiter interface {
	Allow(clientID string) bool
}
