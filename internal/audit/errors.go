package audit

import "errors"

// Sentinel errors surfaced by the pipeline. The handler layer maps them to
// HTTP statuses; their messages are part of the API contract.
var (
	// ErrConfigMissing means a required provider credential is absent.
	ErrConfigMissing = errors.New("service configuration missing")

	// ErrNoPosts means the provider returned zero records for the handle.
	ErrNoPosts = errors.New("No posts found for this username.")

	// ErrNoRecentPost means no record carried a usable timestamp selection.
	ErrNoRecentPost = errors.New("No recent post available.")
)
