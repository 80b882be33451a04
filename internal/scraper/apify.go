// Package scraper fetches recent posts for a profile via the Apify platform.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	uberratelimit "go.uber.org/ratelimit"

	"reelcoach/internal/audit"
)

const (
	// DefaultBaseURL is the Apify API root.
	DefaultBaseURL = "https://api.apify.com"
	// DefaultActorID is the Instagram scraper actor invoked by default.
	DefaultActorID = "apify~instagram-scraper"

	// Outbound requests per second towards the paid provider.
	outboundRPS = 2
)

// Client invokes a scraping actor synchronously and reads its dataset items.
// It implements the handlers.PostFetcher port.
type Client struct {
	baseURL    string
	actorID    string
	token      string
	httpClient *http.Client
	pacer      uberratelimit.Limiter
}

// NewClient builds an Apify client. An empty actorID falls back to the
// default Instagram scraper. The token may be empty; fetches then fail with
// audit.ErrConfigMissing without any network I/O.
func NewClient(baseURL, actorID, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if actorID == "" {
		actorID = DefaultActorID
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		actorID: actorID,
		token:   token,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // actor runs are slow
		},
		pacer: uberratelimit.New(outboundRPS),
	}
}

type actorInput struct {
	Usernames    []string `json:"usernames"`
	ResultsType  string   `json:"resultsType"`
	ResultsLimit int      `json:"resultsLimit"`
}

// FetchLatestPosts runs the actor for one handle and decodes the dataset.
func (c *Client) FetchLatestPosts(ctx context.Context, handle string, opts audit.FetchOptions) ([]audit.PostRecord, error) {
	if c.token == "" {
		return nil, audit.ErrConfigMissing
	}

	input := actorInput{
		Usernames:    []string{handle},
		ResultsType:  "posts",
		ResultsLimit: opts.Limit,
	}
	if opts.PreferReels {
		input.ResultsType = "reels"
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal actor input: %w", err)
	}

	url := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?clean=true&format=json", c.baseURL, c.actorID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.pacer.Take()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("run actor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("apify error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var records []audit.PostRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset items: %w", err)
	}
	return records, nil
}
