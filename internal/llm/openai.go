// Package llm generates structured post audits via OpenAI-compatible APIs.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"reelcoach/internal/audit"
)

const (
	// DefaultEndpoint is the OpenAI chat completions URL.
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
)

const systemPrompt = "You are a ruthless but helpful short-form content coach. " +
	"You receive the metadata of a creator's most recent post and audit it. " +
	"Be specific, be blunt, and always give the creator something concrete to do next."

// Client calls the chat completions API with a schema-constrained response
// format. It implements the handlers.Auditor port.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an audit generator. Empty endpoint/model fall back to the
// OpenAI defaults. The key may be empty; audits then fail with
// audit.ErrConfigMissing without any network I/O.
func NewClient(endpoint, model, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat json.RawMessage `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateAudit submits the post summary and decodes the structured audit.
// A completion that does not parse as the audit shape yields the zero
// AuditResult and no error: score enforcement downstream supplies safe
// defaults, so the caller still gets a well-formed 200 body.
func (c *Client) GenerateAudit(ctx context.Context, summary audit.PostSummary) (audit.AuditResult, error) {
	if c.apiKey == "" {
		return audit.AuditResult{}, audit.ErrConfigMissing
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return audit.AuditResult{}, fmt.Errorf("marshal post summary: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Audit this post:\n" + string(payload)},
		},
		ResponseFormat: json.RawMessage(auditResponseFormat),
	})
	if err != nil {
		return audit.AuditResult{}, fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return audit.AuditResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return audit.AuditResult{}, fmt.Errorf("generate audit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return audit.AuditResult{}, fmt.Errorf("llm error %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return audit.AuditResult{}, fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		log.Printf("llm: completion carried no choices, falling back to empty audit")
		return audit.AuditResult{}, nil
	}

	var result audit.AuditResult
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &result); err != nil {
		log.Printf("llm: completion did not parse as audit shape, falling back to empty audit: %v", err)
		return audit.AuditResult{}, nil
	}
	return result, nil
}
