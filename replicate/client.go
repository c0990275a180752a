// client.go implements prediction submission and polling.
package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the public predictions API root.
const DefaultBaseURL = "https://api.replicate.com/v1"

// DefaultPollInterval is the fixed delay between status polls while a
// prediction is not yet terminal.
const DefaultPollInterval = 2 * time.Second

// Client talks to the predictions API.
//
// Thread Safety: Client is safe for concurrent use. Each call creates
// its own HTTP request; the underlying http.Client pools connections.
type Client struct {
	baseURL      string
	token        string
	http         *http.Client
	pollInterval time.Duration
}

// ClientConfig holds optional client settings.
type ClientConfig struct {
	// BaseURL is the API root. Default: DefaultBaseURL.
	BaseURL string

	// HTTPClient is the HTTP client for API calls (optional).
	HTTPClient *http.Client

	// PollInterval is the delay between status polls.
	// Default: DefaultPollInterval.
	PollInterval time.Duration
}

// NewClient creates a predictions client with the given API token.
func NewClient(token string, cfg ClientConfig) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 300 * time.Second}
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		token:        token,
		http:         httpClient,
		pollInterval: pollInterval,
	}, nil
}

// NewClientFromEnv creates a client authenticated via the
// REPLICATE_API_TOKEN environment variable.
func NewClientFromEnv() (*Client, error) {
	return NewClient(os.Getenv("REPLICATE_API_TOKEN"), ClientConfig{})
}

// CreatePrediction submits a prediction job.
//
// Official models ("owner/name") go to the models run endpoint;
// versioned models ("owner/name:version") go to the generic
// predictions endpoint with an explicit version field. The request
// carries "Prefer: wait" so the API blocks until completion when it
// can, but callers must still poll via Wait if the returned status is
// not terminal.
func (c *Client) CreatePrediction(ctx context.Context, modelID string, input map[string]any) (*Prediction, error) {
	if modelID == "" {
		return nil, fmt.Errorf("replicate: model ID cannot be empty")
	}

	var url string
	var payload map[string]any
	if _, version, ok := strings.Cut(modelID, ":"); ok {
		url = fmt.Sprintf("%s/predictions", c.baseURL)
		payload = map[string]any{"version": version, "input": input}
	} else {
		url = fmt.Sprintf("%s/models/%s/predictions", c.baseURL, modelID)
		payload = map[string]any{"input": input}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("replicate: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("replicate: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	return c.doPrediction(req)
}

// GetPrediction fetches the current state of a prediction by its
// polling URL.
func (c *Client) GetPrediction(ctx context.Context, url string) (*Prediction, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: prediction has no polling URL", ErrMalformedResponse)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("replicate: failed to create poll request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	return c.doPrediction(req)
}

// Wait polls the prediction at the client's poll interval until it
// reaches a terminal status or the context is canceled.
func (c *Client) Wait(ctx context.Context, p *Prediction) (*Prediction, error) {
	for !p.IsTerminal() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("replicate: wait canceled: %w", ctx.Err())
		case <-time.After(c.pollInterval):
		}

		next, err := c.GetPrediction(ctx, p.URLs.Get)
		if err != nil {
			return nil, err
		}
		p = next
	}
	return p, nil
}

// Run submits a prediction, waits for a terminal status, and returns
// the output URLs. A failed or canceled prediction yields
// ErrPredictionFailed with the service's error description.
func (c *Client) Run(ctx context.Context, modelID string, input map[string]any) ([]string, error) {
	p, err := c.CreatePrediction(ctx, modelID, input)
	if err != nil {
		return nil, err
	}

	p, err = c.Wait(ctx, p)
	if err != nil {
		return nil, err
	}

	if p.Status != StatusSucceeded {
		detail := p.Error
		if detail == "" {
			detail = "unknown error"
		}
		return nil, fmt.Errorf("%w: status %s: %s", ErrPredictionFailed, p.Status, detail)
	}

	return p.OutputURLs()
}

// doPrediction executes a request and decodes the prediction envelope.
func (c *Client) doPrediction(req *http.Request) (*Prediction, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("replicate: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("replicate: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body apiErrorBody
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Detail = body.Detail
		}
		return nil, apiErr
	}

	var p Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if p.Status == "" {
		return nil, fmt.Errorf("%w: response missing status", ErrMalformedResponse)
	}
	return &p, nil
}

// PollInterval returns the configured poll interval.
func (c *Client) PollInterval() time.Duration {
	return c.pollInterval
}
