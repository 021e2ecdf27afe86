// Package agent implements the HTTP client for the external agent service,
// the backend process that turns a user's financial context into free-text
// analysis.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	applog "lynq/internal/log"
)

const defaultTimeout = 60 * time.Second

// genericFailure is shown when the upstream gives no usable detail.
const genericFailure = "Failed to fetch insights"

var ErrMalformedResponse = errors.New("malformed agent response")

// Envelope is the request body for a generation call.
type Envelope struct {
	AgentType string `json:"agent_type"`
	UserData  any    `json:"user_data"`
}

// Response is a successful generation result.
type Response struct {
	Output  string   `json:"output"`
	Status  string   `json:"status"`
	Details *Details `json:"details,omitempty"`
}

// Details carries optional structured extras alongside the text output.
type Details struct {
	Category        string             `json:"category,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	Metrics         map[string]float64 `json:"metrics,omitempty"`
}

// RequestError is a non-2xx or transport-level failure, carrying the
// upstream detail message when one was provided.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("agent request failed with status %d", e.StatusCode)
}

// FailureMessage converts any generation error into the human-readable text
// stored on the insight session: the upstream detail when present, a
// generic line otherwise.
func FailureMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return genericFailure
}

// Client talks to the agent service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *applog.Logger
	fetches    singleflight.Group
}

// NewClient creates a client for the agent service at baseURL. A zero
// timeout falls back to the default; the timeout bounds each call so a hung
// agent cannot pin a session in its loading state forever.
func NewClient(baseURL string, timeout time.Duration, logger *applog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = applog.New(applog.Config{Component: applog.ComponentAgent})
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.WithComponent(applog.ComponentAgent),
	}
}

// Generate posts the envelope to the agent service and returns its output.
// Failures are classified: non-2xx responses become a RequestError with the
// upstream detail, and 2xx bodies missing the output field count as
// malformed.
func (c *Client) Generate(ctx context.Context, env Envelope) (*Response, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/agent", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Agent request failed",
			applog.FieldAgentType, env.AgentType,
			applog.FieldError, err)
		return nil, &RequestError{Detail: ""}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decodeDetail(raw)
		c.logger.WarnContext(ctx, "Agent returned error status",
			applog.FieldAgentType, env.AgentType,
			applog.FieldStatus, resp.StatusCode,
			applog.FieldError, detail)
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil || out.Output == "" {
		c.logger.WarnContext(ctx, "Agent response missing output",
			applog.FieldAgentType, env.AgentType)
		return nil, ErrMalformedResponse
	}

	c.logger.InfoContext(ctx, "Agent request completed",
		applog.FieldAgentType, env.AgentType,
		applog.FieldDuration, time.Since(start).Milliseconds())
	return &out, nil
}

// FetchOutput relays a stored agent output from the agent service.
// Concurrent fetches for the same agent share a single upstream call.
func (c *Client) FetchOutput(ctx context.Context, agentName string) (json.RawMessage, error) {
	v, err, _ := c.fetches.Do(agentName, func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/agent-output?agent="+url.QueryEscape(agentName), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &RequestError{}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &RequestError{StatusCode: resp.StatusCode, Detail: decodeDetail(raw)}
		}
		return json.RawMessage(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// decodeDetail pulls the {"detail": "..."} message out of an error body.
func decodeDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
