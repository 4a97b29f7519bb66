// Package api is the client for the Antithesis launch API. Requests carry
// HTTP basic auth and a JSON body of the form {"params": {...}}; exactly
// one request is made per CLI invocation and failures are never retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/antithesishq/snouty/params"
	"github.com/antithesishq/snouty/slogger"
)

// DefaultClient is used for requests unless overridden with WithHTTPClient.
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// APIError represents a non-2xx response from the API.
type APIError struct {
	statusCode int
	body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.statusCode, e.body)
}

func (e *APIError) StatusCode() int {
	return e.statusCode
}

func (e *APIError) Body() string {
	return e.body
}

// Client issues authenticated requests against one tenant's API.
type Client struct {
	username   string
	password   string
	baseURL    string
	httpClient *http.Client
	logger     slogger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the base URL derived from the tenant name.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(logger slogger.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the tenant named in the config. The base URL
// defaults to https://<tenant>.antithesis.com/api/v1 and may be overridden
// by config or option; a trailing slash is trimmed either way.
func New(config *Config, opts ...Option) *Client {
	c := &Client{
		username:   config.Username,
		password:   config.Password,
		baseURL:    fmt.Sprintf("https://%s.antithesis.com/api/v1", config.Tenant),
		httpClient: DefaultClient,
		logger:     slogger.DefaultLogger,
	}
	if config.BaseURL != "" {
		c.baseURL = config.BaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")
	return c
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LaunchWebhook starts a test run through the named webhook endpoint and
// returns the raw response body.
func (c *Client) LaunchWebhook(ctx context.Context, webhook string, p *params.Params) (string, error) {
	return c.launch(ctx, "/launch/"+webhook, p)
}

// LaunchDebugging starts a debugging session and returns the raw response
// body.
func (c *Client) LaunchDebugging(ctx context.Context, p *params.Params) (string, error) {
	return c.launch(ctx, "/launch/debugging", p)
}

type launchRequest struct {
	Params map[string]any `json:"params"`
}

func (c *Client) launch(ctx context.Context, path string, p *params.Params) (string, error) {
	body, err := json.Marshal(launchRequest{Params: p.WireValue()})
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	c.logger.Debug("sending launch request", "url", c.baseURL+path, "params", p.Len())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}
	c.logger.Debug("launch response", "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{statusCode: resp.StatusCode, body: string(respBody)}
	}
	return string(respBody), nil
}
