package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dangerclosesec/schemagen/ddl/model"
)

// Config represents the configuration for the schema client
type Config struct {
	// BaseURL is the base URL of the schemagen API
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to a running `schemagen serve`
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new schema client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// ParseRequest represents a parse request
type ParseRequest struct {
	Name   string `json:"name,omitempty"`
	Source string `json:"source"`
}

// ParseResponse represents a successful parse
type ParseResponse struct {
	RecordID string        `json:"record_id,omitempty"`
	Cached   bool          `json:"cached"`
	Schema   *model.Schema `json:"schema"`
}

// ParseRecord is one entry of the server's parse history
type ParseRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SourceHash    string        `json:"source_hash"`
	Success       bool          `json:"success"`
	RelationCount int           `json:"relation_count"`
	ErrorState    string        `json:"error_state,omitempty"`
	ErrorToken    string        `json:"error_token,omitempty"`
	ErrorLine     int           `json:"error_line,omitempty"`
	ErrorColumn   int           `json:"error_column,omitempty"`
	Schema        *model.Schema `json:"schema,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Parse submits DDL source to the server. A syntax error comes back as an
// *APIError with Code "syntax_error".
func (c *Client) Parse(ctx context.Context, req *ParseRequest) (*ParseResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Source == "" {
		return nil, errors.New("source is required")
	}

	var resp ParseResponse
	if err := c.do(ctx, http.MethodPost, "/api/schemas/parse", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History lists recent parses, newest first. A zero limit uses the server default.
func (c *Client) History(ctx context.Context, limit int) ([]ParseRecord, error) {
	path := "/api/schemas/history"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var resp struct {
		Records []ParseRecord `json:"records"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// Record fetches a single parse record by ID
func (c *Client) Record(ctx context.Context, id string) (*ParseRecord, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	var resp ParseRecord
	if err := c.do(ctx, http.MethodGet, "/api/schemas/history/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports whether the server answers its health check
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return fmt.Errorf("unexpected health status %q", resp.Status)
	}
	return nil
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int      `json:"-"`
	Code       string   `json:"error_code,omitempty"`
	Message    string   `json:"error"`
	Details    []string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (Status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// do performs a request against path and unmarshals the response into resp
func (c *Client) do(ctx context.Context, method, path string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
