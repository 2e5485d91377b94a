// Package api wraps the bank backend's HTTP endpoints. The navigation
// guard never calls it; the login and registration flows use it to obtain
// the token and profile the session store persists, and the screens use
// it for account and transfer data.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL matches the development backend.
const DefaultBaseURL = "http://localhost:8080"

// TokenSource supplies the current bearer token, or "" when logged out.
// Wiring it to the session store means every request observes the token
// at the moment it is sent.
type TokenSource func() string

// Client is the bank backend API client
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	TokenSource TokenSource
}

// NewClient creates a new bank API client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithTokenSource sets the bearer token source for authenticated requests.
func (c *Client) WithTokenSource(source TokenSource) *Client {
	c.TokenSource = source
	return c
}

// doRequest performs an HTTP request with authentication
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponse parses the response body into the target struct
func parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		// Try to parse as JSON error response
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			// Use the error message from JSON
			if errResp.Error != "" {
				return fmt.Errorf("%s", errResp.Error)
			}
			if errResp.Message != "" {
				return fmt.Errorf("%s", errResp.Message)
			}
		}

		// Fallback to raw body
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
