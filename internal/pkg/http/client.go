package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/adampos/tipstation/internal/pkg/logger"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
)

// BearerClient is an HTTP client with bearer-token authentication, used for
// talking to the payment processor's REST API
type BearerClient struct {
	client     *nethttp.Client
	token      string
	baseURL    string
	apiVersion string
}

// NewBearerClient creates a new HTTP client with bearer-token authentication
func NewBearerClient(baseURL, token, apiVersion string, timeout time.Duration) *BearerClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &BearerClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		token:      token,
		baseURL:    baseURL,
		apiVersion: apiVersion,
	}
}

// BaseURL returns the configured base URL
func (c *BearerClient) BaseURL() string {
	return c.baseURL
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *BearerClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, result)
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into result
func (c *BearerClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, result)
}

// doRequest performs the actual HTTP request with bearer authentication
func (c *BearerClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if c.apiVersion != "" {
		req.Header.Set("Square-Version", c.apiVersion)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}

// decodeResponse reads the response body, surfacing non-2xx statuses as
// errors that include the body for diagnosis
func decodeResponse(resp *nethttp.Response, result interface{}) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP error: %d %s (body: %s)", resp.StatusCode, resp.Status, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
