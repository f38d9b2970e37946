package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gogevgelija/ggadmin/internal/form"
	"github.com/gogevgelija/ggadmin/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default initial delay between retry attempts
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 8 * time.Second
)

// Client talks to one admin backend instance.
type Client struct {
	// BaseURL is the backend base URL (e.g., "http://192.168.1.50:8600")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay caps the exponential backoff delay
	MaxRetryDelay time.Duration
}

// NewClient creates a backend client with default settings.
// baseURL: Full base URL (e.g., "http://192.168.1.50:8600")
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		HTTPClient:    &http.Client{Timeout: DefaultTimeout},
		MaxRetries:    DefaultMaxRetries,
		RetryDelay:    DefaultRetryDelay,
		MaxRetryDelay: DefaultMaxRetryDelay,
	}
}

// GetCatalog fetches the record index.
func (c *Client) GetCatalog(ctx context.Context) (*Catalog, error) {
	data, err := c.get(ctx, "/api/forms")
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, NewParseError("failed to unmarshal catalog", err)
	}
	return &catalog, nil
}

// GetForm fetches the rendered edit form for one record.
// id: record identifier (e.g., "listing/42")
func (c *Client) GetForm(ctx context.Context, id string) (*form.Form, error) {
	data, err := c.get(ctx, "/api/forms/"+id)
	if err != nil {
		return nil, err
	}

	f, err := form.Decode(data)
	if err != nil {
		return nil, NewParseError("failed to decode form", err)
	}
	return f, nil
}

// SubmitForm posts edited values for one record and returns the backend's
// validation verdict. An invalid submission is not an error at this layer:
// the result carries the field errors and err is nil.
func (c *Client) SubmitForm(ctx context.Context, id string, values map[string]string) (*ValidationResult, error) {
	body, err := json.Marshal(values)
	if err != nil {
		return nil, NewParseError("failed to marshal submission", err)
	}

	data, err := c.post(ctx, "/api/forms/"+id, body)
	if err != nil {
		return nil, err
	}

	var result ValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, NewParseError("failed to unmarshal validation result", err)
	}
	return &result, nil
}

// get performs a GET with retries and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post performs a POST with retries and returns the response body.
func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// do performs an HTTP request with exponential backoff on retryable errors.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	url := c.BaseURL + path

	var lastErr error
	delay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ClassifyNetworkError(ctx.Err(), c.BaseURL)
			case <-time.After(delay):
			}
			delay *= 2
			if delay > c.MaxRetryDelay {
				delay = c.MaxRetryDelay
			}
		}

		data, err := c.doOnce(ctx, method, url, body)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// doOnce performs a single HTTP request attempt.
func (c *Client) doOnce(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.BaseURL)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.BaseURL)
	}
	defer resp.Body.Close()

	logging.LogHTTPRequest(url, method, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.BaseURL)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("%s %s returned %s", method, url, resp.Status))
	}

	return data, nil
}
