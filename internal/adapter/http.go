package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetJSON performs a GET request and unmarshals the response into result
	GetJSON(ctx context.Context, url string, result interface{}) error

	// PostJSON performs a POST request with a JSON body and returns the
	// raw response body
	PostJSON(ctx context.Context, url string, body interface{}) ([]byte, error)
}

// RealHTTPClient implements HTTPClient using the standard http package,
// with exponential backoff retries for rate limiting and transport errors
type RealHTTPClient struct {
	client     *http.Client
	maxElapsed time.Duration
}

// NewHTTPClient creates a new HTTP client. maxRetryElapsed bounds how long
// transport-level retries may take in total; zero disables retries so the
// caller's own retry policy stays in control of timing.
func NewHTTPClient(timeout time.Duration, maxRetryElapsed time.Duration) HTTPClient {
	return &RealHTTPClient{
		client:     &http.Client{Timeout: timeout},
		maxElapsed: maxRetryElapsed,
	}
}

// doRequest executes req, retrying on 429 and transport failures when
// retries are enabled. Other non-2xx responses are permanent errors.
func (c *RealHTTPClient) doRequest(req *http.Request) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return fmt.Errorf("rate limited (429), retrying")
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	if c.maxElapsed <= 0 {
		if err := operation(); err != nil {
			var permanent *backoff.PermanentError
			if ok := asPermanent(err, &permanent); ok {
				return nil, permanent.Err
			}
			return nil, err
		}
		return respBody, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = c.maxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // jitter to avoid thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, req.Context())); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

func asPermanent(err error, target **backoff.PermanentError) bool {
	p, ok := err.(*backoff.PermanentError) //nolint:errorlint // backoff wraps at the top level only
	if ok {
		*target = p
	}
	return ok
}

// GetJSON performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) GetJSON(ctx context.Context, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	respBody, err := c.doRequest(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// PostJSON performs a POST request with a JSON body and returns the raw
// response body
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doRequest(req)
}
