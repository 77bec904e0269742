package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
)

// Client retrieves raw JSON catalogs over HTTP
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	logger     zerolog.Logger
}

// NewClient creates a new fetch client
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  options.userAgent,
		maxRetries: options.maxRetries,
		retryDelay: options.retryDelay,
		logger:     logger,
	}
}

// Fetch issues a GET for url and returns the response body once it is known
// to be valid JSON. Transport failures and 5xx/429 responses are retried.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			b, err := c.get(ctx, url)
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn().Err(err).Uint("attempt", n+1).Str("url", url).Msg("Retrying catalog fetch")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	c.logger.Debug().Str("url", url).Int("bytes", len(body)).Msg("Fetched catalog")
	return body, nil
}

// get performs a single request
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("url", url).Msg("Requesting catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        url,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	return body, nil
}

// isRetryable reports whether err is worth another attempt
func isRetryable(err error) bool {
	if errors.Is(err, ErrInvalidJSON) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}

	return true
}
