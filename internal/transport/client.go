package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/XurBot_Go/internal/domain"
	"github.com/osse101/XurBot_Go/internal/logger"
)

// Doer is the subset of *http.Client the transport needs
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer receives one callback per completed request.
// status is 0 when no response was received.
type Observer interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
}

// Client performs single-attempt requests and rejects any non-2xx response.
// One Client is built per process and handed to every upstream caller.
type Client struct {
	http     Doer
	observer Observer
}

// Option configures a Client
type Option func(*Client)

// WithObserver attaches a request observer (metrics)
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewHTTPClient builds the default *http.Client with the given timeout
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// New wraps an HTTP doer
func New(doer Doer, opts ...Option) *Client {
	if doer == nil {
		doer = NewHTTPClient(DefaultTimeout)
	}
	c := &Client{http: doer}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches url and returns the full body. endpoint names the upstream in logs,
// metrics and errors so secrets embedded in URLs never leak.
func (c *Client) Get(ctx context.Context, endpoint, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	return c.do(ctx, endpoint, req)
}

// PostJSON marshals body and posts it to url
func (c *Client) PostJSON(ctx context.Context, endpoint, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s body: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderAccept, ContentTypeJSON)

	_, err = c.do(ctx, endpoint, req)
	return err
}

func (c *Client) do(ctx context.Context, endpoint string, req *http.Request) ([]byte, error) {
	log := logger.FromContext(ctx).With("endpoint", endpoint, "method", req.Method)
	log.Debug(LogMsgRequestStarted)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(endpoint, 0, time.Since(start))
		log.Error(LogMsgRequestFailed, "error", err)
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.observe(endpoint, resp.StatusCode, elapsed)
	if err != nil {
		log.Error(LogMsgRequestFailed, "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error(LogMsgRequestFailed, "status", resp.StatusCode, "duration", elapsed)
		return nil, fmt.Errorf("%w: %s returned %d: %s",
			domain.ErrUnexpectedStatus, endpoint, resp.StatusCode, snippet(body))
	}

	log.Debug(LogMsgRequestFinished, "status", resp.StatusCode, "duration", elapsed, "bytes", len(body))
	return body, nil
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveRequest(endpoint, status, elapsed)
	}
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		cut := maxErrorBodyBytes
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	return s
}
