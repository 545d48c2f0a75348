package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	nrpkg "github.com/piresc/nebengjek-nav/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-nav/internal/pkg/retry"
)

// EnhancedClient wraps http.Client with retry, a per-host circuit breaker and
// New Relic external segments
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
}

// Option customises an EnhancedClient
type Option func(*EnhancedClient)

// WithRetryConfig overrides the default backoff
func WithRetryConfig(cfg retry.Config, log *logger.ZapLogger) Option {
	return func(c *EnhancedClient) {
		c.retrier = retry.New(cfg, log)
	}
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration, opts ...Option) *EnhancedClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	c := &EnhancedClient{
		client:         &http.Client{Timeout: timeout},
		retrier:        retry.NewWithDefaults(log),
		circuitManager: circuitbreaker.NewManager(log),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPError is a non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Do executes req. 5xx responses are retried and count against the breaker;
// 4xx responses are returned as *HTTPError without retry.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	host := req.URL.Host
	if host == "" {
		host = "unknown"
	}

	var resp *http.Response
	err := c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req.Clone(ctx))
			})
			if err != nil {
				return err
			}

			if r.StatusCode >= 500 {
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: http.StatusText(r.StatusCode)}
			}
			if r.StatusCode >= 400 {
				body, _ := io.ReadAll(io.LimitReader(r.Body, 512))
				r.Body.Close()
				return retry.Permanent(&HTTPError{StatusCode: r.StatusCode, Message: string(body)})
			}

			resp = r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetJSON performs a GET and decodes the JSON body into out
func (c *EnhancedClient) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (c *EnhancedClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

// CheckHealth fails while any upstream circuit is open
func (c *EnhancedClient) CheckHealth(ctx context.Context) error {
	var open []string
	for name, stats := range c.GetCircuitBreakerStats() {
		if stats.State == circuitbreaker.StateOpen.String() {
			open = append(open, name)
		}
	}
	if len(open) > 0 {
		sort.Strings(open)
		return fmt.Errorf("circuit open for %s", strings.Join(open, ", "))
	}
	return nil
}
