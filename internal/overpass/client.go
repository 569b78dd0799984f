package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/masajidusa/pipeline/internal/catalog"
)

// DefaultURL is the public Overpass API interpreter endpoint.
const DefaultURL = "https://overpass-api.de/api/interpreter"

const (
	defaultTimeout    = 180 * time.Second
	defaultAttempts   = 3
	defaultRetryStep  = 10 * time.Second
	defaultPause      = 5 * time.Second
	defaultUserAgent  = "masajid-pipeline (github.com/masajidusa/pipeline)"
)

// Config holds the tunables for a Client. Zero values fall back to the
// package defaults above.
type Config struct {
	// URL is the interpreter endpoint.
	URL string
	// Timeout bounds a single attempt, not the whole retry sequence.
	Timeout time.Duration
	// Attempts is the total number of tries per fetch.
	Attempts uint
	// RetryStep is the backoff unit: waits grow linearly as
	// 1×step, 2×step, ... between attempts.
	RetryStep time.Duration
	// Pause is the mandatory courtesy delay applied after every
	// region, successful or not.
	Pause time.Duration

	Logger *slog.Logger
}

// Client fetches raw elements from the Overpass API with bounded retry.
// A nil element slice is never returned on success; zero results is a
// legitimate empty success, distinct from fetch failure.
type Client struct {
	url    string
	client *http.Client
	logger *slog.Logger

	mu        sync.RWMutex
	attempts  uint
	retryStep time.Duration
	pause     time.Duration
}

// New creates a Client from cfg, applying defaults for zero values.
func New(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryStep <= 0 {
		cfg.RetryStep = defaultRetryStep
	}
	if cfg.Pause <= 0 {
		cfg.Pause = defaultPause
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		url:       cfg.URL,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    cfg.Logger,
		attempts:  cfg.Attempts,
		retryStep: cfg.RetryStep,
		pause:     cfg.Pause,
	}
}

// Reconfigure replaces the retry and pause tunables. The URL and the
// per-attempt timeout are fixed at construction; a config reload during
// a long multi-region run adjusts how patient the client is, not where
// it talks to. Zero values fall back to the package defaults, matching
// New.
func (c *Client) Reconfigure(cfg Config) {
	if cfg.Attempts == 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryStep <= 0 {
		cfg.RetryStep = defaultRetryStep
	}
	if cfg.Pause <= 0 {
		cfg.Pause = defaultPause
	}
	c.mu.Lock()
	c.attempts = cfg.Attempts
	c.retryStep = cfg.RetryStep
	c.pause = cfg.Pause
	c.mu.Unlock()
}

// Fetch runs the query for the region's bounding box and returns the raw
// elements. Transient errors (transport failures, non-2xx statuses) are
// retried up to the configured attempt bound with linearly increasing
// backoff; after that the last error is returned and the caller must
// treat the region as failed rather than empty.
func (c *Client) Fetch(ctx context.Context, regionID string, box catalog.BBox) ([]Element, error) {
	query := BuildQuery(box)

	c.mu.RLock()
	attempts, step := c.attempts, c.retryStep
	c.mu.RUnlock()

	var elements []Element
	err := retry.Do(
		func() error {
			var err error
			elements, err = c.post(ctx, query)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return time.Duration(n+1) * step
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("fetch attempt failed, retrying",
				"region", regionID,
				"attempt", n+1,
				"wait", time.Duration(n+1)*step,
				"error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", regionID, err)
	}
	if elements == nil {
		elements = []Element{}
	}
	return elements, nil
}

// post performs one attempt: POST the query as form data, decode the
// elements envelope.
func (c *Client) post(ctx context.Context, query string) ([]Element, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass error (status %d): %s", resp.StatusCode, truncate(body, 200))
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return out.Elements, nil
}

// Pause applies the mandatory inter-request delay. It returns early only
// on context cancellation; the delay itself is not skippable.
func (c *Client) Pause(ctx context.Context) error {
	c.mu.RLock()
	pause := c.pause
	c.mu.RUnlock()

	t := time.NewTimer(pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
