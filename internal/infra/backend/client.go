package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/infra"
	"stay-admin/internal/pkg/config"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/shared"

	"golang.org/x/time/rate"
)

const (
	maxErrorBody = 512

	headerIdempotencyKey = "Idempotency-Key"
)

// Client talks to the remote admin REST backend. Writes are sent once and
// never retried.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	cache   shared.Cache
	rooms   blockeddate.Encoding
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, cache shared.Cache, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		cache:   cache,
		rooms:   RoomsEncoding(cfg.RoomsSchema),
		metrics: m,
		logger:  logger,
	}
}

type call struct {
	endpoint       string // metric label
	method         string
	path           string
	query          url.Values
	body           any
	idempotencyKey string
}

func (c *Client) fetch(ctx context.Context, cl call) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "backend rate limit wait aborted", err)
	}

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "failed to build backend request", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.BackendLatency.WithLabelValues(cl.endpoint, cl.method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.observe(cl, metrics.OutcomeError)
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, cl.method+" "+cl.path+" failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(cl, metrics.OutcomeError)
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream, "failed to read backend response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.observe(cl, metrics.OutcomeError)
		return nil, infra.WrapRepoErr(c.logger, infra.KindNotFound, cl.path+" not found", nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.observe(cl, metrics.OutcomeError)
		return nil, infra.WrapRepoErr(c.logger, infra.KindUpstream,
			fmt.Sprintf("%s %s returned %d: %s", cl.method, cl.path, resp.StatusCode, truncate(raw)), nil)
	}

	c.observe(cl, metrics.OutcomeOK)
	return raw, nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if cl.idempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, cl.idempotencyKey)
	}
	return req, nil
}

// fetchCached serves slow-changing reads from the cache. Cache errors fall
// through to the backend.
func (c *Client) fetchCached(ctx context.Context, key string, cl call) ([]byte, error) {
	raw, hit, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.metrics.CacheLookups.WithLabelValues(cl.endpoint, "error").Inc()
		c.logger.Warn("cache read failed, calling backend", "key", key, "error", err)
	case hit:
		c.metrics.CacheLookups.WithLabelValues(cl.endpoint, "hit").Inc()
		c.observe(cl, metrics.OutcomeCacheHit)
		return raw, nil
	default:
		c.metrics.CacheLookups.WithLabelValues(cl.endpoint, "miss").Inc()
	}

	raw, err = c.fetch(ctx, cl)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, raw); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
	return raw, nil
}

func (c *Client) observe(cl call, outcome string) {
	c.metrics.BackendRequests.WithLabelValues(cl.endpoint, cl.method, outcome).Inc()
}

func (c *Client) decodeErr(cl call, err error) error {
	return infra.WrapRepoErr(c.logger, infra.KindDecode, "unexpected response body from "+cl.path, err)
}

func truncate(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
