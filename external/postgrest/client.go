package postgrest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/pulsopublico/pulso-api/internal/platform/logging"
	"github.com/pulsopublico/pulso-api/internal/platform/resilience"
	"github.com/pulsopublico/pulso-api/internal/usecase"
)

const maxResponseBytes = 8 << 20

var apikeyParamRegex = regexp.MustCompile(`apikey=[^&\s"']+`)
var errPostgrestTransient = crerr.New("postgrest transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	ServiceKey     string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client is a read-only PostgREST gateway. A client built without a base URL
// or service key stays inert and reports ErrBackendNotConfigured on every
// call instead of dialing anything.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	serviceKey     string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		serviceKey:     strings.TrimSpace(cfg.ServiceKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Configured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// GetRows reads one table (or view) and decodes the JSON array PostgREST
// returns for it.
func (c *Client) GetRows(ctx context.Context, resource string, query *Query) ([]map[string]any, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" {
		return nil, fmt.Errorf("resource name is required")
	}
	if !c.Configured() {
		return nil, usecase.ErrBackendNotConfigured
	}

	raw, err := c.doJSON(ctx, resource, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", resource, err)
	}

	var rows []map[string]any
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", resource, err)
	}
	return rows, nil
}

// FirstNonEmpty walks candidate resources in order and returns rows from the
// first one that answers with data. Candidates that error or come back empty
// are skipped. When every candidate succeeds but none has rows, the first
// empty success wins with nil rows; when every candidate fails, the last
// error surfaces.
func (c *Client) FirstNonEmpty(ctx context.Context, resources []string, build func(resource string) *Query) ([]map[string]any, string, error) {
	if !c.Configured() {
		return nil, "", usecase.ErrBackendNotConfigured
	}

	var firstEmptyResource string
	var lastErr error
	for _, resource := range resources {
		resource = strings.TrimSpace(resource)
		if resource == "" {
			continue
		}

		rows, err := c.GetRows(ctx, resource, build(resource))
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", ctx.Err()
			}
			lastErr = err
			c.logger.WarnContext(ctx, "resource candidate failed, trying next", "resource", resource, "error", err)
			continue
		}
		if len(rows) == 0 {
			if firstEmptyResource == "" {
				firstEmptyResource = resource
			}
			continue
		}
		return rows, resource, nil
	}

	if firstEmptyResource != "" {
		return nil, firstEmptyResource, nil
	}
	if lastErr != nil {
		return nil, "", lastErr
	}
	return nil, "", fmt.Errorf("no candidate resources to query")
}

func (c *Client) doJSON(ctx context.Context, resource string, query *Query) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "postgrest circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: data backend is temporarily unavailable", usecase.ErrUpstream)
		}
	}

	fullURL := c.baseURL + "/rest/v1/" + resource
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errPostgrestTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("apikey", c.serviceKey)
		req.Header.Set("authorization", "Bearer "+c.serviceKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errPostgrestTransient, sanitizeSensitiveText(err.Error(), c.serviceKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errPostgrestTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: backend status=%d body=%s", errPostgrestTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("backend status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("backend request failed")
	}
	c.logger.WarnContext(ctx, "postgrest request failed", "url", redactRequestURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return body
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return apikeyParamRegex.ReplaceAllString(value, "apikey=REDACTED")
}

func redactRequestURL(fullURL string) string {
	return apikeyParamRegex.ReplaceAllString(fullURL, "apikey=REDACTED")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
