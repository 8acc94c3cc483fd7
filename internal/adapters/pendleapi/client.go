// Package pendleapi talks to the Pendle hosted API: the core analytics
// endpoints and the convert endpoints that assemble unsigned calldata.
package pendleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PendleAgentAI/pendle-agent-sdk/internal/adapters/cache"
	"github.com/PendleAgentAI/pendle-agent-sdk/pkg/types"
)

const (
	// DefaultBaseURL is the hosted API root. The core analytics service
	// lives under /core and the convert (hosted SDK) service under
	// /convert.
	DefaultBaseURL = "https://api-v2.pendle.finance"

	// DefaultCacheTTL matches the refresh cadence of the hosted analytics.
	DefaultCacheTTL = 60 * time.Second

	requestTimeout = 30 * time.Second
)

// Config configures the hosted API client. Zero fields take defaults;
// a nil Cache disables caching entirely.
type Config struct {
	BaseURL   string
	Cache     cache.Cache
	CacheTTL  time.Duration
	UserAgent string
}

// Client is a thin HTTP client over the hosted API. Analytics GETs are
// cached for CacheTTL; convert POSTs are never cached because every
// quote must reflect the current market state.
type Client struct {
	http       *http.Client
	coreURL    string
	convertURL string
	cache      cache.Cache
	cacheTTL   time.Duration
	userAgent  string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NoOp{}
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http:       &http.Client{Timeout: requestTimeout},
		coreURL:    base + "/core",
		convertURL: base + "/convert",
		cache:      cfg.Cache,
		cacheTTL:   cfg.CacheTTL,
		userAgent:  cfg.UserAgent,
	}
}

// getJSON fetches path with params and decodes the body into out.
// Responses are cached under the full URL; url.Values encodes params in
// sorted key order, so identical queries always share a cache entry.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.coreURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	if body, ok := c.cache.Get(ctx, endpoint); ok {
		return json.Unmarshal([]byte(body), out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pendle api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, body)
	}

	c.cache.Set(ctx, endpoint, string(body), c.cacheTTL)
	return json.Unmarshal(body, out)
}

// postJSON sends payload to a convert endpoint and decodes the body
// into out. Never cached.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.convertURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pendle api request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// apiError turns a non-2xx response into a classified error. Rejected
// inputs come back as 4xx; anything mentioning insufficient liquidity
// keeps that classification regardless of status.
func apiError(status int, body []byte) error {
	msg := extractErrorMessage(body)
	if strings.Contains(strings.ToLower(msg), "insufficient") {
		return types.NewInsufficientLiquidityError(msg, "", nil)
	}
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return &types.Error{
			Kind:    types.KindInvalidParameters,
			Message: fmt.Sprintf("pendle api rejected the request: %s", msg),
		}
	default:
		return types.NewContractError(fmt.Sprintf("pendle api returned status %d: %s", status, msg), nil)
	}
}

func extractErrorMessage(body []byte) string {
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg, ok := parsed["message"].(string); ok && msg != "" {
			return msg
		}
		if errMsg, ok := parsed["error"].(string); ok && errMsg != "" {
			return errMsg
		}
	}
	return string(body)
}

// flexString decodes a JSON string or number as a string. The hosted
// API is not consistent about which one it uses for amounts, and large
// integers must survive without float rounding, so number tokens are
// kept verbatim.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

func (f flexString) String() string { return string(f) }
