package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"scan-service/config"
)

// Typed failures the scanner distinguishes between.
var (
	ErrNotFound = errors.New("product not found in Open Food Facts")
	ErrTimeout  = errors.New("Open Food Facts request timed out")
)

type cacheEntry struct {
	payload map[string]any
	ts      time.Time
}

// Client fetches product payloads from the Open Food Facts v2 API.
// Responses are cached in memory for a configurable TTL; a cache hit never
// touches the network.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	ttl       time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.OFFBaseURL,
		userAgent: cfg.OFFUserAgent,
		client:    &http.Client{Timeout: time.Duration(cfg.OFFTimeoutSec) * time.Second},
		ttl:       time.Duration(cfg.OFFCacheTTLSec) * time.Second,
		cache:     make(map[string]cacheEntry),
	}
}

// FetchProduct retrieves the raw payload for a barcode. The payload shape
// is whatever the API returns; callers normalize it. Returns ErrNotFound
// when the API reports no product, ErrTimeout on deadline, and a wrapped
// error for other upstream failures.
func (c *Client) FetchProduct(ctx context.Context, barcode string) (map[string]any, error) {
	if barcode == "" {
		return nil, ErrNotFound
	}

	if payload, ok := c.cacheGet(barcode); ok {
		return payload, nil
	}

	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build Open Food Facts request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("Open Food Facts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Open Food Facts HTTP %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid JSON from Open Food Facts: %w", err)
	}

	// The v2 API reports status 1 for found; some misses omit the product
	// object instead.
	if fmt.Sprint(payload["status"]) != "1" && payload["product"] == nil {
		return nil, ErrNotFound
	}

	c.cacheSet(barcode, payload)
	return payload, nil
}

func (c *Client) cacheGet(key string) (map[string]any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.ts) > c.ttl {
		delete(c.cache, key)
		return nil, false
	}
	return entry.payload, true
}

func (c *Client) cacheSet(key string, payload map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{payload: payload, ts: time.Now()}
}
