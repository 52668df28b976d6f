package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/time/rate"

	appconfig "astroshield/config"
	"astroshield/logger"
)

// APIError marks a failed NEO API request: transport errors, non-2xx
// statuses, and malformed payloads all surface as APIError so the resolver
// can substitute the builtin catalog.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nasa api %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client fetches near-Earth-object data from the NASA NEO REST service.
// Lookup and browse responses are cached for the client's lifetime; catalog
// data changes on the timescale of days, not request traffic, so entries
// are never evicted or refreshed. Concurrent requests may race on cache
// population, which is harmless because the entries are value-equal.
type Client struct {
	cfg        appconfig.NASASourceConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Log

	mu           sync.RWMutex
	neoCache     map[string]*NEOPayload
	catalogCache map[catalogKey][]BrowseObject
}

type catalogKey struct {
	page int
	size int
}

// NewClient creates a NASA NEO client with a fixed request timeout and a
// request-rate limiter sized from configuration.
func NewClient(cfg appconfig.NASASourceConfig) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = "DEMO_KEY"
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: userAgentTransport{
			agent: "astroshield",
			base:  http.DefaultTransport,
		},
	}

	client := &Client{
		cfg:          cfg,
		httpClient:   httpClient,
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		log:          logger.GetLogger(),
		neoCache:     make(map[string]*NEOPayload),
		catalogCache: make(map[catalogKey][]BrowseObject),
	}

	client.log.WithComponent("nasa_reader").WithFields(logger.Fields{
		"base_url": cfg.BaseURL,
		"timeout":  cfg.Timeout,
		"rps":      rps,
	}).Info("nasa client initialized")

	return client
}

// FetchNEO returns the raw NEO payload for the requested asteroid id,
// serving repeat lookups from the cache.
func (c *Client) FetchNEO(ctx context.Context, asteroidID string) (*NEOPayload, error) {
	c.mu.RLock()
	cached, ok := c.neoCache[asteroidID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var payload NEOPayload
	if err := c.requestJSON(ctx, "/neo/"+url.PathEscape(asteroidID), nil, &payload); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.neoCache[asteroidID] = &payload
	c.mu.Unlock()
	return &payload, nil
}

// Browse returns one page of the NEO catalog, cached by (page, size).
func (c *Client) Browse(ctx context.Context, page, size int) ([]BrowseObject, error) {
	key := catalogKey{page: page, size: size}
	c.mu.RLock()
	cached, ok := c.catalogCache[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var payload browseResponse
	if err := c.requestJSON(ctx, "/neo/browse", params, &payload); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.catalogCache[key] = payload.NearEarthObjects
	c.mu.Unlock()
	return payload.NearEarthObjects, nil
}

// requestJSON performs one GET against the NEO service with the api key
// attached and decodes the JSON body. Every failure mode is wrapped in an
// APIError; there is no retry, only fallback at the resolver layer.
func (c *Client) requestJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &APIError{Op: path, Err: err}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.cfg.APIKey)

	reqURL := c.cfg.BaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &APIError{Op: path, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: path, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
