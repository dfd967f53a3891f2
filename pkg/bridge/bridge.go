// Package bridge implements the HTTP client for the campus assistant
// backend. One Client wraps one configured endpoint, there is no ambient
// global state. Operations come in two flavors: structured ones returning
// decoded records plus an error, and text ones which collapse any failure
// into a single user-facing sentence fit for a chat or voice surface.
package bridge

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// DEFAULT configuration, materialized as bridgeConfig.json on first run.
var DEFAULT = Configurations{
	URL:       "https://backend.example.com",
	TimeoutMS: 12000,
}

type Configurations struct {
	// URL is the backend base URL, scheme included, no trailing slash
	URL string `json:"url"`
	// AdminToken authorizes the recent-enrollments listing. Optional,
	// also settable via the CAB_ADMIN_TOKEN environment variable.
	AdminToken string `json:"admin_token"`
	// TimeoutMS bounds every backend call. Zero means the 12s default.
	TimeoutMS int `json:"timeout_ms"`
}

type Client struct {
	mu         sync.RWMutex
	baseURL    string
	adminToken string
	timeout    time.Duration
	client     *http.Client
}

// New creates a Client for the configured endpoint. The zero timeout
// falls back to DefaultTimeout.
func New(conf Configurations) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(conf.URL, "/"),
		adminToken: conf.AdminToken,
		timeout:    time.Duration(conf.TimeoutMS) * time.Millisecond,
		client:     &http.Client{},
	}
}

func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL swaps the backend endpoint. Calls already dispatched keep
// the URL they were built with, calls issued afterwards use the new one.
func (c *Client) SetBaseURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimSuffix(url, "/")
}

func (c *Client) SetAdminToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adminToken = token
}

func (c *Client) getAdminToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adminToken
}
