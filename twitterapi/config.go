package twitterapi

import (
	"net/http"
	"time"
)

// Config holds all configuration for the API client.
type Config struct {
	// Timeout bounds each HTTP request. Default: 30s.
	Timeout time.Duration

	// Transport is the base round tripper under the OAuth1 signer.
	// Default: http.DefaultTransport.
	Transport http.RoundTripper

	// PageSize is the count requested per friends/ids and followers/ids page.
	// Default: 5000, the endpoint maximum.
	PageSize int

	// MetricsHook is called on each API request for external metrics collection.
	// endpoint is the operation name, success and rateLimited indicate the outcome.
	MetricsHook func(endpoint string, success, rateLimited bool)
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *Config) defaults() {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxIDsPerPage {
		cfg.PageSize = maxIDsPerPage
	}
}
