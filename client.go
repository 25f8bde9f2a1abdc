package unifi

import (
	"net/http"
	"net/url"
	"time"

	"github.com/unifi-go/unifi/internal/httpclient"
	"github.com/unifi-go/unifi/internal/middleware"
	"github.com/unifi-go/unifi/internal/ratelimit"
	"github.com/unifi-go/unifi/observability"
)

const (
	// DefaultRateLimit is the default rate limit for the Network API (requests per minute).
	DefaultRateLimit = 1000

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageLimit is the page size used when a list call does not specify one.
	DefaultPageLimit = 25

	// apiKeyHeader is the authentication header name per the UniFi Network API.
	apiKeyHeader = "X-API-KEY"
)

// Client is a UniFi Network Integration API client.
// It is safe for concurrent use: all configuration is fixed at construction.
type Client struct {
	httpClient *httpclient.Client
	baseURL    *url.URL
	logger     observability.Logger
}

// ClientConfig holds configuration for the Network API client.
type ClientConfig struct {
	// BaseURL is the base URL of the integration API
	// (e.g., "https://192.168.1.1/proxy/network/integrations").
	BaseURL string

	// APIKey is the API key for authentication.
	APIKey string

	// InsecureSkipVerify disables TLS certificate verification
	// (useful for self-signed certs on local controllers).
	InsecureSkipVerify bool

	// HTTPClient is the HTTP client to use (optional).
	HTTPClient *http.Client

	// RateLimitPerMinute sets the client-side rate limit (defaults to 1000).
	// Set to a negative value to disable rate limiting.
	RateLimitPerMinute int

	// Timeout sets the HTTP client timeout.
	Timeout time.Duration

	// Logger receives structured request logs (optional, defaults to no-op).
	Logger observability.Logger

	// Metrics receives request metrics (optional, defaults to no-op).
	Metrics observability.MetricsRecorder
}

// New creates a new UniFi Network API client with default settings.
//
// Example:
//
//	client, err := unifi.New("https://unifi.local/proxy/network/integrations", "your-api-key")
func New(baseURL, apiKey string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithConfig creates a new UniFi Network API client with custom configuration.
// Invalid configuration is rejected here with a *ValidationError, before any
// network activity.
//
// Example:
//
//	client, err := unifi.NewWithConfig(&unifi.ClientConfig{
//	    BaseURL:            "https://unifi.local/proxy/network/integrations",
//	    APIKey:             "your-api-key",
//	    InsecureSkipVerify: true,
//	    RateLimitPerMinute: 500,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, &ValidationError{Field: "config", Reason: "config is required"}
	}
	if cfg.APIKey == "" {
		return nil, &ValidationError{Field: "API key", Reason: "API key is required"}
	}

	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	// Set defaults
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	// Create HTTP client if not provided
	baseClient := cfg.HTTPClient
	if baseClient == nil {
		baseClient = &http.Client{
			Timeout: timeout,
		}
	}

	// Build middleware chain: observability outermost, then rate limiting,
	// then authentication, with the TLS policy applied at the transport itself.
	mw := []httpclient.Middleware{
		middleware.Observability(logger, metrics),
	}

	if cfg.RateLimitPerMinute >= 0 {
		perMinute := cfg.RateLimitPerMinute
		if perMinute == 0 {
			perMinute = DefaultRateLimit
		}
		mw = append(mw, middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: ratelimit.PerMinute(perMinute),
			Logger:  logger,
			Metrics: metrics,
		}))
	}

	mw = append(mw, middleware.Auth(apiKeyHeader, cfg.APIKey))

	if cfg.InsecureSkipVerify {
		mw = append(mw, middleware.TLSConfig(middleware.InsecureSkipVerify()))
	}

	return &Client{
		httpClient: httpclient.New(
			httpclient.WithHTTPClient(baseClient),
			httpclient.WithMiddleware(mw...),
		),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// parseBaseURL validates that the configured base URL is a well-formed
// absolute HTTP(S) URL.
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, &ValidationError{Field: "base URL", Reason: "base URL is required"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ValidationError{Field: "base URL", Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &ValidationError{Field: "base URL", Reason: "URL must be absolute with an http or https scheme"}
	}
	if u.Host == "" {
		return nil, &ValidationError{Field: "base URL", Reason: "URL must include a host"}
	}

	return u, nil
}
