package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(5 * time.Second))
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes a client built by NewHTTPClient.
type HTTPClientOption func(c *resty.Client)

// WithTimeout bounds every request made by the client.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithInsecureTLS disables certificate verification. Only used against
// local development backends with self-signed certificates.
func WithInsecureTLS() HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}
}

// NewHTTPClient creates a new HTTPClient with an independent underlying
// resty.Client. Retries are disabled: every call is executed exactly once.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().SetRetryCount(0)
	for _, opt := range opts {
		opt(c)
	}
	return &HTTPClient{Client: c}
}
