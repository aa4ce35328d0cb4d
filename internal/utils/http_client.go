package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// userAgent identifies the uploader in Hub request logs.
const userAgent = "comfy-hf-uploader/1.0; go-resty"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the
// uploader's user agent and no retries. Each call returns an independent
// client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://huggingface.co/api/whoami-v2")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}

// WithTimeout bounds every request; zero keeps the transport default
// (no timeout).
func (c *HTTPClient) WithTimeout(timeout time.Duration) *HTTPClient {
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// WithDebugLog logs method, URL, status and latency of every response at
// debug level. Request bodies are never logged, they may carry file content.
func (c *HTTPClient) WithDebugLog(log zerolog.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("latency", resp.Time()).
			Msg("hub response")
		return nil
	})
	return c
}
