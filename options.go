package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpath/reflect-client/internal/api"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Mostly useful in tests
// that bind the SDK to an httptest server's client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithRetry bounds backoff retries of idempotent GETs. Zero fields keep
// their defaults.
func WithRetry(maxAttempts int, baseBackoff, maxInterval time.Duration) Option {
	return func(c *Client) error {
		if maxAttempts < 0 {
			return fmt.Errorf("max attempts must be >= 0")
		}
		c.retry = api.RetryPolicy{
			MaxAttempts: maxAttempts,
			BaseBackoff: baseBackoff,
			MaxInterval: maxInterval,
		}
		return nil
	}
}

// EngineOption configures an Engine during construction in NewEngine.
type EngineOption func(*Engine)

// WithEvents installs the consumer's notification sink.
func WithEvents(ev Events) EngineOption {
	return func(e *Engine) {
		if ev != nil {
			e.events = ev
		}
	}
}

// WithLogger installs a zerolog logger; the default discards everything.
func WithLogger(l zerolog.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// WithClock replaces the engine's wall clock. Tests use it to pin the
// goal-setting window to a known weekday.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithConfig applies engine timing and retry settings, typically from
// LoadConfig.
func WithConfig(cfg Config) EngineOption {
	return func(e *Engine) { e.cfg = cfg }
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
