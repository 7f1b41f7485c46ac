package client

import (
	"context"
	"net/http"
	"time"

	"github.com/nurpath/reflect-client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the typed HTTP surface of the Nurpath backend. It holds no
// user state; the Engine layers profile/session state on top of it.
type Client struct {
	baseURL string
	http    *http.Client
	retry   api.RetryPolicy
}

// New constructs a Client bound to baseURL. Additional options can be
// provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// NewFromConfig constructs a Client whose HTTP timeout and retry policy come
// from cfg (see LoadConfig). Explicit options take precedence.
func NewFromConfig(baseURL string, cfg Config, opts ...Option) *Client {
	base := make([]Option, 0, 2+len(opts))
	if cfg.HTTPTimeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	base = append(base, WithRetry(cfg.MaxGetAttempts, cfg.BaseBackoff, cfg.MaxInterval))
	return New(baseURL, append(base, opts...)...)
}

// --------------------------------------------------------------------
// Archive operations - delegated to internal/api
// --------------------------------------------------------------------

// ListKhutbahs retrieves the user's archived khutbahs.
func (c *Client) ListKhutbahs(ctx context.Context, userID string) ([]Khutbah, error) {
	return api.GetKhutbahs(ctx, c.http, c.baseURL, userID, c.retry)
}

// SearchKhutbahs runs a free-text search over the user's archive.
func (c *Client) SearchKhutbahs(ctx context.Context, userID, query string) ([]Khutbah, error) {
	return api.SearchKhutbahs(ctx, c.http, c.baseURL, userID, query, c.retry)
}

// ToggleFavorite flips the favorite flag on a khutbah and returns the new value.
func (c *Client) ToggleFavorite(ctx context.Context, userID, khutbahID string) (bool, error) {
	return api.ToggleFavorite(ctx, c.http, c.baseURL, userID, khutbahID)
}

// --------------------------------------------------------------------
// Progress operations - delegated to internal/api
// --------------------------------------------------------------------

// UserStats retrieves the authoritative profile snapshot.
func (c *Client) UserStats(ctx context.Context, userID string) (*UserStatsResponse, error) {
	return api.GetUserStats(ctx, c.http, c.baseURL, userID, c.retry)
}

// ReflectionsCount retrieves the lifetime reflection count.
func (c *Client) ReflectionsCount(ctx context.Context, userID string) (*ReflectionsResponse, error) {
	return api.GetReflections(ctx, c.http, c.baseURL, userID, c.retry)
}

// StartReflection requests a reflection prompt for the user.
func (c *Client) StartReflection(ctx context.Context, userID string) (*ReflectResponse, error) {
	return api.StartReflection(ctx, c.http, c.baseURL, userID)
}

// SaveReflection submits a completed reflection. idempotencyKey may be empty.
func (c *Client) SaveReflection(ctx context.Context, req SaveReflectionRequest, idempotencyKey string) (*SaveReflectionResponse, error) {
	return api.SaveReflection(ctx, c.http, c.baseURL, req, idempotencyKey)
}

// SetIntention records the user's weekly reflections goal.
func (c *Client) SetIntention(ctx context.Context, userID string, goal int) (*MessageResponse, error) {
	return api.SetIntention(ctx, c.http, c.baseURL, userID, goal)
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Login authenticates a user by email and password.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, req)
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	return api.Signup(ctx, c.http, c.baseURL, req)
}

// ChangePassword rotates a user's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*MessageResponse, error) {
	return api.ChangePassword(ctx, c.http, c.baseURL, req)
}
