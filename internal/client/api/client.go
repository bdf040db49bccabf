package api

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/logging"
)

// versionPrefix is prepended to every endpoint path under the base URL.
const versionPrefix = "/api/v1"

// Client talks to the MycoMarket API. Construct it with New; the zero
// value is not usable.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Manager
	log      logging.Logger
	limiter  *rate.Limiter

	// refreshGroup coalesces concurrent token refreshes: when several
	// requests hit 401 at once, one refresh call serves all of them.
	refreshGroup singleflight.Group

	// onSessionExpired fires after an irrecoverable refresh failure, once
	// local state has been cleared. The CLI uses it to drop to the
	// logged-out prompt; other hosts supply their own.
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit caps outgoing requests at rps per second (burst 2×rps).
// Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), int(2*rps)+1)
		}
	}
}

// WithSessionExpiredHook installs the logged-out callback.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New returns a Client for the API at baseURL (scheme + host, without the
// version prefix), authorizing requests through the given session manager.
func New(baseURL string, sessions *session.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		sessions: sessions,
		log:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
