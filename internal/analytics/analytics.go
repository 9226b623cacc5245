// Package analytics implements the opt-in usage event client. Events
// are gated twice: a build-time API key must be compiled in, and the
// user must have consented. Either gate being off turns every call
// into a no-op; Track is always safe to invoke.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"agentdeck/internal/errors"
)

// apiKey is injected at build time via
// -ldflags "-X agentdeck/internal/analytics.apiKey=...". Without it the
// client stays permanently disabled.
var apiKey string

const defaultEndpoint = "https://telemetry.agentdeck.dev/v1/events"

// Event is one tracked usage event.
type Event struct {
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Client sends usage events. The zero value is a disabled client; use
// New and Init.
type Client struct {
	endpoint string
	key      string
	http     *http.Client
	log      *slog.Logger

	mu      sync.Mutex
	userID  string
	inited  bool
	enabled bool
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the event endpoint.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// withKey is test-only: the build-time key gate made injectable.
func withKey(key string) Option {
	return func(c *Client) { c.key = key }
}

// New creates an uninitialized client. Nothing is sent until Init.
func New(log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		key:      apiKey,
		http:     &http.Client{Timeout: 5 * time.Second},
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewUserID generates a random anonymous user identifier.
func NewUserID() string {
	return uuid.NewString()
}

// Init records the user identity and consent. Calling Init again
// replaces both. A client without a build-time key stays disabled no
// matter what enabled says.
func (c *Client) Init(userID string, enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.inited = true
	c.enabled = enabled
}

// SetEnabled flips user consent at runtime. It has no effect before
// Init and cannot override a missing key.
func (c *Client) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inited {
		return
	}
	c.enabled = enabled
}

// Active reports whether events would currently be transmitted.
func (c *Client) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active()
}

func (c *Client) active() bool {
	return c.key != "" && c.inited && c.enabled
}

// Track sends one event when both gates are on. Failures are logged at
// debug level and never surface to the caller: analytics must not
// affect the user's operation.
func (c *Client) Track(ctx context.Context, name string, props map[string]string) {
	c.mu.Lock()
	if !c.active() {
		c.mu.Unlock()
		return
	}
	ev := Event{
		Name:       name,
		UserID:     c.userID,
		Timestamp:  time.Now().UTC(),
		Properties: props,
	}
	c.mu.Unlock()

	if err := c.send(ctx, ev); err != nil && c.log != nil {
		c.log.Debug("analytics event dropped", "event", name, "error", err)
	}
}

func (c *Client) send(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encoding event")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building event request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "sending event")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return errors.Newf("event endpoint returned %s", resp.Status)
	}
	return nil
}
