package marketplace

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"agentdeck/internal/errors"
)

// Client searches marketplace catalogs. With an endpoint configured it
// tries remote full-text search first and falls back to filtering the
// bundled catalog when the remote is unreachable; without one it serves
// the bundled catalog directly.
type Client struct {
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

// NewClient creates a marketplace client. endpoint may be empty.
func NewClient(endpoint string, log *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// WithHTTPClient swaps the transport, for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// List returns the full catalog for a kind.
func (c *Client) List(ctx context.Context, kind Kind) ([]Entry, error) {
	return c.Search(ctx, kind, "")
}

// Search queries a catalog. Remote errors degrade to the local filter;
// only a broken bundled catalog is a hard error.
func (c *Client) Search(ctx context.Context, kind Kind, query string) ([]Entry, error) {
	if c.endpoint != "" {
		entries, err := c.remoteSearch(ctx, kind, query)
		if err == nil {
			return entries, nil
		}
		c.log.Debug("remote marketplace search failed, using bundled catalog",
			"kind", kind, "error", err)
	}

	bundled, err := Bundled(kind)
	if err != nil {
		return nil, err
	}
	return Filter(bundled, query), nil
}

func (c *Client) remoteSearch(ctx context.Context, kind Kind, query string) ([]Entry, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parsing marketplace endpoint")
	}
	q := u.Query()
	q.Set("kind", string(kind))
	if query != "" {
		q.Set("q", query)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building marketplace request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "querying marketplace")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("marketplace returned %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decoding marketplace response")
	}
	for i := range entries {
		entries[i].Kind = kind
	}
	return entries, nil
}
