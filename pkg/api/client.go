// Package api is the typed HTTP client for the event scraper backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer credential, or "" when anonymous.
type TokenSource interface {
	Token() string
}

// Error is a server-reported failure. Message carries the response body's
// message field verbatim when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the backend. Requests are sent once, never retried, and a
// 401 is returned to the caller rather than clearing the session here.
type Client struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithTokenSource attaches credentials to outbound requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.Tokens = ts }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 60 * time.Second,
				}).DialContext,
				MaxIdleConns:    100,
				IdleConnTimeout: 90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path, rawQuery string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	u := c.BaseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
			payload.Message = "request failed"
		}
		return &Error{Status: resp.StatusCode, Message: payload.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// PublicEvents calls GET /api/events, the unauthenticated feed.
func (c *Client) PublicEvents(ctx context.Context) ([]EventRecord, error) {
	var out struct {
		Events []EventRecord `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// Me calls GET /api/auth/me and returns the verified identity.
func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out struct {
		User *Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", "", nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, &Error{Status: http.StatusUnauthorized, Message: "no user in identity response"}
	}
	return out.User, nil
}

// DashboardEvents calls GET /api/dashboard/events with the given query.
func (c *Client) DashboardEvents(ctx context.Context, q Query) ([]EventRecord, Pagination, error) {
	var out struct {
		Events     []EventRecord `json:"events"`
		Pagination Pagination    `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/events", q.Encode(), nil, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Events, out.Pagination, nil
}

// DashboardStats calls GET /api/dashboard/stats. Only the city filter applies.
func (c *Client) DashboardStats(ctx context.Context, q Query) (*Stats, error) {
	raw := ""
	if q.City != "" {
		raw = "city=" + url.QueryEscape(q.City)
	}
	var out struct {
		Stats *Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", raw, nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

// ImportEvent calls POST /api/dashboard/events/{id}/import with an empty body.
func (c *Client) ImportEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/dashboard/events/"+id+"/import", "", struct{}{}, nil)
}

// RequestTickets calls POST /api/ticket-requests.
func (c *Client) RequestTickets(ctx context.Context, tr TicketRequest) error {
	return c.do(ctx, http.MethodPost, "/api/ticket-requests", "", tr, nil)
}

// GoogleLoginURL is the browser entry point for the OAuth flow.
func (c *Client) GoogleLoginURL() string {
	return c.BaseURL + "/api/auth/google"
}
