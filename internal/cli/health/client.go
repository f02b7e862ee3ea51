// Package health queries a running server's HTTP API for the status command.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/marmos91/opendis/pkg/api/handlers"
	"github.com/marmos91/opendis/pkg/recorder"
)

// Response is the envelope of GET /health.
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Data      struct {
		Service   string `json:"service"`
		Version   string `json:"version"`
		StartedAt string `json:"started_at"`
		Uptime    string `json:"uptime"`
		UptimeSec int64  `json:"uptime_sec"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

// Client calls the API of one server.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client for base, e.g. "http://localhost:8080".
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, v any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, fmt.Errorf("invalid response from %s: %w", path, err)
	}
	return resp.StatusCode, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (Response, error) {
	var r Response
	_, err := c.get(ctx, "/health", &r)
	return r, err
}

// Stats calls GET /stats.
func (c *Client) Stats(ctx context.Context) (handlers.StatsResponse, error) {
	var r struct {
		Data  handlers.StatsResponse `json:"data"`
		Error string                 `json:"error"`
	}
	code, err := c.get(ctx, "/stats", &r)
	if err != nil {
		return r.Data, err
	}
	if code != http.StatusOK {
		return r.Data, fmt.Errorf("stats unavailable: %s", r.Error)
	}
	return r.Data, nil
}

// Sessions calls GET /sessions.
func (c *Client) Sessions(ctx context.Context) ([]recorder.SessionInfo, error) {
	var r struct {
		Data  []recorder.SessionInfo `json:"data"`
		Error string                 `json:"error"`
	}
	code, err := c.get(ctx, "/sessions", &r)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("sessions unavailable (HTTP %d)", code)
	}
	return r.Data, nil
}
