// Package api is the JSON client for the rotation service. Every endpoint
// wraps its payload in the {status, data, message} envelope; this package
// decodes the envelope once and hands callers either typed data or an
// *Error carrying the service's message verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request. The service is a small LAN/VPS
// deployment; anything slower than this is effectively down.
const DefaultTimeout = 10 * time.Second

const basePath = "/api"

type Client struct {
	serverURL string
	http      *http.Client
	timeout   time.Duration

	// session is the "name=value" cookie established by Login. Kept as a
	// plain string so it round-trips through the config file.
	session string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithSession(cookie string) Option {
	return func(c *Client) { c.session = cookie }
}

func New(serverURL string, opts ...Option) *Client {
	c := &Client{
		serverURL: strings.TrimRight(strings.TrimSpace(serverURL), "/"),
		http:      &http.Client{},
		timeout:   DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) ServerURL() string { return c.serverURL }

// Session returns the current session cookie ("name=value"), empty when
// not logged in.
func (c *Client) Session() string { return c.session }

func (c *Client) SetSession(cookie string) { c.session = strings.TrimSpace(cookie) }

// Error is a business failure reported by the service envelope
// (status == "error"). The message is the service's own wording and is
// shown to the user unchanged.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return "request failed"
	}
	return e.Message
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and settles it: transport and decode problems come
// back as wrapped errors, an error envelope comes back as *Error, and a
// success envelope's data is unmarshalled into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.serverURL == "" {
		return fmt.Errorf("no server URL configured")
	}
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+basePath+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != "" {
		req.Header.Set("Cookie", c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.captureSession(resp)

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response (HTTP %d): %w", method, path, resp.StatusCode, err)
	}
	if env.Status != "success" {
		msg := env.Message
		if strings.TrimSpace(msg) == "" {
			msg = fmt.Sprintf("request failed (HTTP %d)", resp.StatusCode)
		}
		return &Error{Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode data: %w", method, path, err)
	}
	return nil
}

// captureSession remembers the session cookie the service sets on login so
// later requests (and the config file) carry it.
func (c *Client) captureSession(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.Value == "" {
			continue
		}
		c.session = ck.Name + "=" + ck.Value
		return
	}
}
