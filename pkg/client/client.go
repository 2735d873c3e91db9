// Package client talks to the marketplace REST API on behalf of one signed-in user.
//
// Reads are retried once on a transport failure or a 5xx answer. Mutations are sent exactly
// once and then the affected resource is read back, so every mutation returns server state
// as observed after the change.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hyperlocal/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	"github.com/pkg/errors"
)

const (
	DefaultTimeout = 10 * time.Second
	apiPrefix      = "/api"
	maxErrorBody   = 1 << 16
)

// HTTPDoer performs HTTP requests; *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Client)

// WithHTTPClient replaces the default client, including its timeout.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.http = doer }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRetryDelay sets the pause before a read is retried.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

type Client struct {
	baseURL    string
	session    *Session
	http       HTTPDoer
	timeout    time.Duration
	retryDelay time.Duration
	log        *slog.Logger
}

// New builds a client for the server at baseURL (without the /api prefix). A nil session
// starts an in-memory one.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session = NewSession(nil)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		timeout:    DefaultTimeout,
		retryDelay: 200 * time.Millisecond,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.read(ctx, request{method: http.MethodGet, path: path, query: query, auth: true}, out)
}

// read sends an idempotent request, retrying once.
func (c *Client) read(ctx context.Context, r request, out any) error {
	err := c.do(ctx, r, out)
	if !retryable(err) || ctx.Err() != nil {
		return err
	}

	c.log.WarnContext(ctx, "retrying read", "path", r.path, "error", err)
	select {
	case <-ctx.Done():
		return err
	case <-time.After(c.retryDelay):
	}
	return c.do(ctx, r, out)
}

// mutate sends a request exactly once.
func (c *Client) mutate(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, request{method: method, path: path, body: body, auth: true}, out)
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func retryable(err error) bool {
	if err == nil {
		return false
	}
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status >= http.StatusInternalServerError
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &transportError{err: errors.Wrapf(err, "%s %s", r.method, r.path)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	switch v := out.(type) {
	case nil:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case *[]byte:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return &transportError{err: errors.Wrap(err, "read body")}
		}
		*v = b
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decode %s %s", r.method, r.path)
		}
		return nil
	}
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL + apiPrefix + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.auth {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func decodeError(resp *http.Response) error {
	var body servers.Error
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &body)
	return newError(resp.StatusCode, body)
}

// idPath renders a path with one uuid segment, e.g. idPath("/orders/%s/accept", id).
func idPath(format string, id uuid.UUID) (string, error) {
	p, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id.String())
	if err != nil {
		return "", errors.Wrap(err, "style id")
	}
	return strings.Replace(format, "%s", p, 1), nil
}

func cmsPath(key string) (string, error) {
	p, err := runtime.StyleParamWithLocation("simple", false, "key", runtime.ParamLocationPath, key)
	if err != nil {
		return "", errors.Wrap(err, "style key")
	}
	return "/cms/" + p, nil
}
