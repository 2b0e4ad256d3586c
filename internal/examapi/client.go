package examapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/examdesk/examdesk/pkg/model"
)

// ErrUnauthenticated marks a request the exam service rejected with
// HTTP 401. By the time a caller sees this error the adapter has
// already run its teardown hook; the caller only has to stop and send
// the user to the public entry point.
var ErrUnauthenticated = errors.New("examapi: unauthenticated")

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty string means no Authorization header is sent.
type TokenSource func() string

// StaticToken returns a TokenSource that always yields tok.
func StaticToken(tok string) TokenSource {
	return func() string { return tok }
}

// Client talks to the remote exam service. All business logic (exam
// scheduling, question persistence, scoring) lives on the remote side;
// the client decorates requests with the session token and maps
// failures onto the error taxonomy. Requests are never retried or
// queued: each call either succeeds, fails with its original error, or
// fails and additionally triggers the 401 teardown hook.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	// OnUnauthorized runs once per 401 response, before the error is
	// returned to the caller. The session/auth layers hook their
	// storage teardown here so no call site has to duplicate it.
	OnUnauthorized func()
	Logger         *slog.Logger
}

// New creates a client for the exam service at baseURL.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

// WithToken returns a shallow copy of c that authenticates with tok.
// The copy shares the underlying http.Client.
func (c *Client) WithToken(tok string) *Client {
	dup := *c
	dup.Tokens = StaticToken(tok)
	return &dup
}

// do performs a single request. out, when non-nil, receives the decoded
// JSON body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Tokens != nil {
		if tok := c.Tokens(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log().Debug("api request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// A response arriving after the caller's context is gone must
		// be ignorable, not acted on.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log().Debug("api response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthenticated)
	}

	if resp.StatusCode >= 400 {
		var apiErr model.APIError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return &apiErr
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
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

func (c *Client) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
