package xano

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/xanolabs/xano-mcp/internal/logging"
)

// globalAPI is the account-level meta API, used only to enumerate instances.
// Everything else goes through a per-instance domain.
const globalAPI = "https://app.xano.com/api:meta"

const errorSnippetLimit = 500

type Config struct {
	// Token is the bearer token attached to every request.
	Token string
	// BaseDomain is appended to bare instance names ("<name>.<BaseDomain>").
	// Instance names that already contain a dot are used as-is.
	BaseDomain string
	// BaseURL, when set, overrides both the global and per-instance meta API
	// bases. Used for self-hosted deployments and in tests.
	BaseURL string
	Timeout time.Duration
	Logger  logging.Logger
}

// Client issues one HTTPS request per call against the Xano meta API and
// hands back the raw JSON payload. It holds no mutable state, so a single
// Client is safe for concurrent use.
type Client struct {
	baseDomain string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(cfg Config) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := oauth2.NewClient(context.Background(), src)
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}

	baseDomain := cfg.BaseDomain
	if baseDomain == "" {
		baseDomain = "n7c.xano.io"
	}

	return &Client{
		baseDomain: baseDomain,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// InstanceDomain resolves an instance name to its full domain.
func (c *Client) InstanceDomain(instance string) string {
	if strings.Contains(instance, ".") {
		return instance
	}
	return instance + "." + c.baseDomain
}

func (c *Client) metaBase(instance string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + c.InstanceDomain(instance) + "/api:meta"
}

func (c *Client) globalBase() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return globalAPI
}

// request describes a single call relative to a meta API base.
type request struct {
	method  string
	path    []string
	query   url.Values
	headers map[string]string
	body    any
}

// get is shorthand for a bodyless GET request.
func get(path ...string) request {
	return request{method: http.MethodGet, path: path}
}

// do performs the request and returns the response payload as raw JSON.
// Non-2xx responses come back as *APIError; the body is never retried.
func (c *Client) do(ctx context.Context, base string, r request) (json.RawMessage, error) {
	target, err := url.JoinPath(base, r.path...)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("xano request", "method", r.method, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(err, "xano request failed", "method", r.method, "url", target)
		return nil, c.annotateError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("xano response", "method", r.method, "url", target, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:  r.method,
			Path:    requestPath(r.path),
			Status:  resp.StatusCode,
			Message: errorMessage(payload),
		}
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("parse response from %s %s: not valid JSON", r.method, requestPath(r.path))
	}
	return json.RawMessage(payload), nil
}

func (c *Client) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("xano api: request timed out after %s: %w", c.httpClient.Timeout, err)
	}
	return fmt.Errorf("xano api: %w", err)
}

func requestPath(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// errorMessage pulls a human-readable message out of an upstream error body.
// Xano error payloads carry a "message" field; anything else is truncated
// and passed along untouched.
func errorMessage(payload []byte) string {
	if msg := gjson.GetBytes(payload, "message"); msg.Exists() && msg.Str != "" {
		return msg.Str
	}
	snippet := strings.TrimSpace(string(payload))
	if len(snippet) > errorSnippetLimit {
		snippet = snippet[:errorSnippetLimit]
	}
	return snippet
}

// envelope rewraps a raw payload under a single named key, to keep result
// shapes stable for the host regardless of upstream envelope drift.
func envelope(key string, payload json.RawMessage) json.RawMessage {
	wrapped := make([]byte, 0, len(payload)+len(key)+4)
	wrapped = append(wrapped, '{', '"')
	wrapped = append(wrapped, key...)
	wrapped = append(wrapped, '"', ':')
	wrapped = append(wrapped, payload...)
	wrapped = append(wrapped, '}')
	return wrapped
}
