package api

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

	"github.com/angelmondragon/shopfront-client/pkg/config"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

const errorBodyReadLimit int64 = 4096

// HeaderIdempotencyKey carries the per-attempt key minted for order creation.
const HeaderIdempotencyKey = "Idempotency-Key"

var errBaseURLRequired = errors.New("api base url is required")

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty credential means the request goes out unauthenticated.
type TokenSource interface {
	Credential() string
}

// Client wraps the backend gateway with centralized auth, logging, and
// error mapping. Every admin and storefront collaborator is built on it.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func()
	logger         *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource attaches the session credential to outgoing requests.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithUnauthorizedHook registers the global reaction to a 401 response.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

// NewClient builds the gateway client from configuration.
func NewClient(cfg config.APIConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}

	return client, nil
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

// do executes one backend call and decodes the JSON response into dest.
// dest may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, req request, dest any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "api client not configured")
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(req.path, "/")
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		payload = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Credential()); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	c.log(ctx, "request", req.method, req.path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s %s failed", req.method, req.path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.mapErrorResponse(ctx, req, resp)
	}

	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("decode %s %s response", req.method, req.path))
	}
	return nil
}

// errorPayload mirrors the backend's error envelope. Fields the backend
// omits simply stay empty.
type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details,omitempty"`
	} `json:"error"`
	Message string `json:"message,omitempty"`
}

func (c *Client) mapErrorResponse(ctx context.Context, req request, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)
	message := payload.Error.Message
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}

	code := domainCodeForStatus(resp.StatusCode)
	if isInsufficientStock(resp.StatusCode, payload.Error.Code, message) {
		code = pkgerrors.CodeInsufficientStock
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	c.log(ctx, "error", req.method, req.path)

	err := pkgerrors.Wrap(code, fmt.Errorf("status %d: %s", resp.StatusCode, message), fmt.Sprintf("%s %s failed", req.method, req.path))
	if payload.Error.Details != nil && pkgerrors.MetadataFor(code).DetailsAllowed {
		err = err.WithDetails(payload.Error.Details)
	}
	return err
}

func domainCodeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.CodeValidation
	default:
		if status >= 400 && status < 500 {
			return pkgerrors.CodeValidation
		}
		return pkgerrors.CodeDependency
	}
}

func isInsufficientStock(status int, backendCode, message string) bool {
	if status != http.StatusConflict && status != http.StatusUnprocessableEntity {
		return false
	}
	if strings.EqualFold(backendCode, "INSUFFICIENT_STOCK") {
		return true
	}
	return strings.Contains(strings.ToLower(message), "stock")
}

func (c *Client) log(ctx context.Context, phase, method, path string) {
	if c == nil || c.logger == nil {
		return
	}
	ctx = c.logger.WithFields(ctx, map[string]any{
		"phase":  phase,
		"method": method,
		"path":   path,
	})
	if phase == "error" {
		c.logger.Warn(ctx, "backend request failed")
		return
	}
	c.logger.Info(ctx, "backend request")
}
