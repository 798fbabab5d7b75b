// Package apiclient is the single point of outbound access to the REST
// backend. It attaches the stored bearer token to every request and
// transparently recovers from an expired access token with exactly one
// refresh attempt per failing request.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
)

// RefreshPath is the token-refresh endpoint. A 401 from this path is never
// retried, which keeps the recovery from looping.
const RefreshPath = "/auth/token/refresh/"

// StatusError is returned for any response with status >= 400.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == internal.ErrUnauthorized && e.Code == http.StatusUnauthorized
}

type Client struct {
	baseURL       string
	httpClient    *http.Client
	creds         credentials.Store
	logger        internal.Logger
	onAuthExpired func()

	// mockMode short-circuits every request after a fixed delay. Early
	// prototyping aid, independent from the mockdata providers.
	mockMode  bool
	mockDelay time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthExpiredHook registers the callback fired when the session cannot
// be recovered; the UI uses it to navigate to the login page.
func WithAuthExpiredHook(fn func()) Option {
	return func(c *Client) { c.onAuthExpired = fn }
}

func WithMockMode(delay time.Duration) Option {
	return func(c *Client) {
		c.mockMode = true
		c.mockDelay = delay
	}
}

func New(baseURL string, creds credentials.Store, logger internal.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		creds:      creds,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs a request against the backend and returns the raw response
// body. On a 401 from any path other than the refresh endpoint it attempts
// one refresh-token exchange and replays the original request once.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	if c.mockMode {
		select {
		case <-time.After(c.mockDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return []byte("{}"), nil
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	data, status, err := c.roundTrip(ctx, method, path, payload, query, c.creds.AccessToken())
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized && path != RefreshPath {
		return c.refreshAndReplay(ctx, method, path, payload, query, &StatusError{Code: status, Body: string(data)})
	}
	if status >= 400 {
		return nil, &StatusError{Code: status, Body: string(data)}
	}
	return data, nil
}

// refreshAndReplay exchanges the stored refresh token for a new access token
// and re-issues the original request once. On any failure the stored tokens
// are cleared, the auth-expired hook fires, and the original 401 propagates.
func (c *Client) refreshAndReplay(ctx context.Context, method, path string, payload []byte, query url.Values, original *StatusError) ([]byte, error) {
	refresh := c.creds.RefreshToken()
	if refresh == "" {
		c.expireSession()
		return nil, original
	}

	reqBody, _ := json.Marshal(map[string]string{"refresh": refresh})
	data, status, err := c.roundTrip(ctx, http.MethodPost, RefreshPath, reqBody, nil, "")
	if err != nil || status >= 400 {
		c.logger.Warnf("apiclient: token refresh failed (status=%d err=%v)", status, err)
		c.expireSession()
		return nil, original
	}

	var tokens internal.AuthResponse
	if err := json.Unmarshal(data, &tokens); err != nil || tokens.Access == "" {
		c.expireSession()
		return nil, original
	}
	if err := c.creds.SetTokens(tokens.Access, tokens.Refresh); err != nil {
		c.logger.Errorf("apiclient: failed to persist refreshed tokens: %v", err)
	}

	replay, status, err := c.roundTrip(ctx, method, path, payload, query, tokens.Access)
	if err != nil {
		return nil, err
	}
	// No second refresh: a 401 here propagates as-is.
	if status >= 400 {
		return nil, &StatusError{Code: status, Body: string(replay)}
	}
	return replay, nil
}

func (c *Client) expireSession() {
	if err := c.creds.Clear(); err != nil {
		c.logger.Errorf("apiclient: failed to clear credentials: %v", err)
	}
	if c.onAuthExpired != nil {
		c.onAuthExpired()
	}
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, query url.Values, token string) ([]byte, int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return data, resp.StatusCode, nil
}

// --- Typed helpers ---

func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.Do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.Do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) PatchJSON(ctx context.Context, path string, body, out any) error {
	data, err := c.Do(ctx, http.MethodPatch, path, body, nil)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func decode(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
