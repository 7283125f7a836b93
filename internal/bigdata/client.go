package bigdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://api.bigdata.com"
	loginPath        = "/auth/login"
	searchPath       = "/search/query"
	entityLookupPath = "/knowledge-graph/search"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// SearchClient is the vendor operation surface the query adapters depend on.
// The HTTP Client below implements it; tests substitute mocks.
type SearchClient interface {
	Search(ctx context.Context, q Query) ([]Document, error)
	LookupEntities(ctx context.Context, term, category string, limit int) ([]EntityMatch, error)
}

// Client talks to the vendor search service over HTTP. Authentication is a
// username/password login yielding a bearer token that is reused for every
// subsequent call. Transient failures (429, 5xx, network) are retried a
// bounded number of times with exponential backoff; a 401 mid-session
// triggers one re-login before giving up.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries uint64

	username string
	password string

	mu    sync.Mutex
	token string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the vendor endpoint, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit spaces vendor calls at least delay apart
func WithRateLimit(delay time.Duration) Option {
	return func(c *Client) {
		if delay > 0 {
			c.limiter = rate.NewLimiter(rate.Every(delay), 1)
		}
	}
}

// WithMaxRetries sets how many times a transient vendor failure is retried
func WithMaxRetries(n uint64) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// NewClient creates an unauthenticated vendor client. Call Login before
// issuing searches.
func NewClient(username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		maxRetries: defaultMaxRetries,
		username:   username,
		password:   password,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login authenticates with the vendor service and stores the bearer token
func (c *Client) Login(ctx context.Context) error {
	payload := loginRequest{
		Username: c.username,
		Password: c.password,
	}

	status, body, err := c.post(ctx, loginPath, payload, false)
	if err != nil {
		return &AuthenticationError{Reason: "login request failed", Err: err}
	}

	switch status {
	case http.StatusOK:
		var res loginResponse
		if err := json.Unmarshal(body, &res); err != nil {
			return &AuthenticationError{Reason: "malformed login response", Err: err}
		}
		if res.Token == "" {
			return &AuthenticationError{Reason: "login response missing token"}
		}

		c.mu.Lock()
		c.token = res.Token
		c.mu.Unlock()
		return nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{
			Reason: "credentials rejected",
			Err:    fmt.Errorf("status %d: %s", status, vendorMessage(body)),
		}

	default:
		return &AuthenticationError{
			Reason: "unexpected login response",
			Err:    fmt.Errorf("status %d: %s", status, vendorMessage(body)),
		}
	}
}

// Search executes one vendor query and returns the raw document rows
func (c *Client) Search(ctx context.Context, q Query) ([]Document, error) {
	var res searchResponse
	if err := c.call(ctx, "search", searchPath, q, &res); err != nil {
		return nil, err
	}
	return res.Documents, nil
}

// LookupEntities resolves a search term into ranked knowledge-graph
// candidates for the given category
func (c *Client) LookupEntities(ctx context.Context, term, category string, limit int) ([]EntityMatch, error) {
	payload := entityLookupRequest{
		Term:     term,
		Category: category,
		Limit:    limit,
	}

	var res entityLookupResponse
	if err := c.call(ctx, "entity lookup", entityLookupPath, payload, &res); err != nil {
		return nil, err
	}
	return res.Entities, nil
}

// call performs one authenticated vendor request with rate limiting and
// bounded retries. The decoded response lands in out.
func (c *Client) call(ctx context.Context, op, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &SearchError{Op: op, Err: err}
	}

	refreshed := false
	attempt := func() error {
		status, body, err := c.post(ctx, path, payload, true)
		if err != nil {
			// Network-level failure, worth retrying
			return err
		}

		switch {
		case status == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return backoff.Permanent(fmt.Errorf("malformed response: %w", err))
			}
			return nil

		case status == http.StatusUnauthorized:
			// Token expired mid-session: re-login once, then give up
			if refreshed {
				return backoff.Permanent(&AuthenticationError{
					Reason: "token rejected after refresh",
				})
			}
			refreshed = true
			if err := c.Login(ctx); err != nil {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("token refreshed, retrying")

		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return fmt.Errorf("vendor returned status %d: %s", status, vendorMessage(body))

		default:
			return backoff.Permanent(fmt.Errorf("vendor returned status %d: %s", status, vendorMessage(body)))
		}
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(attempt, bo); err != nil {
		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			return authErr
		}
		return &SearchError{Op: op, Err: err}
	}
	return nil
}

// post sends one JSON request and returns the raw status and body
func (c *Client) post(ctx context.Context, path string, payload any, withToken bool) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+c.currentToken())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, data, nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// vendorMessage pulls a human-readable message out of an error body, falling
// back to the raw body when it isn't the expected JSON shape
func vendorMessage(body []byte) string {
	var res errorResponse
	if err := json.Unmarshal(body, &res); err == nil && res.Message != "" {
		return res.Message
	}

	const maxLen = 200
	s := string(body)
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
