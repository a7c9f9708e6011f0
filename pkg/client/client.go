// Package client is a Go client for the Expensum API. It keeps the session cookies
// in a SessionStore and refreshes an expired access token once per request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	accessCookie  = "ajwt"
	refreshCookie = "rjwt"

	authPath    = "/v1/users/auth"
	refreshPath = authPath + "/r"
)

// APIError is a non-2xx response decoded from the API envelope.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("expensum: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("expensum: %d %s (%s)", e.StatusCode, e.Message, strings.Join(e.Details, "; "))
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	store   SessionStore
	log     logrus.FieldLogger
	now     func() time.Time

	refreshGroup singleflight.Group

	mu      sync.Mutex
	session *Session
}

type Option func(*Client)

// WithHTTPClient sets the transport and timeout. The client always uses its own cookie jar.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http.Transport = hc.Transport
		c.http.Timeout = hc.Timeout
	}
}

// WithLogger sets where session store failures are reported. The default is
// logrus' standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for the API at baseURL and restores any session in store.
func New(baseURL string, store SessionStore, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = NewMemoryStore()
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		store:   store,
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	if session != nil {
		c.restore(session)
	}
	return c, nil
}

// CurrentUser returns the signed-in user from the session, or nil.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.session.User == nil {
		return nil
	}
	user := *c.session.User
	return &user
}

func (c *Client) restore(session *Session) {
	now := c.now()
	live := &Session{User: session.User}
	var cookies []*http.Cookie
	for _, sc := range session.Cookies {
		if sc.expired(now) {
			continue
		}
		live.Cookies = append(live.Cookies, sc)
		cookies = append(cookies, sc.httpCookie())
	}
	c.http.Jar.SetCookies(c.baseURL, cookies)

	c.mu.Lock()
	c.session = live
	c.mu.Unlock()
}

type request struct {
	method string
	path   string
	query  url.Values
	body   []byte
	// refreshable requests retry once through the refresh endpoint on a 401.
	refreshable bool
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return c.call(ctx, request{method: method, path: path, refreshable: true}, in, out)
}

func (c *Client) doPublic(ctx context.Context, method, path string, in, out any) error {
	return c.call(ctx, request{method: method, path: path}, in, out)
}

func (c *Client) call(ctx context.Context, req request, in, out any) error {
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		req.body = payload
	}
	return c.send(ctx, req, out, 0)
}

func (c *Client) send(ctx context.Context, req request, out any, attempt int) error {
	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.absorb(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		if resp.StatusCode != http.StatusUnauthorized || !req.refreshable || attempt > 0 {
			return apiErr
		}
		if err := c.refresh(ctx); err != nil {
			c.dropSession()
			return apiErr
		}
		return c.send(ctx, req, out, attempt+1)
	}
	return decodeBody(resp, out)
}

func (c *Client) roundTrip(ctx context.Context, req request) (*http.Response, error) {
	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(httpReq)
}

// refresh exchanges the refresh cookie for a new access cookie. Concurrent
// callers share one in-flight refresh, which ignores their cancellation.
func (c *Client) refresh(ctx context.Context) error {
	shared := context.WithoutCancel(ctx)
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.send(shared, request{method: http.MethodPost, path: refreshPath}, nil, 0)
	})
	return err
}

// absorb records auth cookies set by resp in the session and persists it.
func (c *Client) absorb(resp *http.Response) {
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return
	}

	c.mu.Lock()
	if c.session == nil {
		c.session = &Session{}
	}
	changed := c.session.merge(cookies, c.now())
	snapshot := c.session.clone()
	c.mu.Unlock()

	if changed {
		c.persist(snapshot)
	}
}

func (c *Client) setUser(user *User) {
	c.mu.Lock()
	if c.session == nil {
		c.session = &Session{}
	}
	c.session.User = user
	snapshot := c.session.clone()
	c.mu.Unlock()

	c.persist(snapshot)
}

// persist saves the session. A failed save keeps the in-memory session, so the
// client keeps working until the process exits.
func (c *Client) persist(snapshot *Session) {
	if err := c.store.Save(snapshot); err != nil {
		c.log.WithError(err).Warn("Client.SessionStore.Save")
	}
}

// dropSession forgets the user and both cookies.
func (c *Client) dropSession() {
	c.http.Jar.SetCookies(c.baseURL, []*http.Cookie{
		{Name: accessCookie, Path: "/", MaxAge: -1},
		{Name: refreshCookie, Path: authPath, MaxAge: -1},
	})

	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.WithError(err).Warn("Client.SessionStore.Clear")
	}
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Body       json.RawMessage `json:"body"`
	Success    bool            `json:"success"`
}

func decodeBody(resp *http.Response, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	if len(env.Body) == 0 || string(env.Body) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Body, out); err != nil {
		return fmt.Errorf("client: decode body: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var env envelope
	if json.Unmarshal(raw, &env) != nil {
		return apiErr
	}
	if env.Message != "" {
		apiErr.Message = env.Message
	}
	var details []string
	if json.Unmarshal(env.Body, &details) == nil {
		apiErr.Details = details
	}
	return apiErr
}
