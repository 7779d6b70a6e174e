package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 15 * time.Second

type Profile struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

type verifyResponse struct {
	User *Profile `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Manager holds the admin session token, attaches it to outgoing requests
// and drops it as soon as the server rejects it.
type Manager struct {
	baseURL        *url.URL
	httpClient     *http.Client
	store          TokenStore
	onUnauthorized func()
}

type Option func(*Manager)

func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) {
		m.httpClient = c
	}
}

// WithOnUnauthorized sets the hook called after a 401 cleared the token,
// typically sending the user back to the login screen.
func WithOnUnauthorized(fn func()) Option {
	return func(m *Manager) {
		m.onUnauthorized = fn
	}
}

func NewManager(baseURL string, store TokenStore, opts ...Option) (*Manager, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %q", baseURL)
	}

	m := &Manager{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		store: store,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// resolve puts a relative reference under the base url. The result always
// has an absolute path, also when the base url has none.
func (m *Manager) resolve(ref *url.URL) *url.URL {
	u := *m.baseURL
	u.Path = path.Join("/", m.baseURL.Path, ref.Path)
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	u.Fragment = ""
	return &u
}

func (m *Manager) endpoint(p string) string {
	return m.resolve(&url.URL{Path: p}).String()
}

// Token returns the stored token, ErrNotLoggedIn if there is none.
func (m *Manager) Token() (string, error) {
	token, err := m.store.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (m *Manager) Login(ctx context.Context, username, password string) (*Profile, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint("/login"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var res loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if res.Token == "" {
		return nil, fmt.Errorf("login response without token")
	}
	if err := m.store.Save(res.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	log.Debugf("logged in as [%s]", username)
	return res.User, nil
}

// Logout tells the server to revoke the token and clears it locally.
// The local token is cleared even when the server cannot be reached.
func (m *Manager) Logout(ctx context.Context) error {
	token, err := m.store.Load()
	if err != nil {
		log.Warnf("logout, load token: %s", err)
	}

	if token != "" {
		if err := m.postLogout(ctx, token); err != nil {
			log.Warnf("logout request: %s", err)
		}
	}

	return m.store.Clear()
}

func (m *Manager) postLogout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint("/logout"), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// Verify asks the server whether the stored token still maps to an active admin.
func (m *Manager) Verify(ctx context.Context) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint("/verify"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := m.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var res verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	return res.User, nil
}

// Do sends req with the bearer token attached. A relative req.URL is
// resolved against the base url. On 401 the token is cleared, the
// unauthorized hook runs, and ErrUnauthorized is returned.
func (m *Manager) Do(req *http.Request) (*http.Response, error) {
	token, err := m.Token()
	if err != nil {
		return nil, err
	}

	if !req.URL.IsAbs() {
		req.URL = m.resolve(req.URL)
		req.Host = req.URL.Host
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := apiError(resp)
		drainAndClose(resp)
		m.invalidate()
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	}
	return resp, nil
}

func (m *Manager) invalidate() {
	if err := m.store.Clear(); err != nil {
		log.Errorf("clear rejected token: %s", err)
	}
	if m.onUnauthorized != nil {
		m.onUnauthorized()
	}
}

func apiError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		apiErr.Message = body.Error
	}
	return apiErr
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
