package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config wires a Session together. Only BaseURL is required; everything
// else has a working default.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com".
	BaseURL string
	// HTTPClient defaults to a client with a 15 second timeout.
	HTTPClient *http.Client
	// Store defaults to an in-memory store.
	Store TokenStore
	// Notifier receives user-facing messages for failed requests.
	Notifier Notifier
	// OnUnauthorized runs after a 401 response has cleared the session,
	// so the caller can navigate to its login view.
	OnUnauthorized func()
}

// Session holds the authenticated state: the bearer token and the cached
// user record. The two are always set and cleared together; a non-empty
// token implies a non-nil user.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User

	baseURL        string
	http           *http.Client
	store          TokenStore
	notifier       Notifier
	onUnauthorized func()
}

// NewSession creates a session container. No I/O happens here; call
// Initialize to restore a persisted session.
func NewSession(cfg Config) (*Session, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("client: BaseURL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	store := cfg.Store
	if store == nil {
		store = NewMemoryTokenStore()
	}

	return &Session{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		store:          store,
		notifier:       cfg.Notifier,
		onUnauthorized: cfg.OnUnauthorized,
	}, nil
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached user record, nil when signed out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated is computed from current state and is never persisted;
// after a restart it only becomes true again once Initialize succeeds.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// Login submits credentials and, on success, stores the token and user
// together and persists the token. On failure the previous state is left
// untouched and the mapped message goes to the notifier.
func (s *Session) Login(ctx context.Context, creds Credentials) error {
	var resp loginResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/login", creds, &resp, false); err != nil {
		return err
	}
	if resp.AccessToken == "" || resp.User == nil {
		return errors.New("client: malformed login response")
	}

	// Persist before touching in-memory state so a storage failure never
	// leaves an authenticated session whose token was not saved.
	if err := s.store.Save(resp.AccessToken); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = resp.User
	s.mu.Unlock()

	return nil
}

type registerResponse struct {
	User *User `json:"user"`
}

// Register creates an account and returns the new user. The session state
// is not touched: the account must log in explicitly.
func (s *Session) Register(ctx context.Context, reg Registration) (*User, error) {
	var resp registerResponse
	if err := s.do(ctx, http.MethodPost, "/api/auth/register", reg, &resp, false); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout clears the token and user from memory and persisted storage. The
// server-side revocation call is best effort; local state is cleared even
// when it fails.
func (s *Session) Logout(ctx context.Context) error {
	if s.Token() != "" {
		_ = s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, true)
	}
	return s.clear()
}

type meResponse struct {
	User *User `json:"user"`
}

// Initialize restores a persisted token and validates it against the
// server. An invalid or expired token clears storage silently; there is no
// session to lose yet, so no notification fires.
func (s *Session) Initialize(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	var resp meResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp, true); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			// Server rejected the token; forget it.
			return s.clear()
		}
		// Connectivity failure: keep the token for a later retry but do
		// not report an authenticated session.
		s.mu.Lock()
		s.token = ""
		s.mu.Unlock()
		return err
	}
	if resp.User == nil {
		return s.clear()
	}

	s.mu.Lock()
	s.user = resp.User
	s.mu.Unlock()
	return nil
}

// Do performs an arbitrary API request with the session's token attached
// and the standard error mapping applied. out may be nil when the response
// body is not needed.
func (s *Session) Do(ctx context.Context, method, path string, body, out interface{}) error {
	return s.do(ctx, method, path, body, out, false)
}

func (s *Session) clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	return s.store.Clear()
}

// do performs one API request: attaches the bearer token, decodes the
// response into out, and converts failures into *APIError. A 401 clears
// the session before the unauthorized hook runs. When silent is set, no
// notification is produced.
func (s *Session) do(ctx context.Context, method, path string, body, out interface{}, silent bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := s.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return s.fail(&APIError{Status: 0, Message: err.Error()}, silent)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decoding response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	var errBody struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
		apiErr.Message = errBody.Error
		apiErr.Errors = errBody.Errors
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = s.clear()
		if s.onUnauthorized != nil {
			s.onUnauthorized()
		}
	}

	return s.fail(apiErr, silent)
}

func (s *Session) fail(apiErr *APIError, silent bool) error {
	if !silent && s.notifier != nil {
		s.notifier.Notify(apiErr.Notification())
	}
	return apiErr
}
