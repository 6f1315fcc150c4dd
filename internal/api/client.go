package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the album server. It holds the bearer token for the
// Authorization header and a cookie jar so session-cookie-only deployments
// keep working when the server never issues a token.
//
// Requests run in command goroutines while token updates (logout, config
// reload) come from the update loop, so the token is mutex-guarded.
type Client struct {
	base       string
	httpClient *http.Client
	log        zerolog.Logger

	mu    sync.RWMutex
	token string
}

// loginRequest is the JSON body of POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the JSON answer of a successful login. Token is optional;
// cookie-session deployments answer 2xx with no token at all.
type loginResponse struct {
	Token string `json:"token"`
}

// NewClient creates a Client for the given base URL. An already-persisted
// token may be supplied to resume a previous session.
func NewClient(base, token string, logger zerolog.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		log: logger,
	}
}

// Token returns the currently held bearer token, possibly empty.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the held bearer token. An empty value drops header
// authorization and leaves only the cookie fallback.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ListAlbum fetches the raw listing body for one virtual path. The path is
// appended verbatim to /api/albums; the root is the bare endpoint. The body
// is returned undecoded so the caller can run shape-aware normalization.
func (c *Client) ListAlbum(ctx context.Context, path string) ([]byte, error) {
	endpoint := c.base + "/api/albums"
	if path != "" && path != "/" {
		endpoint += path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("path", path).Str("url", endpoint).Msg("fetching album listing")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("album fetch failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("path", path).Msg("album fetch rejected")
		return nil, &NetworkError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("reading album response: %w", err)}
	}
	return body, nil
}

// Login authenticates against POST /api/login and returns the issued bearer
// token. The returned token may be empty on deployments that authorize via
// session cookie only; the login still counts as successful. Rejected
// credentials surface as *AuthError, everything else as *NetworkError or
// *ParseError.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", &ParseError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("login request failed")
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("user", username).Msg("login rejected")
		return "", &AuthError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Err: fmt.Errorf("reading login response: %w", err)}
	}

	var decoded loginResponse
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &decoded); err != nil {
			return "", &ParseError{Err: err}
		}
	}

	if decoded.Token != "" {
		c.SetToken(decoded.Token)
	}
	c.log.Info().Str("user", username).Bool("token_issued", decoded.Token != "").Msg("login succeeded")
	return decoded.Token, nil
}
