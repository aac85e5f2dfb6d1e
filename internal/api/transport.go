// internal/api/transport.go
package api

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
)

// AuthTransport attaches the access token to outbound API requests and
// performs exactly one refresh-and-retry on a 401.
//
// Invariants:
//   - login/register requests are never authenticated
//   - the refresh request itself is never retried (no refresh loop)
//   - a second 401 after a fresh token is returned as-is
type AuthTransport struct {
	base        http.RoundTripper
	headerName  string
	authScheme  string
	skipPaths   []string
	refreshPath string
	logger      *logrus.Logger

	mu     sync.RWMutex
	tokens RefreshTokenSource
}

// RefreshTokenSource is the credential contract the transport needs.
// The session manager implements it; RefreshAccessToken is expected to
// terminate the session itself when renewal fails.
type RefreshTokenSource interface {
	Token() (string, bool)
	RefreshAccessToken(ctx context.Context) error
}

// NewAuthTransport creates the auth interceptor over a base transport
func NewAuthTransport(cfg *config.Config, base http.RoundTripper, logger *logrus.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		base:        base,
		headerName:  cfg.JWT.HeaderName,
		authScheme:  cfg.JWT.AuthScheme,
		skipPaths:   []string{"/auth/login", "/auth/register"},
		refreshPath: "/auth/refresh",
		logger:      logger,
	}
}

// BindTokens attaches the token source after construction. Wiring happens in
// the composition root because the session manager issues its own requests
// through a client built on this transport.
func (t *AuthTransport) BindTokens(tokens RefreshTokenSource) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens = tokens
}

// RoundTrip implements http.RoundTripper
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Login and register must remain unauthenticated
	if t.isAuthRequest(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	tokens := t.tokenSource()
	if tokens == nil {
		return t.base.RoundTrip(req)
	}

	token, ok := tokens.Token()
	if !ok {
		return t.base.RoundTrip(req)
	}

	authReq := req.Clone(req.Context())
	authReq.Header.Set(t.headerName, t.authScheme+token)

	resp, err := t.base.RoundTrip(authReq)
	if err != nil {
		return nil, err
	}

	// Only a 401 on a non-refresh request triggers renewal
	if resp.StatusCode != http.StatusUnauthorized || t.isRefreshRequest(req.URL.Path) {
		return resp, nil
	}

	if err := tokens.RefreshAccessToken(req.Context()); err != nil {
		// Refresh failed; the token source has already terminated the
		// session. The original 401 is surfaced to the caller.
		t.logger.WithError(err).Warn("Token refresh failed, session terminated")
		return resp, nil
	}

	newToken, ok := tokens.Token()
	if !ok {
		return resp, nil
	}

	retryReq, rewindErr := rewind(req)
	if rewindErr != nil {
		// Request body cannot be replayed; give the caller the 401
		return resp, nil
	}
	retryReq.Header.Set(t.headerName, t.authScheme+newToken)

	resp.Body.Close()
	t.logger.Debug("Retrying request with refreshed token")
	return t.base.RoundTrip(retryReq)
}

func (t *AuthTransport) tokenSource() RefreshTokenSource {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tokens
}

func (t *AuthTransport) isAuthRequest(path string) bool {
	for _, p := range t.skipPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func (t *AuthTransport) isRefreshRequest(path string) bool {
	return strings.Contains(path, t.refreshPath)
}

// rewind clones a request with a replayable body
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.GetBody == nil {
		return clone, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}
