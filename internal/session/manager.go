// internal/session/manager.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/pkg/auth"
	"github.com/your-org/storefront-gateway/internal/pkg/pubsub"
	"github.com/your-org/storefront-gateway/internal/storage"
)

// Manager owns the current token pair and the identity derived from it.
// At most one token pair is active at a time: login replaces it wholesale,
// refresh replaces the access token, and logout, refresh failure or an
// expired token at read time all clear it.
type Manager struct {
	config   *config.Config
	client   *api.Client
	store    storage.Store
	hub      *notify.Hub
	logger   *logrus.Logger
	identity *pubsub.Subject[*Identity]
	now      func() time.Time
}

// NewManager creates a session manager and seeds the identity stream from
// any token already in durable storage
func NewManager(cfg *config.Config, client *api.Client, store storage.Store, hub *notify.Hub, logger *logrus.Logger) *Manager {
	m := &Manager{
		config: cfg,
		client: client,
		store:  store,
		hub:    hub,
		logger: logger,
		now:    time.Now,
	}
	m.identity = pubsub.NewSubject(m.CurrentIdentity())
	return m
}

// Subscribe registers an identity observer. The handler is called immediately
// with the current identity and on every subsequent change.
func (m *Manager) Subscribe(fn func(*Identity)) func() {
	return m.identity.Subscribe(fn)
}

// Login authenticates against the backend and activates the returned token pair
func (m *Manager) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := m.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		authErr := newAuthError(err)
		m.logger.WithError(err).Warn("Login failed")
		return nil, authErr
	}

	if err := m.storeTokens(ctx, resp.Token, resp.RefreshToken); err != nil {
		// Storage failure is not fatal; the session lives for this process
		m.logger.WithError(err).Warn("Failed to persist tokens")
	}

	identity := m.CurrentIdentity()
	m.identity.Emit(identity)
	m.hub.Success(fmt.Sprintf("Welcome back, %s!", resp.User.FirstName))

	return &resp, nil
}

// Register creates a new account. The caller logs in separately afterwards.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return &AuthError{Message: "Passwords do not match"}
	}
	if err := m.client.Post(ctx, "/auth/register", req, nil); err != nil {
		return newAuthError(err)
	}
	return nil
}

// Token returns the current access token, if any
func (m *Manager) Token() (string, bool) {
	token, err := m.store.Get(context.Background(), m.config.JWT.TokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.WithError(err).Warn("Failed to read access token")
		}
		return "", false
	}
	return token, true
}

// RefreshTokenValue returns the current refresh token, if any
func (m *Manager) RefreshTokenValue() (string, bool) {
	token, err := m.store.Get(context.Background(), m.config.JWT.RefreshTokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.logger.WithError(err).Warn("Failed to read refresh token")
		}
		return "", false
	}
	return token, true
}

// CurrentIdentity returns the identity decoded from the stored access token,
// or nil when no token is stored or it has expired. This is a pure read and
// never triggers a refresh.
func (m *Manager) CurrentIdentity() *Identity {
	token, ok := m.Token()
	if !ok {
		return nil
	}

	claims, err := auth.DecodeToken(token)
	if err != nil {
		m.logger.WithError(err).Warn("Stored access token is malformed")
		return nil
	}
	if claims.IsExpired(m.now()) {
		return nil
	}

	return &Identity{
		ID:        claims.UserID(),
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
	}
}

// RefreshAccessToken exchanges the refresh token for a new access token.
// Any failure terminates the session.
func (m *Manager) RefreshAccessToken(ctx context.Context) error {
	refreshToken, ok := m.RefreshTokenValue()
	if !ok {
		m.Logout()
		return ErrNoRefreshToken
	}

	body := map[string]string{"refresh_token": refreshToken}
	var resp refreshResponse
	if err := m.client.Post(ctx, "/auth/refresh", body, &resp); err != nil {
		m.Logout()
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	if err := m.store.Set(ctx, m.config.JWT.TokenKey, resp.AccessToken); err != nil {
		m.logger.WithError(err).Warn("Failed to persist refreshed token")
	}

	return nil
}

// Logout clears both tokens and publishes an absent identity. It has no
// failure mode: storage errors are logged and swallowed.
func (m *Manager) Logout() {
	ctx := context.Background()
	if err := m.store.Delete(ctx, m.config.JWT.TokenKey); err != nil {
		m.logger.WithError(err).Warn("Failed to clear access token")
	}
	if err := m.store.Delete(ctx, m.config.JWT.RefreshTokenKey); err != nil {
		m.logger.WithError(err).Warn("Failed to clear refresh token")
	}
	m.identity.Emit(nil)
}

// IsAdmin asks the backend whether the current session has admin rights.
// The locally decoded role claim is deliberately not trusted here.
func (m *Manager) IsAdmin(ctx context.Context) (bool, error) {
	var isAdmin bool
	if err := m.client.Get(ctx, "/auth/is-admin", &isAdmin); err != nil {
		return false, fmt.Errorf("admin check failed: %w", err)
	}
	return isAdmin, nil
}

// NavigationTarget returns the landing route for a role
func NavigationTarget(role string) string {
	switch role {
	case "admin":
		return "/admin"
	default:
		return "/user"
	}
}

func (m *Manager) storeTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := m.store.Set(ctx, m.config.JWT.TokenKey, accessToken); err != nil {
		return err
	}
	return m.store.Set(ctx, m.config.JWT.RefreshTokenKey, refreshToken)
}
