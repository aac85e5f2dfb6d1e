// internal/session/manager_test.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/pkg/auth"
	"github.com/your-org/storefront-gateway/internal/pkg/logging"
	"github.com/your-org/storefront-gateway/internal/storage"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:        baseURL,
			RequestTimeout: 5 * time.Second,
		},
		JWT: config.JWTConfig{
			HeaderName:      "Authorization",
			AuthScheme:      "Bearer ",
			TokenKey:        "ecom_access_token",
			RefreshTokenKey: "ecom_refresh_token",
		},
	}
}

func signToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := &auth.Claims{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *memStore, *notify.Hub) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL)
	logger := logging.Discard()
	hub := notify.NewHub(logger)
	client := api.NewClient(cfg, nil, logger)
	store := newMemStore()
	return NewManager(cfg, client, store, hub, logger), store, hub
}

func TestLoginStoresTokensAndEmitsIdentity(t *testing.T) {
	token := signToken(t, "user", time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(LoginResponse{
			Token:        token,
			RefreshToken: "refresh-1",
			User:         Identity{ID: "user-1", Email: req.Email, FirstName: "Jane", Role: "user"},
		})
	})

	manager, store, _ := newTestManager(t, mux)

	var emitted []*Identity
	manager.Subscribe(func(id *Identity) {
		emitted = append(emitted, id)
	})

	resp, err := manager.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Email != "jane@example.com" {
		t.Fatalf("unexpected user %+v", resp.User)
	}

	ctx := context.Background()
	if got, _ := store.Get(ctx, "ecom_access_token"); got != token {
		t.Fatal("expected access token stored")
	}
	if got, _ := store.Get(ctx, "ecom_refresh_token"); got != "refresh-1" {
		t.Fatal("expected refresh token stored")
	}

	// Initial nil, then the logged-in identity
	if len(emitted) != 2 {
		t.Fatalf("expected 2 identity emissions got %d", len(emitted))
	}
	if emitted[0] != nil {
		t.Fatal("expected initial identity to be absent")
	}
	if emitted[1] == nil || emitted[1].Role != "user" {
		t.Fatalf("unexpected emitted identity %+v", emitted[1])
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad password"})
	})

	manager, _, _ := newTestManager(t, mux)

	_, err := manager.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError got %T", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Fatalf("expected Invalid credentials got %q", authErr.Message)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401 got %d", authErr.Status)
	}
}

func TestLoginServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	manager, _, _ := newTestManager(t, mux)

	_, err := manager.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "x"})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError got %T", err)
	}
	if authErr.Message != "Internal server error" {
		t.Fatalf("expected Internal server error got %q", authErr.Message)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	manager, _, _ := newTestManager(t, http.NewServeMux())

	err := manager.Register(context.Background(), RegisterRequest{
		Email:           "jane@example.com",
		Password:        "one",
		ConfirmPassword: "two",
		FirstName:       "Jane",
		LastName:        "Doe",
	})

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError got %T", err)
	}
	if authErr.Message != "Passwords do not match" {
		t.Fatalf("unexpected message %q", authErr.Message)
	}
}

func TestCurrentIdentityExpiredToken(t *testing.T) {
	manager, store, _ := newTestManager(t, http.NewServeMux())

	expired := signToken(t, "user", -time.Hour)
	store.Set(context.Background(), "ecom_access_token", expired)

	if got := manager.CurrentIdentity(); got != nil {
		t.Fatalf("expected nil identity for expired token, got %+v", got)
	}
}

func TestCurrentIdentityMalformedToken(t *testing.T) {
	manager, store, _ := newTestManager(t, http.NewServeMux())

	store.Set(context.Background(), "ecom_access_token", "garbage")

	if got := manager.CurrentIdentity(); got != nil {
		t.Fatalf("expected nil identity for malformed token, got %+v", got)
	}
}

func TestRefreshWithoutTokenTerminatesSession(t *testing.T) {
	manager, store, _ := newTestManager(t, http.NewServeMux())
	store.Set(context.Background(), "ecom_access_token", signToken(t, "user", time.Hour))

	err := manager.RefreshAccessToken(context.Background())
	if !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken got %v", err)
	}

	if _, err := store.Get(context.Background(), "ecom_access_token"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected access token cleared")
	}
}

func TestRefreshRejectedTerminatesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	manager, store, _ := newTestManager(t, mux)
	ctx := context.Background()
	store.Set(ctx, "ecom_access_token", signToken(t, "user", time.Hour))
	store.Set(ctx, "ecom_refresh_token", "stale-refresh")

	err := manager.RefreshAccessToken(ctx)
	if !errors.Is(err, ErrRefreshFailed) {
		t.Fatalf("expected ErrRefreshFailed got %v", err)
	}

	if _, err := store.Get(ctx, "ecom_access_token"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected access token cleared")
	}
	if _, err := store.Get(ctx, "ecom_refresh_token"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected refresh token cleared")
	}
}

func TestRefreshStoresNewAccessToken(t *testing.T) {
	fresh := signToken(t, "user", time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["refresh_token"] != "refresh-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": fresh})
	})

	manager, store, _ := newTestManager(t, mux)
	ctx := context.Background()
	store.Set(ctx, "ecom_refresh_token", "refresh-1")

	if err := manager.RefreshAccessToken(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := store.Get(ctx, "ecom_access_token"); got != fresh {
		t.Fatal("expected refreshed access token stored")
	}
}

func TestLogoutClearsTokensAndEmitsNil(t *testing.T) {
	manager, store, _ := newTestManager(t, http.NewServeMux())
	ctx := context.Background()
	store.Set(ctx, "ecom_access_token", signToken(t, "user", time.Hour))
	store.Set(ctx, "ecom_refresh_token", "refresh-1")

	var last *Identity
	sawEmission := false
	manager.Subscribe(func(id *Identity) {
		last = id
		sawEmission = true
	})

	manager.Logout()

	if _, err := store.Get(ctx, "ecom_access_token"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected access token cleared")
	}
	if !sawEmission || last != nil {
		t.Fatalf("expected nil identity emitted, got %+v", last)
	}
}

func TestNavigationTarget(t *testing.T) {
	if got := NavigationTarget("admin"); got != "/admin" {
		t.Fatalf("expected /admin got %s", got)
	}
	if got := NavigationTarget("user"); got != "/user" {
		t.Fatalf("expected /user got %s", got)
	}
	if got := NavigationTarget(""); got != "/user" {
		t.Fatalf("expected /user for unknown role got %s", got)
	}
}
