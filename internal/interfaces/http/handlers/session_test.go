// internal/interfaces/http/handlers/session_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/notify"
	"github.com/your-org/storefront-gateway/internal/pkg/auth"
	"github.com/your-org/storefront-gateway/internal/pkg/logging"
	"github.com/your-org/storefront-gateway/internal/session"
)

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := &auth.Claims{
		Email: "jane@example.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newSessionRouter(t *testing.T, backend http.Handler) (*gin.Engine, *session.Manager) {
	t.Helper()

	cfg := testConfig(newBackend(t, backend))
	logger := logging.Discard()
	hub := notify.NewHub(logger)
	client := api.NewClient(cfg, nil, logger)
	manager := session.NewManager(cfg, client, newMemStore(), hub, logger)
	handler := NewSessionHandler(manager)

	router := newRouter()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/logout", handler.Logout)
	router.GET("/auth/profile", handler.Profile)
	return router, manager
}

func TestLoginEndpoint(t *testing.T) {
	token := signToken(t, "admin")
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(session.LoginResponse{
			Token:        token,
			RefreshToken: "refresh-1",
			User:         session.Identity{ID: "user-1", Email: "jane@example.com", Role: "admin"},
		})
	})

	router, manager := newSessionRouter(t, mux)

	w := performRequest(t, router, http.MethodPost, "/auth/login", session.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			User     session.Identity `json:"user"`
			Redirect string           `json:"redirect"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.Redirect != "/admin" {
		t.Fatalf("expected /admin redirect got %q", resp.Data.Redirect)
	}

	if identity := manager.CurrentIdentity(); identity == nil || identity.Role != "admin" {
		t.Fatalf("expected admin identity after login, got %+v", identity)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	router, _ := newSessionRouter(t, mux)

	w := performRequest(t, router, http.MethodPost, "/auth/login", session.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Invalid credentials" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestLoginEndpointRejectsBadPayload(t *testing.T) {
	router, _ := newSessionRouter(t, http.NewServeMux())

	w := performRequest(t, router, http.MethodPost, "/auth/login", map[string]string{
		"email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestRegisterEndpointPasswordMismatch(t *testing.T) {
	router, _ := newSessionRouter(t, http.NewServeMux())

	w := performRequest(t, router, http.MethodPost, "/auth/register", session.RegisterRequest{
		Email:           "jane@example.com",
		Password:        "one",
		ConfirmPassword: "two",
		FirstName:       "Jane",
		LastName:        "Doe",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileEndpointUnauthenticated(t *testing.T) {
	router, _ := newSessionRouter(t, http.NewServeMux())

	w := performRequest(t, router, http.MethodGet, "/auth/profile", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
}

func TestLogoutEndpointClearsSession(t *testing.T) {
	token := signToken(t, "user")
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(session.LoginResponse{
			Token:        token,
			RefreshToken: "refresh-1",
			User:         session.Identity{ID: "user-1", Role: "user"},
		})
	})

	router, manager := newSessionRouter(t, mux)

	performRequest(t, router, http.MethodPost, "/auth/login", session.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret",
	})
	if manager.CurrentIdentity() == nil {
		t.Fatal("expected identity after login")
	}

	w := performRequest(t, router, http.MethodPost, "/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if manager.CurrentIdentity() != nil {
		t.Fatal("expected identity cleared after logout")
	}
}
