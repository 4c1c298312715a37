package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-backend/config"
	"clinic-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Redis is never reached on these paths; the middleware rejects the request
// before the revocation check.
func newTestAuthMiddleware(cfg config.JWTConfig) *AuthMiddleware {
	jwtService := jwt.NewJWTService(cfg)
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	return NewAuthMiddleware(jwtService, redisClient)
}

func serveAuth(t *testing.T, m *AuthMiddleware, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := newTestAuthMiddleware(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})
	if rec := serveAuth(t, m, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := newTestAuthMiddleware(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})
	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		if rec := serveAuth(t, m, header); rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := newTestAuthMiddleware(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})
	if rec := serveAuth(t, m, "Bearer not-a-real-token"); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "s", AccessExpiry: time.Minute, RefreshExpiry: time.Hour}
	m := newTestAuthMiddleware(cfg)

	refreshToken, _, err := jwt.NewJWTService(cfg).GenerateRefreshToken(uuid.New(), "a@b.c", 1)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	if rec := serveAuth(t, m, "Bearer "+refreshToken); rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
