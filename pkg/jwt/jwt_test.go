package jwt

import (
	"testing"
	"time"

	"clinic-backend/config"

	"github.com/google/uuid"
)

func newTestService(accessExpiry, refreshExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: refreshExpiry,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService(15*time.Minute, time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "alice@example.com", 3)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if token == "" || tokenID == "" {
		t.Fatal("expected non-empty token and token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
	if claims.RoleID != 3 {
		t.Errorf("RoleID = %d, want 3", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService(15*time.Minute, time.Hour)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "bob@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService(15*time.Minute, time.Hour)
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute, time.Hour)
	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestService(time.Minute, time.Hour)
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("expected validation to fail for a malformed token")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService(time.Minute, time.Hour)
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "a@b.c", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	_, second, err := svc.GenerateAccessToken(userID, "a@b.c", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	if first == second {
		t.Error("expected distinct token IDs for successive tokens")
	}
}
