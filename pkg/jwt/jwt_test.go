package jwt

import (
	"testing"
	"time"

	"family-records-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "asha@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if tokenID == "" {
		t.Fatalf("empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user ID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "asha@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Fatalf("role ID = %d, want 2", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("token type = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("token ID mismatch: %q vs %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "asha@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("token type = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "asha@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatalf("token signed with another secret validated")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.token"); err == nil {
		t.Fatalf("garbage token validated")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService()
	_, first, _ := svc.GenerateAccessToken(uuid.New(), "asha@example.com", 2)
	_, second, _ := svc.GenerateAccessToken(uuid.New(), "asha@example.com", 2)
	if first == second {
		t.Fatalf("two tokens share an ID")
	}
}
