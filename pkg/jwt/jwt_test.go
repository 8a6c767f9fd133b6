package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "admin", "commercial")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("want user id %s, got %s", userID, claims.UserID)
	}
	if claims.Username != "admin" || claims.Role != "commercial" {
		t.Errorf("claims mismatch: %+v", claims)
	}

	// 7-day validity window (claims are second-precision)
	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if window < 7*24*time.Hour-time.Second || window > 7*24*time.Hour+time.Second {
		t.Errorf("want 7 day window, got %v", window)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin", "commercial")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tampered := token + "xx"
	if _, err := ValidateToken(tampered); err != ErrInvalidToken {
		t.Fatalf("want ErrInvalidToken for tampered token, got %v", err)
	}
}
