package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func parseToken(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	return claims
}

func TestTokenIssuer_Issue_Claims(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := parseToken(t, token, "secret")

	payload, ok := claims["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected nested user claim, got %T", claims["user"])
	}
	if payload["id"] != "user_1" {
		t.Fatalf("expected user id user_1, got %v", payload["id"])
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		t.Fatalf("missing iat claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	if got := time.Duration(exp-iat) * time.Second; got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenIssuer_Issue_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	if err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.TTL() != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, issuer.TTL())
	}
}
