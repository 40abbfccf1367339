package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kube-rca/incident-comms/internal/config"
)

func TestAuthServiceRoundTrip(t *testing.T) {
	svc, err := NewAuthService(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	token, err := svc.IssueToken("statuspage-bot", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	subject, err := svc.ParseAccessToken(token)
	if err != nil || subject != "statuspage-bot" {
		t.Fatalf("expected subject statuspage-bot, got %q (%v)", subject, err)
	}
}

func TestAuthServiceRejectsInvalidTokens(t *testing.T) {
	svc, _ := NewAuthService(config.AuthConfig{JWTSecret: "secret"})
	other, _ := NewAuthService(config.AuthConfig{JWTSecret: "other"})

	foreign, _ := other.IssueToken("bot", time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "bot",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredStr, _ := expired.SignedString([]byte("secret"))
	noIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "bot"})
	noIssuerStr, _ := noIssuer.SignedString([]byte("secret"))

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"foreign":   foreign,
		"expired":   expiredStr,
		"no-issuer": noIssuerStr,
	} {
		if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	if _, err := NewAuthService(config.AuthConfig{}); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}
