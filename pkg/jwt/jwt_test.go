package jwt

import (
	"testing"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 15 * time.Minute,
	})

	token, tokenID, err := svc.GenerateAccessToken("pipeline-runner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || tokenID == "" {
		t.Fatal("expected non-empty token and token id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "pipeline-runner" {
		t.Errorf("ClientID = %q, want %q", claims.ClientID, "pipeline-runner")
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", AccessExpiry: time.Minute})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", AccessExpiry: time.Minute})

	token, _, err := issuer.GenerateAccessToken("pipeline-runner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
