package utils

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	os.Setenv("SESSION_SECRET", "test-secret-key-for-unit-tests")
	os.Exit(m.Run())
}

func TestSessionTokenRoundTrip(t *testing.T) {
	sid := uuid.New()

	token, err := GenerateSessionToken(sid)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.SessionID != sid {
		t.Errorf("expected session id %s, got %s", sid, claims.SessionID)
	}
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateSessionToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateSessionTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateSessionToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateSessionToken(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}
