package utils

import (
	"testing"
	"time"
)

const testSecret = "unit-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	doctorID, err := ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if doctorID != 42 {
		t.Errorf("doctorID = %d, want 42", doctorID)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(testSecret, token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken(testSecret, 42, time.Minute)

	if _, err := ValidateToken("another-secret", token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken(testSecret, "not.a.jwt"); err == nil {
		t.Error("garbage token accepted")
	}
}
