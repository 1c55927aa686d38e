package config

import (
	"os"
	"strings"
	"testing"
)

func TestValidateEnvRequiresSessionSecret(t *testing.T) {
	os.Unsetenv("SESSION_SECRET")

	err := ValidateEnv()
	if err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestValidateEnvPassesWithSecret(t *testing.T) {
	os.Setenv("SESSION_SECRET", "secret")
	defer os.Unsetenv("SESSION_SECRET")

	if err := ValidateEnv(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("BM_TEST_KEY", "value")
	defer os.Unsetenv("BM_TEST_KEY")

	if got := GetEnv("BM_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := GetEnv("BM_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
