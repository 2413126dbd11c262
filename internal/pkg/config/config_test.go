package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureJWTSecret_GeneratesAndPersists(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	cfg := &Config{}

	generated, err := cfg.EnsureJWTSecret(envFile)
	if err != nil {
		t.Fatalf("EnsureJWTSecret: %v", err)
	}
	if !generated {
		t.Fatal("expected a secret to be generated")
	}
	if _, err := hex.DecodeString(cfg.JWTSecret); err != nil || len(cfg.JWTSecret) != 64 {
		t.Fatalf("secret is not 32 hex-encoded bytes: %q", cfg.JWTSecret)
	}

	data, err := os.ReadFile(envFile)
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	want := "JWT_SECRET=" + cfg.JWTSecret + "\n"
	if string(data) != want {
		t.Fatalf("env file content = %q, want %q", data, want)
	}

	info, err := os.Stat(envFile)
	if err != nil {
		t.Fatalf("stat env file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("env file mode = %o, want 600", perm)
	}
}

func TestEnsureJWTSecret_KeepsConfiguredValue(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	cfg := &Config{JWTSecret: "configured"}

	generated, err := cfg.EnsureJWTSecret(envFile)
	if err != nil {
		t.Fatalf("EnsureJWTSecret: %v", err)
	}
	if generated {
		t.Fatal("should not generate when a secret is already set")
	}
	if cfg.JWTSecret != "configured" {
		t.Fatalf("secret changed to %q", cfg.JWTSecret)
	}
	if _, err := os.Stat(envFile); !os.IsNotExist(err) {
		t.Fatal("env file should not have been written")
	}
}

func TestEnsureJWTSecret_AppendsToExistingFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PORT=9090\n"), 0o600); err != nil {
		t.Fatalf("seed env file: %v", err)
	}
	cfg := &Config{}

	if _, err := cfg.EnsureJWTSecret(envFile); err != nil {
		t.Fatalf("EnsureJWTSecret: %v", err)
	}

	data, err := os.ReadFile(envFile)
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	if !strings.HasPrefix(string(data), "PORT=9090\n") {
		t.Fatalf("existing content lost: %q", data)
	}
	if !strings.Contains(string(data), "JWT_SECRET="+cfg.JWTSecret) {
		t.Fatalf("secret not appended: %q", data)
	}
}
