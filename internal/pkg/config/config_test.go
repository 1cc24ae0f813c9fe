package config

import "testing"

func TestSigningSecretFallback(t *testing.T) {
	cfg := &Config{}

	secret, insecure := cfg.SigningSecret()
	if !insecure {
		t.Fatal("expected fallback to be flagged as insecure")
	}
	if secret != InsecureDevSecret {
		t.Fatalf("secret = %q, want the development fallback", secret)
	}
}

func TestSigningSecretConfigured(t *testing.T) {
	cfg := &Config{JWTSecret: "configured-secret"}

	secret, insecure := cfg.SigningSecret()
	if insecure {
		t.Fatal("configured secret flagged as insecure")
	}
	if secret != "configured-secret" {
		t.Fatalf("secret = %q, want configured-secret", secret)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Fatal("port default missing")
	}
	if cfg.Postgres.URL == "" {
		t.Fatal("database url default missing")
	}
	if cfg.Redis.Addr == "" {
		t.Fatal("redis addr default missing")
	}
}
