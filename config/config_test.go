package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("SESSION_IDLE_MIN", "")
	t.Setenv("SESSION_MAX", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if !cfg.Offline() {
		t.Fatalf("expected offline mode without BACKEND_URL")
	}
	if cfg.TokenCookie != "rb_admin_token" {
		t.Fatalf("expected default cookie name, got %q", cfg.TokenCookie)
	}
	if cfg.BackendTimeout != 0 {
		t.Fatalf("expected no backend timeout by default, got %v", cfg.BackendTimeout)
	}
	if cfg.SessionIdle != time.Hour {
		t.Fatalf("expected 60 minute session idle, got %v", cfg.SessionIdle)
	}
	if cfg.SessionMax != 1000 {
		t.Fatalf("expected 1000 sessions by default, got %d", cfg.SessionMax)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://rb.example.com/api/v1/")
	t.Setenv("BACKEND_TIMEOUT_SEC", "15")
	t.Setenv("THEME", "dark")

	cfg := Load()
	if cfg.BackendURL != "https://rb.example.com/api/v1" {
		t.Fatalf("expected trailing slash to be trimmed, got %q", cfg.BackendURL)
	}
	if cfg.Offline() {
		t.Fatalf("expected online mode")
	}
	if cfg.BackendTimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %v", cfg.BackendTimeout)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("expected dark theme, got %q", cfg.Theme)
	}
}
