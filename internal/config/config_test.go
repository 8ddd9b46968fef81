package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("AUTOSAVE_DELAY_MS", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen defaults: %+v", cfg)
	}
	if cfg.DatabasePath != "amalan.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.AutosaveDelay != time.Second {
		t.Fatalf("unexpected autosave delay %v", cfg.AutosaveDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("ADMIN_EMAIL", " Admin@Example.COM ")
	t.Setenv("AUTOSAVE_DELAY_MS", "250")

	cfg := Load()
	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.AdminEmail != "admin@example.com" {
		t.Fatalf("expected lowercased admin email, got %q", cfg.AdminEmail)
	}
	if cfg.AutosaveDelay != 250*time.Millisecond {
		t.Fatalf("unexpected autosave delay %v", cfg.AutosaveDelay)
	}
}

func TestLoadIgnoresBadDelay(t *testing.T) {
	t.Setenv("AUTOSAVE_DELAY_MS", "not-a-number")

	cfg := Load()
	if cfg.AutosaveDelay != time.Second {
		t.Fatalf("expected default delay for bad input, got %v", cfg.AutosaveDelay)
	}
}
