package config_test

import (
	"testing"

	"github.com/rentline/rentline/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Unset any env vars that might be set.
	t.Setenv("RENTLINE_ADDR", "")
	t.Setenv("RENTLINE_DB", "")
	t.Setenv("RENTLINE_AUTH_TOKEN", "")
	t.Setenv("RENTLINE_ADMIN_EMAIL", "")
	t.Setenv("RENTLINE_ADMIN_PASSWORD", "")
	t.Setenv("RENTLINE_SKIP_SEED", "")

	cfg := config.Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.DBPath != ":memory:" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, ":memory:")
	}
	if cfg.AuthToken != "" {
		t.Errorf("AuthToken = %q, want empty", cfg.AuthToken)
	}
	if cfg.AdminEmail != "admin@rentline.local" {
		t.Errorf("AdminEmail = %q, want %q", cfg.AdminEmail, "admin@rentline.local")
	}
	if cfg.SkipSeed {
		t.Error("SkipSeed = true, want false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RENTLINE_ADDR", ":9090")
	t.Setenv("RENTLINE_DB", "/tmp/rentline-test.db")
	t.Setenv("RENTLINE_AUTH_TOKEN", "secret-token")
	t.Setenv("RENTLINE_SKIP_SEED", "1")

	cfg := config.Load()

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.DBPath != "/tmp/rentline-test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/rentline-test.db")
	}
	if cfg.AuthToken != "secret-token" {
		t.Errorf("AuthToken = %q, want %q", cfg.AuthToken, "secret-token")
	}
	if !cfg.SkipSeed {
		t.Error("SkipSeed = false, want true")
	}
}
