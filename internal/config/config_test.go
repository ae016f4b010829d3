package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "ADMIN_API_KEY", "SHUTDOWN_TIMEOUT", "SHEETS_SPREADSHEET_ID"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.AdminAPIKey != "" {
		t.Errorf("AdminAPIKey = %q, want empty", cfg.AdminAPIKey)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADMIN_API_KEY", "secret")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.AdminAPIKey != "secret" {
		t.Errorf("AdminAPIKey = %q, want secret", cfg.AdminAPIKey)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want default 30s", cfg.ShutdownTimeout)
	}
}
