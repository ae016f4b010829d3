package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPPort            string
	AdminAPIKey         string
	ShutdownTimeout     time.Duration
	SheetsSpreadsheetID string
	GoogleCredentials   string // service account JSON
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:            envOrDefault("HTTP_PORT", "8080"),
		AdminAPIKey:         envOrDefault("ADMIN_API_KEY", ""),
		ShutdownTimeout:     envOrDefaultDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		SheetsSpreadsheetID: envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		GoogleCredentials:   envOrDefault("GOOGLE_CREDENTIALS_JSON", ""),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
