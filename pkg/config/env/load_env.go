package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding the ones
// already set. ENV_PATH takes precedence over defaultPath. A missing file is
// an error only when env is empty or "local".
func LoadDotEnv(env string, defaultPath string) error {
	envPath := Get("ENV_PATH", defaultPath)

	err := godotenv.Load(envPath)
	if err != nil {
		if env == "local" || env == "" {
			slog.Warn("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}

	slog.Debug("Loaded .env", "path", envPath)
	return nil
}

// Get returns the value of key, or fallback when it is unset or empty
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
