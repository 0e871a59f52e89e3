package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"projectvault/logging"
)

type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Preferences PreferencesConfig
	Log         logging.Config
}

// DatabaseConfig points at the hosted catalog database. Both values are
// required: URL is the base connection string, AccessKey is the credential
// presented with it.
type DatabaseConfig struct {
	URL       string
	AccessKey string
	// Backend is "postgres" or "memory". The memory backend serves the
	// seeded fixture catalog and is meant for local demos.
	Backend string
}

type ServerConfig struct {
	Addr string
}

type PreferencesConfig struct {
	// RedisURL is optional; preferences stay in process memory without it.
	RedisURL string
	// DeviceID namespaces the persisted keys of one browsing device.
	DeviceID string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		Database: DatabaseConfig{
			URL:       os.Getenv("DATABASE_URL"),
			AccessKey: os.Getenv("DATABASE_ACCESS_KEY"),
			Backend:   getEnv("STORE", "postgres"),
		},
		Server: ServerConfig{
			Addr: getEnv("ADDR", "127.0.0.1:8080"),
		},
		Preferences: PreferencesConfig{
			RedisURL: os.Getenv("REDIS_URL"),
			DeviceID: getEnv("DEVICE_ID", "local"),
		},
		Log: logging.Config{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Backend {
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
		if c.Database.AccessKey == "" {
			return fmt.Errorf("DATABASE_ACCESS_KEY is required")
		}
	case "memory":
	default:
		return fmt.Errorf("STORE must be postgres or memory, got %q", c.Database.Backend)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("ADDR is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
