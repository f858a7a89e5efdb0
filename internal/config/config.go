package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns       int
	DBMaxConnIdle    time.Duration
	DBMaxConnLife    time.Duration

	APIKey         string   // API key for authentication
	TrustedProxies []string // IPs allowed to set X-Forwarded-For

	EventDeadLetterPath   string
	EventLogRetentionDays int

	// OrnamentsEnabled gates the grass-session ornament bonus. Resolved once
	// here at startup; the reward engine never probes the store for it.
	OrnamentsEnabled bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "grazegarden"),
		APIKey:      getEnv("API_KEY", ""),

		EventDeadLetterPath: getEnv("EVENT_DEAD_LETTER_PATH", DefaultEventDeadLetterPath),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	retention, err := getEnvInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_LOG_RETENTION_DAYS value: %w", err)
	}
	cfg.EventLogRetentionDays = retention

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConns, err := getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns
	cfg.DBMaxConnIdle = DefaultDBMaxConnIdle
	cfg.DBMaxConnLife = DefaultDBMaxConnLife

	cfg.OrnamentsEnabled = getEnvBool("ORNAMENTS_ENABLED", true)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and coherent
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
