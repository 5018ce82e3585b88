package config

import (
	"fmt"
	"os"
	"strconv"

	domainconfig "sceneit/domain/config"
)

// Config holds all application configuration
type Config struct {
	Environment string
	LogLevel    string

	// Domain rule overrides
	MaxTitleLength         int
	MaxNameLength          int
	MaxScenesPerStoryboard int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	defaults := domainconfig.DefaultDomainConfig()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		MaxTitleLength:         getEnvInt("MAX_TITLE_LENGTH", defaults.MaxTitleLength),
		MaxNameLength:          getEnvInt("MAX_NAME_LENGTH", defaults.MaxNameLength),
		MaxScenesPerStoryboard: getEnvInt("MAX_SCENES", defaults.MaxScenesPerStoryboard),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.MaxTitleLength <= 0 || c.MaxNameLength <= 0 || c.MaxScenesPerStoryboard <= 0 {
		return fmt.Errorf("limits must be positive")
	}

	return nil
}

// DomainConfig converts the runtime configuration into domain business rules
func (c *Config) DomainConfig() *domainconfig.DomainConfig {
	cfg := domainconfig.DefaultDomainConfig()
	cfg.MaxTitleLength = c.MaxTitleLength
	cfg.MaxNameLength = c.MaxNameLength
	cfg.MaxScenesPerStoryboard = c.MaxScenesPerStoryboard
	return cfg
}

// IsDevelopment reports whether this is a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
