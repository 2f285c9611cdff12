// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server settings. Values come from environment variables;
// the serve command may override the port with its flag.
type Config struct {
	Port int

	LogJSON  bool
	LogDebug bool

	// SessionTTL of zero keeps sessions until deleted explicitly.
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:                 getEnvInt("PORT", 8000),
		LogJSON:              getEnvBool("LOG_JSON", false),
		LogDebug:             getEnvBool("LOG_DEBUG", false),
		SessionTTL:           getEnvDuration("SESSION_TTL", 0),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: session TTL must be non-negative")
	}
	if c.SessionTTL > 0 && c.SessionSweepInterval <= 0 {
		return fmt.Errorf("config error: session TTL requires a positive sweep interval")
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
