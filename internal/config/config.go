// Package config provides application configuration loaded from environment variables.
package config

import "fmt"

// Data backend identifiers selectable via DATA_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Auth holds token issuing configuration.
	Auth AuthConfig
	// Scheduler holds score sync scheduler configuration.
	Scheduler SchedulerConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// DataBackend selects the storage backend (postgres, redis).
	// The choice is made once at startup; repositories are constructed
	// for exactly one backend and injected into the routers.
	DataBackend string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:      LoadServerConfigFromEnv(),
		Logger:      LoadLoggerConfigFromEnv(),
		Auth:        LoadAuthConfigFromEnv(),
		Scheduler:   LoadSchedulerConfigFromEnv(),
		GinMode:     GetEnv("GIN_MODE", "release"),
		DataBackend: GetEnv("DATA_BACKEND", BackendPostgres),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	if err := c.Scheduler.Validate(); err != nil {
		return fmt.Errorf("scheduler config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if c.DataBackend != BackendPostgres && c.DataBackend != BackendRedis {
		return fmt.Errorf("invalid DATA_BACKEND: %s (must be: postgres, redis)", c.DataBackend)
	}

	return nil
}
