package config

import (
	"fmt"
	"time"
)

// AuthConfig holds token issuing configuration.
type AuthConfig struct {
	// JWTSecret signs issued bearer tokens.
	JWTSecret string
	// TokenTTL is the lifetime of an issued token.
	TokenTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("JWT_SECRET", "change-me-in-production"),
		TokenTTL:  GetEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be greater than 0")
	}
	return nil
}
