package kvstore

import (
	"fmt"

	appConfig "github.com/tbrandt27/football-pick-em-sub003/internal/config"
)

// Config holds redis connection configuration.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadConfigFromEnv loads redis configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appConfig.GetEnv("REDIS_HOST", "localhost"),
		Port:     appConfig.GetEnv("REDIS_PORT", "6379"),
		Password: appConfig.GetEnv("REDIS_PASSWORD", ""),
		DB:       appConfig.GetEnvInt("REDIS_DB", 0),
	}
}

// Addr returns the host:port address for the redis client.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
