package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends selectable via SESSION_BACKEND.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	// Backend selects where sessions live: memory (default) or redis.
	Backend string `env:"SESSION_BACKEND, default=memory"`
	// TTL bounds session lifetime. Zero keeps sessions alive until the
	// process exits.
	TTL time.Duration `env:"SESSION_TTL, default=0"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.Backend != SessionBackendMemory && cfg.Session.Backend != SessionBackendRedis {
		return nil, fmt.Errorf("config: unknown session backend %q", cfg.Session.Backend)
	}
	return &cfg, nil
}
