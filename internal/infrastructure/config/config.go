package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Development fallbacks. Load refuses to start with these in production.
const (
	devAccessSecret  = "your-secret-key"
	devRefreshSecret = "your-refresh-secret-key"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// Store selects the persistence backend: "mongo" or "memory". The
	// in-memory store is meant for local development and tests.
	Store string `env:"STORE, default=mongo"`

	AccessTokenSecret  string        `env:"JWT_SECRET,         default=your-secret-key"`
	RefreshTokenSecret string        `env:"JWT_REFRESH_SECRET, default=your-refresh-secret-key"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL,   default=1h"`
	RefreshTokenTTL    time.Duration `env:"REFRESH_TOKEN_TTL,  default=168h"`

	BcryptCost int `env:"BCRYPT_COST, default=12"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=orphanage"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Store != "mongo" && c.Store != "memory" {
		return fmt.Errorf("config: STORE must be mongo or memory, got %q", c.Store)
	}
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return fmt.Errorf("config: JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.Env == "production" &&
		(c.AccessTokenSecret == devAccessSecret || c.RefreshTokenSecret == devRefreshSecret) {
		return fmt.Errorf("config: refusing to run in production with default token secrets")
	}
	return nil
}
