package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo Mongo
	Redis Redis
	Admin Admin

	// CatalogCacheTTL bounds how stale the cached product listing may be.
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=5m"`
}

type Mongo struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=heshima_studio"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Admin configures the default administrator seeded at startup. The password
// default exists for local development only; deployments override it.
type Admin struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@heshima.studio"`
	Password string `env:"ADMIN_PASSWORD, default=password123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
