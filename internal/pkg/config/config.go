package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDevSecret is the compiled-in signing key used only when
// JWT_SECRET is absent. Startup must warn loudly whenever it is in use;
// it exists so local development works out of the box, never for
// production traffic.
const InsecureDevSecret = "insecure-dev-secret-do-not-use"

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/practice?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// SigningSecret returns the configured JWT secret, falling back to the
// insecure development key. The second return reports whether the fallback
// was taken so the caller can flag it.
func (c *Config) SigningSecret() (string, bool) {
	if c.JWTSecret == "" {
		return InsecureDevSecret, true
	}
	return c.JWTSecret, false
}
