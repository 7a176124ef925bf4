package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is a development-only fallback. Validate refuses to start a
// production process without an explicit JWT_SECRET.
const devJWTSecret = "moviesflix-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	StaticDir string        `env:"STATIC_DIR, default=public"`

	// CORSOrigins is the browser origin allow-list, comma separated.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:1234,http://localhost:4200"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=moviesflix"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,  default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate enforces the startup preconditions: the database connection
// string is always mandatory, and the signing secret is mandatory in
// production. In development a missing secret falls back to devJWTSecret;
// the caller is expected to log a warning when SecretIsFallback reports so.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("config: MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		if c.IsProduction() {
			return fmt.Errorf("config: JWT_SECRET is required in production")
		}
		c.JWTSecret = devJWTSecret
	}
	return nil
}

// SecretIsFallback reports whether the process is running on the
// development-only signing secret.
func (c *Config) SecretIsFallback() bool {
	return c.JWTSecret == devJWTSecret
}
