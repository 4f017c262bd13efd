package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Postgres  PostgresConfig
	Redis     RedisConfig
	Mongo     MongoConfig
	RateLimit RateLimitConfig
	Audit     AuditConfig
}

type PostgresConfig struct {
	// URL, when set, overrides the individual connection fields.
	URL          string        `env:"DATABASE_URL"`
	Host         string        `env:"DB_HOST,          default=localhost"`
	Port         int           `env:"DB_PORT,          default=5432"`
	Name         string        `env:"DB_NAME,          default=Cabeleireiro"`
	User         string        `env:"DB_USER,          default=postgres"`
	Password     string        `env:"DB_PASSWORD"`
	SSLMode      string        `env:"DB_SSLMODE,       default=disable"`
	MaxConns     int32         `env:"DB_MAX_CONNS,     default=10"`
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT, default=5s"`
}

type RedisConfig struct {
	Enabled        bool          `env:"REDIS_ENABLED,   default=false"`
	Addr           string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type MongoConfig struct {
	Enabled  bool   `env:"MONGO_ENABLED, default=false"`
	URI      string `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,      default=cabeleireiro"`
}

// RateLimitConfig limits write requests per client IP. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS,   default=5"`
	Burst int     `env:"RATE_LIMIT_BURST, default=10"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// IsDevelopment reports whether human-readable logs should be emitted.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
