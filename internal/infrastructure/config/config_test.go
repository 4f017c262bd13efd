package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected HTTP defaults: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	pg := cfg.Postgres
	if pg.Host != "localhost" || pg.Port != 5432 || pg.Name != "Cabeleireiro" || pg.User != "postgres" || pg.SSLMode != "disable" {
		t.Errorf("unexpected postgres defaults: %+v", pg)
	}
	if pg.MaxConns != 10 || pg.QueryTimeout != 5*time.Second {
		t.Errorf("unexpected pool defaults: %+v", pg)
	}
	if cfg.Redis.Enabled || cfg.Mongo.Enabled {
		t.Error("redis and mongo must be disabled by default")
	}
	if cfg.Redis.IdempotencyTTL != 24*time.Hour {
		t.Errorf("IdempotencyTTL = %v", cfg.Redis.IdempotencyTTL)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 10 || cfg.Audit.Workers != 4 {
		t.Errorf("unexpected limiter/audit defaults: %+v %+v", cfg.RateLimit, cfg.Audit)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":             "9090",
		"ENV":              "production",
		"DATABASE_URL":     "postgres://u:p@db:5432/agenda",
		"DB_QUERY_TIMEOUT": "750ms",
		"REDIS_ENABLED":    "true",
		"REDIS_ADDR":       "cache:6379",
		"MONGO_ENABLED":    "true",
		"RATE_LIMIT_RPS":   "0",
		"AUDIT_WORKERS":    "2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Errorf("unexpected HTTP config: %+v", cfg)
	}
	if cfg.Postgres.URL != "postgres://u:p@db:5432/agenda" || cfg.Postgres.QueryTimeout != 750*time.Millisecond {
		t.Errorf("unexpected postgres config: %+v", cfg.Postgres)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "cache:6379" || !cfg.Mongo.Enabled {
		t.Errorf("unexpected redis/mongo config: %+v %+v", cfg.Redis, cfg.Mongo)
	}
	if cfg.RateLimit.RPS != 0 || cfg.Audit.Workers != 2 {
		t.Errorf("unexpected limiter/audit config: %+v %+v", cfg.RateLimit, cfg.Audit)
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DB_PORT": "not-a-number",
	}))
	if err == nil {
		t.Fatal("expected error for malformed DB_PORT")
	}
}
