package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cabeleireiro/agenda-api/internal/api"
	"github.com/cabeleireiro/agenda-api/internal/api/handler"
	"github.com/cabeleireiro/agenda-api/internal/api/middleware"
	"github.com/cabeleireiro/agenda-api/internal/core/ports"
	"github.com/cabeleireiro/agenda-api/internal/core/service"
	"github.com/cabeleireiro/agenda-api/internal/infrastructure/config"
	mongodb "github.com/cabeleireiro/agenda-api/internal/infrastructure/db/mongo"
	"github.com/cabeleireiro/agenda-api/internal/infrastructure/db/postgres"
	redisdb "github.com/cabeleireiro/agenda-api/internal/infrastructure/db/redis"
	"github.com/cabeleireiro/agenda-api/internal/infrastructure/queue"
	"github.com/cabeleireiro/agenda-api/pkg/logger"
)

const serviceName = "agenda-api"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	// database
	provider, err := postgres.Connect(ctx, postgres.Config{
		URL:          cfg.Postgres.URL,
		Host:         cfg.Postgres.Host,
		Port:         cfg.Postgres.Port,
		Database:     cfg.Postgres.Name,
		User:         cfg.Postgres.User,
		Password:     cfg.Postgres.Password,
		SSLMode:      cfg.Postgres.SSLMode,
		MaxConns:     cfg.Postgres.MaxConns,
		QueryTimeout: cfg.Postgres.QueryTimeout,
	})
	if err != nil {
		return err
	}
	defer provider.Close()
	if err := provider.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("postgres not reachable at startup, requests will fail until it is")
	} else {
		log.Info().Msg("connected to postgres")
	}

	health := map[string]handler.Pinger{"postgres": provider}

	// idempotency keys
	var idem ports.IdempotencyStore
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, idempotent creates disabled")
		} else {
			defer rdb.Close()
			store := redisdb.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
			idem = store
			health["redis"] = store
		}
	}

	// audit trail
	var (
		auditRepo  ports.AuditRepository
		recorder   ports.AuditRecorder
		dispatcher *queue.Dispatcher
	)
	if cfg.Mongo.Enabled {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Warn().Err(err).Msg("mongo unavailable, audit trail disabled")
		} else {
			defer client.Disconnect(context.Background())
			repo := mongodb.NewAuditRepository(db)
			if err := repo.EnsureIndexes(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to ensure audit indexes")
			}
			dispatcher = queue.NewDispatcher(cfg.Audit.Workers, repo, log)
			dispatcher.Start(context.Background())

			auditRepo = repo
			recorder = dispatcher
			health["mongo"] = repo
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Close()
	}

	e := api.NewRouter(api.Deps{
		Appointments: service.NewAppointmentService(postgres.NewAppointmentRepository(provider), idem, recorder, log),
		Clients:      service.NewClientService(postgres.NewClientRepository(provider), recorder, log),
		History:      service.NewHistoryService(auditRepo),
		Health:       health,
		RateLimiter:  limiter,
		Logger:       log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	// graceful shutdown
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	drainAudit(shutdownCtx, dispatcher, log)

	log.Info().Msg("shutdown complete")
	return nil
}

func drainAudit(ctx context.Context, d *queue.Dispatcher, log zerolog.Logger) {
	if d == nil {
		return
	}
	d.Close()
	if err := d.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("audit queue not fully drained")
	}
}
