package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabeleireiro/agenda-api/internal/core/domain"
)

const (
	defaultQueryTimeout = 5 * time.Second
	defaultMaxConns     = 10

	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"

	// usuario_pkey is the primary key on cpf; every other unique
	// constraint on usuario guards the email column.
	constraintClientPK = "usuario_pkey"
)

// Config captures the settings required to reach PostgreSQL. URL, when set,
// takes precedence over the individual fields.
type Config struct {
	URL          string
	Host         string
	Port         int
	Database     string
	User         string
	Password     string
	SSLMode      string
	MaxConns     int32
	QueryTimeout time.Duration
}

// ConnString returns a postgres:// URL built from the config.
func (c Config) ConnString() string {
	if c.URL != "" {
		return c.URL
	}
	port := c.Port
	if port == 0 {
		port = 5432
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(port)),
		Path:   "/" + c.Database,
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}

// Provider owns the connection pool for the lifetime of the process and hands
// out scoped connections. A connection is always released when the callback
// returns.
type Provider struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Connect builds the pool. No connection is opened until the first query, so
// an unreachable server is reported per request instead of at startup.
func Connect(ctx context.Context, cfg Config) (*Provider, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("postgres config: %w", err)
	}
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &Provider{pool: pool, timeout: timeout}, nil
}

// WithConn acquires a connection, runs fn under the query deadline and
// releases the connection on every path.
func (p *Provider) WithConn(ctx context.Context, fn func(ctx context.Context, conn *pgxpool.Conn) error) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	return storeError(fn(ctx, conn))
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (p *Provider) WithTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return p.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := fn(ctx, tx); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
}

// Ping checks that a connection can be acquired and used.
func (p *Provider) Ping(ctx context.Context) error {
	return p.WithConn(ctx, func(ctx context.Context, conn *pgxpool.Conn) error {
		return conn.Ping(ctx)
	})
}

func (p *Provider) Close() {
	p.pool.Close()
}

// storeError marks connectivity failures as domain.ErrStoreUnavailable and
// returns every other error unchanged.
func storeError(err error) error {
	if err == nil || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	if unavailable(err) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

func unavailable(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exception; 57P0x: server shutting down.
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}
	return false
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
