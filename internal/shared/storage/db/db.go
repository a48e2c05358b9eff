package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"resume-builder/internal/shared/telemetry"
)

// ApplicationName tags index connections in pg_stat_activity unless the DSN sets one.
const ApplicationName = "resume-builder"

// ErrEmptyURL is returned when no DATABASE_URL is configured.
var ErrEmptyURL = errors.New("DATABASE_URL is empty")

// Options controls the pool backing the generated file index.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// openDB is swapped in tests.
var openDB = openPGX

// PoolOptions suits the API process: one insert per generation and paged reads.
func PoolOptions() Options {
	return Options{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

// MigrateOptions suits the one-shot migrate command.
func MigrateOptions() Options {
	return Options{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  10 * time.Second,
	}
}

var envOverrides = []struct {
	key   string
	apply func(*Options, string) error
}{
	{"DB_MAX_OPEN_CONNS", func(o *Options, raw string) (err error) { o.MaxOpenConns, err = positiveInt(raw); return }},
	{"DB_MAX_IDLE_CONNS", func(o *Options, raw string) (err error) { o.MaxIdleConns, err = positiveInt(raw); return }},
	{"DB_CONN_MAX_LIFETIME", func(o *Options, raw string) (err error) { o.ConnMaxLifetime, err = time.ParseDuration(raw); return }},
	{"DB_CONN_MAX_IDLE_TIME", func(o *Options, raw string) (err error) { o.ConnMaxIdleTime, err = time.ParseDuration(raw); return }},
	{"DB_PING_TIMEOUT", func(o *Options, raw string) (err error) { o.PingTimeout, err = time.ParseDuration(raw); return }},
}

// OptionsFromEnv applies DB_* overrides to base. Unparseable values are
// logged and leave the base value in place.
func OptionsFromEnv(base Options) Options {
	for _, o := range envOverrides {
		raw := strings.TrimSpace(os.Getenv(o.key))
		if raw == "" {
			continue
		}
		next := base
		if err := o.apply(&next, raw); err != nil {
			telemetry.Warn("db.env_invalid", map[string]any{"key": o.key, "value": raw, "error": err})
			continue
		}
		base = next
	}
	return base
}

func positiveInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

// Connect opens the index database and pings it within opts.PingTimeout.
func Connect(ctx context.Context, databaseURL string, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, ErrEmptyURL
	}

	database, err := openDB(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(database, opts)

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	stats := database.Stats()
	telemetry.Info("db.connected", map[string]any{
		"max_open": stats.MaxOpenConnections,
		"open":     stats.OpenConnections,
		"idle":     stats.Idle,
	})
	return database, nil
}

func openPGX(dsn string) (*sql.DB, error) {
	cfg, err := parseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*cfg), nil
}

func parseConfig(dsn string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	if cfg.RuntimeParams["application_name"] == "" {
		cfg.RuntimeParams["application_name"] = ApplicationName
	}
	return cfg, nil
}

func configurePool(database *sql.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		database.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		database.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		database.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime > 0 {
		database.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}
