// Package db opens and supervises the relational store connection.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultConnectTimeout  = 60 * time.Second
	defaultAcquireTimeout  = 5 * time.Second
	defaultReconnectEvery  = 5 * time.Second
	defaultMaxOpenConns    = 10
	defaultConnMaxIdleTime = 30 * time.Second
)

// retryInterval is the pause between connection attempts in ConnectWithRetry.
var retryInterval = 3 * time.Second

// Config holds database connection settings.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string // Cloud SQL instance; when set the unix socket is used instead of Host/Port

	ConnectTimeout  time.Duration // total time ConnectWithRetry keeps trying at startup
	AcquireTimeout  time.Duration // bound on a single health ping / pool acquisition
	ReconnectEvery  time.Duration // supervisor ping interval
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		User:            os.Getenv("DB_USER"),
		Password:        os.Getenv("DB_PASSWORD"),
		Name:            os.Getenv("DB_NAME"),
		Host:            envOr("DB_HOST", "localhost"),
		Port:            envOr("DB_PORT", "5432"),
		SSLMode:         envOr("DB_SSLMODE", "disable"),
		InstanceName:    os.Getenv("INSTANCE_CONNECTION_NAME"),
		ConnectTimeout:  envDuration("DB_CONNECT_TIMEOUT", defaultConnectTimeout),
		AcquireTimeout:  envDuration("DB_ACQUIRE_TIMEOUT", defaultAcquireTimeout),
		ReconnectEvery:  envDuration("DB_RECONNECT_INTERVAL", defaultReconnectEvery),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		ConnMaxIdleTime: defaultConnMaxIdleTime,
	}
}

// BuildDSN returns the PostgreSQL key/value DSN for cfg.
func BuildDSN(cfg Config) string {
	host, port := cfg.Host, cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = "5432"
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// PostgresOpener opens PostgreSQL through the pgx-backed gorm driver.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey.
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// lazyPostgresOpener opens without the initial ping so the process can start
// while the database is down; the Supervisor then keeps probing it.
func lazyPostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true, DisableAutomaticPing: true})
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// OpenDB connects to the store described by cfg and applies the pool limits.
// If the database stays unreachable for cfg.ConnectTimeout the handle is still
// returned, opened lazily; requests are answered 503 until it comes back.
func OpenDB(cfg Config) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)

	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, PostgresOpener)
	if err != nil {
		slog.Error("database unreachable at startup, continuing in degraded mode", "error", err)
		db, err = lazyPostgresOpener(dsn)
		if err != nil {
			return nil, err
		}
	}

	if err := ConfigurePool(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// ConfigurePool applies connection pool limits to db.
func ConfigurePool(db *gorm.DB, cfg Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return def
}
