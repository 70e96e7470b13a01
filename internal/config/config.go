package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	dbConnEnvKey            = "DATABASE_URL"
	apiHostEnvKey           = "API_HOST"
	apiPortEnvKey           = "API_PORT"
	logLevelEnvKey          = "LOG_LEVEL"
	dbLogLevelEnvKey        = "DB_LOG_LEVEL"
	dbMaxOpenConnsEnvKey    = "DB_MAX_OPEN_CONNS"
	dbMaxIdleConnsEnvKey    = "DB_MAX_IDLE_CONNS"
	dbConnMaxLifetimeEnvKey = "DB_CONN_MAX_LIFETIME"
	shutdownTimeoutEnvKey   = "SHUTDOWN_TIMEOUT"
)

const (
	defaultHost            = "127.0.0.1"
	defaultPort            = "15876"
	defaultDBLogLevel      = "warn"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

type App struct {
	DBConnectionURL   string
	Host              string
	Port              string
	LogLevel          zapcore.Level
	DBLogLevel        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	ShutdownTimeout   time.Duration
}

// Addr is the host:port the HTTP server listens on.
func (a App) Addr() string {
	return a.Host + ":" + a.Port
}

// NewApp reads the application configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set in the
// environment take precedence over it.
func NewApp() (App, error) {
	_ = godotenv.Load()

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok || dbConn == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	logLevel, err := zapcore.ParseLevel(lookupOr(logLevelEnvKey, "info"))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, logLevelEnvKey, err)
	}

	dbLogLevel := lookupOr(dbLogLevelEnvKey, defaultDBLogLevel)
	switch dbLogLevel {
	case "silent", "error", "warn", "info":
	default:
		return App{}, fmt.Errorf("%w: %s: unknown level %q", errInvalidEnvVar, dbLogLevelEnvKey, dbLogLevel)
	}

	maxOpen, err := intOr(dbMaxOpenConnsEnvKey, defaultMaxOpenConns)
	if err != nil {
		return App{}, err
	}

	maxIdle, err := intOr(dbMaxIdleConnsEnvKey, defaultMaxIdleConns)
	if err != nil {
		return App{}, err
	}

	lifetime, err := durationOr(dbConnMaxLifetimeEnvKey, defaultConnMaxLifetime)
	if err != nil {
		return App{}, err
	}

	shutdownTimeout, err := durationOr(shutdownTimeoutEnvKey, defaultShutdownTimeout)
	if err != nil {
		return App{}, err
	}

	return App{
		DBConnectionURL:   dbConn,
		Host:              lookupOr(apiHostEnvKey, defaultHost),
		Port:              lookupOr(apiPortEnvKey, defaultPort),
		LogLevel:          logLevel,
		DBLogLevel:        dbLogLevel,
		DBMaxOpenConns:    maxOpen,
		DBMaxIdleConns:    maxIdle,
		DBConnMaxLifetime: lifetime,
		ShutdownTimeout:   shutdownTimeout,
	}, nil
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s: %q", errInvalidEnvVar, key, v)
	}
	return n, nil
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidEnvVar, key, err)
	}
	return d, nil
}
