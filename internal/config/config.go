package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	sessionSecretEnvKey = "SESSION_SECRET"
	sessionTTLEnvKey    = "SESSION_TTL"
	secureCookieEnvKey  = "SECURE_COOKIES"
	redisURLEnvKey      = "REDIS_URL"
	logLevelEnvKey      = "LOG_LEVEL"

	defaultSessionTTL = 24 * time.Hour
)

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
	SessionTTL      time.Duration
	SecureCookies   bool
	RedisURL        string
	LogLevel        string
}

// NewApp reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	sessionSecret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok || sessionSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	sessionTTL := defaultSessionTTL
	if raw, ok := os.LookupEnv(sessionTTLEnvKey); ok && raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", sessionTTLEnvKey, err)
		}
		if ttl <= 0 {
			return App{}, fmt.Errorf("%s must be positive, got %s", sessionTTLEnvKey, raw)
		}
		sessionTTL = ttl
	}

	secureCookies := false
	if raw, ok := os.LookupEnv(secureCookieEnvKey); ok && raw != "" {
		secure, err := strconv.ParseBool(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", secureCookieEnvKey, err)
		}
		secureCookies = secure
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		SessionSecret:   sessionSecret,
		SessionTTL:      sessionTTL,
		SecureCookies:   secureCookies,
		RedisURL:        os.Getenv(redisURLEnvKey),
		LogLevel:        os.Getenv(logLevelEnvKey),
	}, nil
}
