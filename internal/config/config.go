package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL = "instructhub.db"
	defaultListenAddr  = ":8080"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultJWTTTL      = "24h"

	defaultStorageBucket = "documents"
)

// Config is the runtime configuration for the API server, loaded from the
// environment. Prod-like environments must not run on default secrets.
type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// External identity provider (GoTrue-style admin API). When IdentityURL
	// is empty the server falls back to the local provider backed by the
	// relational store.
	IdentityURL        string
	IdentityServiceKey string

	// S3-compatible object storage for uploaded documents. When Endpoint is
	// empty the server falls back to the in-memory store (dev only).
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	StoragePublicURL string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.IdentityURL = strings.TrimRight(strings.TrimSpace(os.Getenv("IDENTITY_URL")), "/")
	cfg.IdentityServiceKey = strings.TrimSpace(os.Getenv("IDENTITY_SERVICE_KEY"))

	cfg.StorageEndpoint = strings.TrimSpace(os.Getenv("STORAGE_ENDPOINT"))
	cfg.StorageAccessKey = strings.TrimSpace(os.Getenv("STORAGE_ACCESS_KEY"))
	cfg.StorageSecretKey = strings.TrimSpace(os.Getenv("STORAGE_SECRET_KEY"))
	cfg.StorageBucket = getEnv("STORAGE_BUCKET", defaultStorageBucket)
	cfg.StorageUseSSL = parseBoolEnv("STORAGE_USE_SSL", "true")
	cfg.StoragePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("STORAGE_PUBLIC_URL")), "/")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.StorageBucket == "" {
		return fmt.Errorf("STORAGE_BUCKET must not be empty")
	}
	if cfg.IdentityURL != "" && cfg.IdentityServiceKey == "" {
		return fmt.Errorf("IDENTITY_SERVICE_KEY must be set when IDENTITY_URL is set")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.IdentityURL == "" {
			return fmt.Errorf("in prod/release IDENTITY_URL must point at the identity provider")
		}
		if cfg.StorageEndpoint == "" {
			return fmt.Errorf("in prod/release STORAGE_ENDPOINT must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
