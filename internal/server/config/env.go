package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. Secrets and
// deployment-specific endpoints are normally supplied this way.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address
//	AUTH_BACKEND       "local" or "proxy"
//	STORE_DRIVER       "postgres" or "memory"
//	DATABASE_DSN       PostgreSQL DSN
//	SECRET_KEY         token signing secret
//	TOKEN_VALIDITY     duration, e.g. "24h"
//	UPSTREAM_BASE_URL  base URL of the remote identity service
//	UPSTREAM_TIMEOUT   duration, e.g. "5s"
//	SECURE_COOKIES     bool
//
// Malformed duration or bool values are hard startup failures.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		cfg.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("AUTH_BACKEND"); ok {
		cfg.AuthBackend = v
	}
	if v, ok := os.LookupEnv("STORE_DRIVER"); ok {
		cfg.StoreDriver = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.TokenValidity = d
	}
	if v, ok := os.LookupEnv("UPSTREAM_BASE_URL"); ok {
		cfg.UpstreamBaseURL = v
	}
	if v, ok := os.LookupEnv("UPSTREAM_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.UpstreamTimeout = d
	}
	if v, ok := os.LookupEnv("SECURE_COOKIES"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.SecureCookies = b
	}
}
