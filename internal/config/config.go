package config

import (
	"os"
	"strings"
	"time"
)

// Config is loaded once at startup and threaded into the services that need
// it. Nothing outside this package reads the environment for data access.
type Config struct {
	Addr           string
	BackendURL     string
	BackendAnonKey string
	BackendTimeout time.Duration
	JWTSecret      string
	DemoMutable    bool
}

func Load() Config {
	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 5 * time.Second
	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Config{
		Addr:           addr,
		BackendURL:     os.Getenv("BACKEND_URL"),
		BackendAnonKey: os.Getenv("BACKEND_ANON_KEY"),
		BackendTimeout: timeout,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DemoMutable:    os.Getenv("DEMO_MUTABLE") == "1",
	}
}

// RemoteEnabled reports whether a remote backend is configured. Both values
// must be present; anything less means demo mode.
func (c Config) RemoteEnabled() bool {
	return c.BackendURL != "" && c.BackendAnonKey != ""
}

// RemotePostgres reports whether the backend URL points at a database
// directly rather than the hosted REST API.
func (c Config) RemotePostgres() bool {
	return strings.HasPrefix(c.BackendURL, "postgres://") ||
		strings.HasPrefix(c.BackendURL, "postgresql://")
}
