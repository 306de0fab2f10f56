// Package serverconfig loads the demo HTTP server's configuration from
// environment variables. Grounded on the teacher's pkg/config/config.go:
// same "required, validated, fail fast" shape, generalised from the
// teacher's JWT-secret-for-gameplay-sessions purpose to signing the
// grid-state session tokens this server's decode/solve/render endpoints
// pass back and forth.
package serverconfig

import (
	"errors"
	"os"
)

// Config is the demo server's resolved environment.
type Config struct {
	SessionSecret   string
	Port            string
	DefaultStrategy string
}

// Load reads Config from the environment. SESSION_SECRET is required and
// validated the way the teacher validates JWT_SECRET: present, not the
// placeholder value, and long enough to resist brute force.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")

	if secret == "" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET environment variable is required but not set")
	}
	if secret == "changeme" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET cannot be 'changeme' - please set a secure secret")
	}
	if len(secret) < 32 {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET must be at least 32 characters long")
	}

	return &Config{
		SessionSecret:   secret,
		Port:            getEnv("PORT", "8080"),
		DefaultStrategy: getEnv("DEFAULT_STRATEGY", "all"),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
