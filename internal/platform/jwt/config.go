package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret names the HMAC signing secret variable.
	EnvKeyJWTSecret = "JWT_SECRET"
	// EnvKeyJWTExpiration names the token lifetime variable (Go duration).
	EnvKeyJWTExpiration = "JWT_EXPIRATION"

	defaultExpiration = 24 * time.Hour
)

// Config holds token signing settings.
type Config struct {
	Secret     string
	Expiration time.Duration
}

// LoadConfigFromEnv reads JWT_SECRET and JWT_EXPIRATION. An empty Secret is
// returned as-is; the caller decides whether to refuse to start.
func LoadConfigFromEnv() Config {
	exp, err := time.ParseDuration(os.Getenv(EnvKeyJWTExpiration))
	if err != nil || exp <= 0 {
		exp = defaultExpiration
	}
	return Config{Secret: os.Getenv(EnvKeyJWTSecret), Expiration: exp}
}
