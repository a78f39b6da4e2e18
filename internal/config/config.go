// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide configuration. The JWT secret has no default
// on purpose: the service refuses to start without an externally supplied
// signing key.
type Config struct {
	Env         string `env:"ENV"          envDefault:"development"`
	Port        int    `env:"PORT"         envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	JWTSecret            string        `env:"JWT_SECRET,required,notEmpty"`
	AccessTokenLifetime  time.Duration `env:"ACCESS_TOKEN_LIFETIME"  envDefault:"1h"`
	ResetTokenLifetime   time.Duration `env:"RESET_TOKEN_LIFETIME"   envDefault:"15m"`
	PasswordResetBaseURL string        `env:"PASSWORD_RESET_BASE_URL" envDefault:"https://c0d3g3n.com/reset-password"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000,https://c0d3g3n.com"`

	ConverterProvider string `env:"CONVERTER_PROVIDER" envDefault:"openai"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AccessTokenLifetime <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_LIFETIME must be positive")
	}
	if c.ResetTokenLifetime <= 0 {
		return fmt.Errorf("RESET_TOKEN_LIFETIME must be positive")
	}

	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
