package infra

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"heasy_mc.db"`

	// JWT
	JWTSecret string `env:"JWT_SECRET"`
	JWTExpiry string `env:"JWT_EXPIRY" envDefault:"24h"`

	// Server
	APIPort int `env:"API_PORT" envDefault:"8000"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`

	// Bootstrap seed data
	SeedAdminEmail    string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@heasymc.local"`
	SeedAdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"changeme"`
	SeedContactLink   string `env:"SEED_CONTACT_LINK" envDefault:"https://discord.gg/heasymc"`

	// Dev
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS" envDefault:"false"`
}

// LoadConfig parses environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks for insecure configuration that must not run in production.
// Set ALLOW_INSECURE_DEFAULTS=true to bypass (local dev only).
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required; there is no built-in default")
	}
	if c.AllowInsecureDefaults {
		return nil
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is too short (%d chars); minimum 32 characters required", len(c.JWTSecret))
	}
	if c.SeedAdminPassword == "changeme" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is set to the insecure default; set a strong password or set ALLOW_INSECURE_DEFAULTS=true for local dev")
	}
	return nil
}
