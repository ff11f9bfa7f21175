package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Depending on this interface instead of *Config keeps handlers and stores
// easy to test with small fakes.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration
	GetStripeClientID() string
	GetStripeSecretKey() string
	GetStripeConnectURL() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string `env:"SERVER_ADDR" envDefault:":8080"`
	AppBaseURL    string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"insecure-development-secret"`

	DBUrl            string        `env:"SURREAL_URL"`
	DBNs             string        `env:"SURREAL_NS"`
	DBDb             string        `env:"SURREAL_DB"`
	DBUser           string        `env:"SURREAL_USER" envDefault:"root"`
	DBPass           string        `env:"SURREAL_PASS" envDefault:"root"`
	DBQueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`
	DBExecuteTimeout time.Duration `env:"DB_EXECUTE_TIMEOUT" envDefault:"10s"`

	StripeClientID   string `env:"STRIPE_CLIENT_ID"`
	StripeSecretKey  string `env:"STRIPE_SECRET_KEY"`
	StripeConnectURL string `env:"STRIPE_CONNECT_URL" envDefault:"https://connect.stripe.com"`
}

// Load reads the .env file if present and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New loads configuration from environment variables and exits on failure.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
		return fmt.Errorf("required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set")
	}
	if c.DBQueryTimeout <= 0 || c.DBExecuteTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT and DB_EXECUTE_TIMEOUT must be positive durations")
	}
	return nil
}

func (c *Config) GetServerAddr() string              { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string              { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string           { return c.SessionSecret }
func (c *Config) GetDBURL() string                   { return c.DBUrl }
func (c *Config) GetDBNs() string                    { return c.DBNs }
func (c *Config) GetDBDb() string                    { return c.DBDb }
func (c *Config) GetDBUser() string                  { return c.DBUser }
func (c *Config) GetDBPass() string                  { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration   { return c.DBQueryTimeout }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
func (c *Config) GetStripeClientID() string          { return c.StripeClientID }
func (c *Config) GetStripeSecretKey() string         { return c.StripeSecretKey }
func (c *Config) GetStripeConnectURL() string        { return c.StripeConnectURL }
