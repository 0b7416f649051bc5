package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the runtime settings of the service.
type Config struct {
	AppPort string

	Database DatabaseConfig
	RabbitMQ RabbitMQConfig

	BcryptCost int
	LogLevel   string
	LogPretty  bool
}

// DatabaseConfig selects the relational store.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// RabbitMQConfig describes where domain events are published.
// An empty URL disables publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
	Queue    string
}

// Enabled reports whether a broker is configured.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads configuration from environment variables, and from the file named
// by CONFIG_FILE when it is set. Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=socialposts port=5432 sslmode=disable")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "social.events")
	v.SetDefault("RABBITMQ_QUEUE", "social_events")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		AppPort: v.GetString("APP_PORT"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
			Queue:    v.GetString("RABBITMQ_QUEUE"),
		},
		BcryptCost: v.GetInt("BCRYPT_COST"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogPretty:  v.GetBool("LOG_PRETTY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}
