package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the full application configuration, loaded from environment
// variables. A .env file in the working directory is read first when
// present, so local development needs no exported variables.
type Config struct {
	Port      string `env:"PORT,       default=8080"`
	GinMode   string `env:"GIN_MODE,   default=debug"`
	APIPrefix string `env:"API_PREFIX, default=/api/v1"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	DB   DBConfig
	JWT  JWTConfig
	Mail MailConfig
}

type DBConfig struct {
	// Driver selects the relational backend: postgres, mysql or sqlite.
	Driver   string `env:"DB_DRIVER,   default=postgres"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=taskuser"`
	Password string `env:"DB_PASSWORD, default=taskpassword"`
	Name     string `env:"DB_NAME,     default=tasktracker"`
	// SQLitePath is only used when Driver is sqlite.
	SQLitePath string `env:"DB_SQLITE_PATH, default=tasktracker.sqlite3"`
}

type JWTConfig struct {
	Secret        string `env:"AUTH_JWT_SECRET, default=default-secret-key-change-me"`
	ExpireMinutes int    `env:"AUTH_JWT_ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
}

// MailConfig configures the SMTP transport. Mail sending is silently
// disabled unless every field is set.
type MailConfig struct {
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
}

// Complete reports whether the SMTP transport is fully configured.
func (m MailConfig) Complete() bool {
	return m.Host != "" && m.Port != 0 && m.Username != "" && m.Password != ""
}

// Load reads configuration from the environment using go-envconfig.
func Load() (*Config, error) {
	// Missing .env is fine: containerized deployments export variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
