package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mpdl-apps/cleaning-inventory/internal/mail"
)

// Config is the full configuration surface of the service.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Redis   RedisConfig
	Blob    BlobConfig
	Mail    MailConfig
	Archive ArchiveConfig
	Auth    AuthConfig
}

type ServerConfig struct {
	Addr string
}

// StoreConfig selects the snapshot store backend.
type StoreConfig struct {
	Driver string // "pgx" or "sqlite"
	DSN    string
}

// RedisConfig is optional; an empty Addr disables the report cache and the
// archive index.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BlobConfig points at the HTTP blob service used for archived reports.
// Empty BaseURL falls back to the in-memory store.
type BlobConfig struct {
	BaseURL string
	Token   string
}

type MailConfig struct {
	Recipient string
	SMTP      mail.SMTPConfig
}

// ArchiveConfig holds the optional auto-archive schedule (standard five
// field cron expression; empty disables the job).
type ArchiveConfig struct {
	CronSchedule string
}

// AuthConfig guards the destructive endpoints. AdminPasswordHash is a
// bcrypt hash of the admin password.
type AuthConfig struct {
	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string
}

// Load reads configuration from an optional config file and the
// environment. A .env file next to the binary is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("inventory")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.driver", "pgx")
	v.SetDefault("store.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("blob.base_url", "")
	v.SetDefault("blob.token", "")
	v.SetDefault("mail.recipient", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.to", "")
	v.SetDefault("smtp.auth_disabled", false)
	v.SetDefault("archive.cron", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.admin_user", "admin")
	v.SetDefault("auth.admin_password_hash", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{Addr: v.GetString("server.addr")},
		Store: StoreConfig{
			Driver: v.GetString("store.driver"),
			DSN:    v.GetString("store.dsn"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Blob: BlobConfig{
			BaseURL: v.GetString("blob.base_url"),
			Token:   v.GetString("blob.token"),
		},
		Mail: MailConfig{
			Recipient: v.GetString("mail.recipient"),
			SMTP: mail.SMTPConfig{
				Host:         v.GetString("smtp.host"),
				Port:         v.GetString("smtp.port"),
				User:         v.GetString("smtp.user"),
				Password:     v.GetString("smtp.password"),
				From:         v.GetString("smtp.from"),
				To:           v.GetString("smtp.to"),
				AuthDisabled: v.GetBool("smtp.auth_disabled"),
			},
		},
		Archive: ArchiveConfig{CronSchedule: v.GetString("archive.cron")},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("auth.jwt_secret"),
			AdminUser:         v.GetString("auth.admin_user"),
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields without which the service cannot start.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must be provided")
	}
	if c.Store.Driver != "pgx" && c.Store.Driver != "sqlite" {
		return fmt.Errorf("store.driver must be pgx or sqlite, got %q", c.Store.Driver)
	}
	if c.Store.DSN == "" {
		return errors.New("store.dsn must be provided")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must be provided")
	}
	if c.Auth.AdminPasswordHash == "" {
		return errors.New("auth.admin_password_hash must be provided")
	}
	return nil
}
