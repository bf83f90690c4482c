package config

import (
	"time"

	"github.com/vantascaling/website/internal/pkg/env"
)

// Config carries all process-level settings. It is built once in main and
// passed into the components that need it; nothing reads ambient globals
// after startup.
type Config struct {
	AppHost string
	AppPort string
	BaseURL string

	DatabasePath string

	SMTP SMTPConfig

	ChatWebhookURL string
	AdminEmail     string
	AdminAPIKey    string

	StripeSecretKey     string
	StripeWebhookSecret string

	OutboundTimeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

// Load reads the configuration from the environment (after env.SetupEnvFile).
func Load() Config {
	return Config{
		AppHost: env.GetEnv("APP_HOST", "localhost"),
		AppPort: env.GetEnv("APP_PORT", "3000"),
		BaseURL: env.GetEnv("APP_BASE_URL", "http://localhost:3000"),

		DatabasePath: env.GetEnv("DB_PATH", "vanta.db"),

		SMTP: SMTPConfig{
			Host:     env.GetEnv("SMTP_HOST", ""),
			Port:     env.GetEnv("SMTP_PORT", "587"),
			Username: env.GetEnv("SMTP_USERNAME", ""),
			Password: env.GetEnv("SMTP_PASSWORD", ""),
			Sender:   env.GetEnv("SMTP_SENDER", ""),
		},

		ChatWebhookURL: env.GetEnv("DISCORD_WEBHOOK_URL", ""),
		AdminEmail:     env.GetEnv("ADMIN_EMAIL", "admin@vantascaling.com"),
		AdminAPIKey:    env.GetEnv("ADMIN_API_KEY", ""),

		StripeSecretKey:     env.GetEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: env.GetEnv("STRIPE_WEBHOOK_SECRET", ""),

		OutboundTimeout: 10 * time.Second,
	}
}
