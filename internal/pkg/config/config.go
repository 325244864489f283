package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DB_URL" envDefault:"spotwatch.db"`

	// VAPID credentials for Web Push delivery.
	VAPIDPublicKey  string `env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `env:"VAPID_PRIVATE_KEY"`
	VAPIDSubject    string `env:"VAPID_SUBJECT" envDefault:"mailto:admin@spotwatch.app"`

	// Cron spec (with seconds) for the daily reminder pass.
	ReminderCronSpec string `env:"REMINDER_CRON" envDefault:"0 0 9 * * *"`

	// Upper bound on a single push send. Web Push endpoints can hang.
	PushTimeout time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
