package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. A .env file, when present, is loaded
// into the environment first by main.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	AssetBaseURL string        `env:"ASSET_BASE_URL"`
	ContactDelay time.Duration `env:"CONTACT_DELAY" envDefault:"0s"`
	SMTP         SMTP
}

type SMTP struct {
	Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	To       string `env:"TO_EMAIL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
