// Package config loads taskapp settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public collection used when nothing is configured.
const DefaultBaseURL = "https://task-db.glitch.me/data"

// Config holds every runtime setting.
type Config struct {
	BaseURL       string        `env:"TASKAPP_BASE_URL" env-default:"https://task-db.glitch.me/data"`
	LogLevel      string        `env:"TASKAPP_LOG_LEVEL" env-default:"info"`
	LogFile       string        `env:"TASKAPP_LOG_FILE"`
	ToastDuration time.Duration `env:"TASKAPP_TOAST_DURATION" env-default:"5s"`
	HTTPTimeout   time.Duration `env:"TASKAPP_HTTP_TIMEOUT" env-default:"0s"`
	ServeAddr     string        `env:"TASKAPP_SERVE_ADDR" env-default:":3000"`
	ServeDataFile string        `env:"TASKAPP_SERVE_DATA_FILE"`
}

// Load reads the given dotenv files (".env" when none are given), then the
// environment. Missing dotenv files are ignored; variables already set in the
// environment win over dotenv values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot express.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: must be an http(s) URL", c.BaseURL)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("invalid toast duration %s: must be positive", c.ToastDuration)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("invalid HTTP timeout %s: must not be negative", c.HTTPTimeout)
	}
	return nil
}
