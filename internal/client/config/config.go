package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// GoogleConfig holds the OAuth client used for Google sign-in.
//
// An empty ClientID disables the provider: sign-in then reports the
// provider as unavailable instead of failing later in the flow.
type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectHost string `env:"GOOGLE_REDIRECT_HOST"`
}

// Config holds runtime settings for the growlog CLI.
//
// Fields:
//   - APIBaseURL: base URL every API request is resolved against.
//   - RequestTimeout: upper bound for a single HTTP round trip.
//   - DatabasePath: SQLite file backing device-local storage.
//   - DeviceKeyPath: file holding the key that seals stored credentials.
//   - LogLevel / LogFormat: slog handler settings.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"DATABASE_PATH"`
	DeviceKeyPath  string        `env:"DEVICE_KEY_PATH"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
	Google         GoogleConfig
}

// EnvPrefix namespaces every environment variable read by the config.
const EnvPrefix = "GROWLOG_"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "growlog.db"
	c.DeviceKeyPath = "growlog.key"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Google.RedirectHost = "127.0.0.1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseEnv overlays variables prefixed with EnvPrefix. Unset variables leave
// the current values untouched.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
