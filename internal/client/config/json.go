package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/growlog/internal/flagx"
	"github.com/dmitrijs2005/growlog/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Only non-zero fields
// override the current values.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   string          `json:"database_path"`
	DeviceKeyPath  string          `json:"device_key_path"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	Google         struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectHost string `json:"redirect_host"`
	} `json:"google"`
}

// parseJson overlays cfg with the file named by -c/-config. No flag, no-op.
func parseJson(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	setIfNotEmpty(&cfg.APIBaseURL, jc.APIBaseURL)
	setIfNotEmpty(&cfg.DatabasePath, jc.DatabasePath)
	setIfNotEmpty(&cfg.DeviceKeyPath, jc.DeviceKeyPath)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.Google.ClientID, jc.Google.ClientID)
	setIfNotEmpty(&cfg.Google.ClientSecret, jc.Google.ClientSecret)
	setIfNotEmpty(&cfg.Google.RedirectHost, jc.Google.RedirectHost)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
