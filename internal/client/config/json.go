package config

import (
	"encoding/json"
	"os"

	"github.com/eduhub/eduhub/internal/flagx"
	"github.com/eduhub/eduhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from "zero" so a partial file only overrides what it names.
type JsonConfig struct {
	APIBaseURL       *string         `json:"api_base_url"`
	DatabasePath     *string         `json:"database_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	StatusResetDelay *timex.Duration `json:"status_reset_delay"`
	RefreshDelay     *timex.Duration `json:"refresh_delay"`
	DownloadDir      *string         `json:"download_dir"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by flagx.ConfigFileFlag.
// It panics on read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StatusResetDelay != nil {
		cfg.StatusResetDelay = jc.StatusResetDelay.Duration
	}
	if jc.RefreshDelay != nil {
		cfg.RefreshDelay = jc.RefreshDelay.Duration
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
