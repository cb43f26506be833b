package config

import "time"

// Config holds runtime settings for the EduHub CLI.
type Config struct {
	// APIBaseURL is the content API root, e.g. http://localhost:5000/api.
	APIBaseURL string
	// DatabasePath is the SQLite file holding the session, content cache
	// and upload journal.
	DatabasePath string
	// RequestTimeout bounds every API call; a timeout is reported as unreachable.
	RequestTimeout time.Duration
	// StatusResetDelay is how long an upload status message stays visible
	// before the tab's upload widget returns to idle.
	StatusResetDelay time.Duration
	// RefreshDelay is the pause between a successful upload and the tab reload.
	RefreshDelay time.Duration
	// DownloadDir receives files fetched with the download command.
	DownloadDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "eduhub.db"
	c.RequestTimeout = 30 * time.Second
	c.StatusResetDelay = 3 * time.Second
	c.RefreshDelay = 1 * time.Second
	c.DownloadDir = "download"
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
