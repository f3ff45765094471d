package config

import "time"

// Config holds runtime settings for the Thoughts CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: location of the local SQLite session database.
type Config struct {
	ServerBaseURL  string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = "thoughts.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
