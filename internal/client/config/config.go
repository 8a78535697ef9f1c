// Package config loads runtime settings for the Hack or Snooze CLI from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence.
package config

import "github.com/hacksnooze/hacksnooze-go/internal/client/client"

// Config holds runtime settings for the Hack or Snooze CLI.
//
// Fields:
//   - APIBaseURL: base URL of the story service.
//   - SessionDBPath: path of the local SQLite file holding the saved session.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
