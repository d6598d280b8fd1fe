package config

import (
	"os"
	"path/filepath"
)

// DefaultAPIBaseURL is used when no other source configures the API
// location.
const DefaultAPIBaseURL = "http://localhost:8080/api"

// Config holds runtime settings for the quote journal CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API. All request paths
//     are resolved relative to it.
//   - TokenFile: path of the file persisting the auth token between runs.
type Config struct {
	APIBaseURL string
	TokenFile  string
}

// LoadDefaults populates c with sensible defaults. The token file lands
// in the user's home directory; if that cannot be resolved, the current
// directory is used.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.TokenFile = filepath.Join(home, ".quotejournal", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
