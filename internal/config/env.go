package config

import "os"

// Environment variable names recognized by parseEnv.
const (
	EnvAPIBaseURL = "QUOTEJOURNAL_API_URL"
	EnvTokenFile  = "QUOTEJOURNAL_TOKEN_FILE"
)

// parseEnv overlays Config with values from the environment. Unset or
// empty variables leave the current value untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvTokenFile); v != "" {
		cfg.TokenFile = v
	}
}
