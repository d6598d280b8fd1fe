package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quotejournal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	APIBaseURL string `json:"api_base_url"`
	TokenFile  string `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags; when neither is set,
// no JSON is loaded. Read or unmarshal errors panic: a broken config
// file should stop startup, not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
