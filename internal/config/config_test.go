package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.NotEmpty(t, cfg.TokenFile)
	require.Equal(t, "token", filepath.Base(cfg.TokenFile))
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv(EnvAPIBaseURL, "http://env.example:9999/api")
	t.Setenv(EnvTokenFile, "/tmp/envtoken")

	cfg := LoadConfig()

	require.Equal(t, "http://env.example:9999/api", cfg.APIBaseURL)
	require.Equal(t, "/tmp/envtoken", cfg.TokenFile)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	resetArgs(t, "-a", "http://flag.example/api")
	t.Setenv(EnvAPIBaseURL, "http://env.example/api")

	cfg := LoadConfig()

	require.Equal(t, "http://flag.example/api", cfg.APIBaseURL)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	data := []byte(`{"api_base_url": "http://json.example/api", "token_file": "/tmp/jsontoken"}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, "http://json.example/api", cfg.APIBaseURL)
	require.Equal(t, "/tmp/jsontoken", cfg.TokenFile)
}

func TestLoadConfig_JsonPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token_file": "/tmp/onlytoken"}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, "/tmp/onlytoken", cfg.TokenFile)
}

func TestParseJson_BrokenFilePanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	resetArgs(t, "-c", path)

	require.Panics(t, func() {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
	})
}
