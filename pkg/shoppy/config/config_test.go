package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://fakestoreapi.com", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.SplashDuration)
	assert.Equal(t, view.FetchErrorPolicyShow, cfg.FetchErrorPolicy())
	assert.True(t, cfg.IsCannoli())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoppy.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url = "http://localhost:8080"
request_timeout = "3s"
on_fetch_error = "stall"
accent_color = "#FF8800"

[window]
width = 640
height = 480
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, view.FetchErrorPolicyStall, cfg.FetchErrorPolicy())
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, "en", cfg.Locale, "unset keys keep defaults")

	accent, err := cfg.AccentColorHex()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF8800), accent)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoppy.toml")
	require.NoError(t, os.WriteFile(path, []byte(`baseurl = "http://localhost"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseurl")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvThenOverrides(t *testing.T) {
	env := map[string]string{
		"SHOPPY_BASE_URL":  "http://env.example",
		"SHOPPY_LOG_LEVEL": "debug",
		"ENVIRONMENT":      "DEV",
		"WINDOW_WIDTH":     "800",
		"PLATFORM":         "tg5040",
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "http://env.example", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Dev)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(768), cfg.Window.Height)
	assert.False(t, cfg.IsCannoli())

	cfg.Apply(Overrides{BaseURL: "http://flag.example", OnFetchError: "stall"})

	assert.Equal(t, "http://flag.example", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, view.FetchErrorPolicyStall, cfg.FetchErrorPolicy())
}

func TestApplyEnvBadNumber(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) string {
		if k == "WINDOW_HEIGHT" {
			return "tall"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg, err := Parse(`
base_url = "not a url"
on_fetch_error = "explode"
log_level = "loud"
accent_color = "orange"
`)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"base_url", "on_fetch_error", "log_level", "accent_color"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestRequestTimeoutZeroDisablesTimeout(t *testing.T) {
	cfg, err := Parse(`request_timeout = "0s"`)
	require.NoError(t, err)

	assert.Zero(t, cfg.RequestTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestRequestTimeoutRejectsNegative(t *testing.T) {
	cfg, err := Parse(`request_timeout = "-1s"`)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_timeout must not be negative")
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(`[window]
depth = 3`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window.depth")
}
