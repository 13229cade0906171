// Package config loads shoppy's settings from an optional TOML file, then the
// environment, then command line overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// Window mirrors the SDL window flags plus the windowed size used in dev mode.
type Window struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Borderless bool  `toml:"borderless"`
	Resizable  bool  `toml:"resizable"`
	Fullscreen bool  `toml:"fullscreen"`
}

// Config is the complete application configuration.
type Config struct {
	BaseURL        string        `toml:"base_url"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	SplashDuration time.Duration `toml:"splash_duration"`
	OnFetchError   string        `toml:"on_fetch_error"` // "show" or "stall"
	Locale         string        `toml:"locale"`
	LogLevel       string        `toml:"log_level"`
	LogPath        string        `toml:"log_path"`
	FontPath       string        `toml:"font_path"`
	AccentColor    string        `toml:"accent_color"` // "#RRGGBB", empty keeps the theme color
	Platform       string        `toml:"platform"`     // "cannoli" or a NextUI device name
	Window         Window        `toml:"window"`

	Dev bool `toml:"-"`
}

// Overrides holds command line values. Empty fields are left untouched.
type Overrides struct {
	BaseURL      string
	LogLevel     string
	Locale       string
	OnFetchError string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        catalog.DefaultBaseURL,
		RequestTimeout: 15 * time.Second,
		SplashDuration: view.DefaultSplashDuration,
		OnFetchError:   view.FetchErrorPolicyShow.String(),
		Locale:         "en",
		LogLevel:       "info",
		LogPath:        "logs/shoppy.log",
		FontPath:       "/mnt/SDCARD/System/fonts/Cannoli.ttf",
		Window: Window{
			Width:  1024,
			Height: 768,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Parse(data string) (Config, error) {
	cfg := Default()

	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables read through getenv.
// A nil getenv uses os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(constants.BaseURLEnvVar); v != "" {
		c.BaseURL = v
	}
	if v := getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := getenv(constants.LocaleEnvVar); v != "" {
		c.Locale = v
	}
	if v := getenv(constants.PlatformEnvVar); v != "" {
		c.Platform = v
	}

	c.Dev = getenv(constants.EnvironmentEnvVar) == constants.Development

	for name, dst := range map[string]*int32{
		constants.WindowWidthEnvVar:  &c.Window.Width,
		constants.WindowHeightEnvVar: &c.Window.Height,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", name, v, err)
		}
		*dst = int32(n)
	}

	return nil
}

// Apply overlays command line values.
func (c *Config) Apply(o Overrides) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	if o.OnFetchError != "" {
		c.OnFetchError = o.OnFetchError
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout))
	}
	if c.SplashDuration < 0 {
		errs = append(errs, fmt.Errorf("splash_duration must not be negative, got %s", c.SplashDuration))
	}
	if _, err := view.ParseFetchErrorPolicy(c.OnFetchError); err != nil {
		errs = append(errs, fmt.Errorf("on_fetch_error: %w", err))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", c.Locale, err))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if _, err := c.AccentColorHex(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// FetchErrorPolicy returns the parsed on_fetch_error value.
func (c Config) FetchErrorPolicy() view.FetchErrorPolicy {
	policy, _ := view.ParseFetchErrorPolicy(c.OnFetchError)
	return policy
}

// AccentColorHex parses accent_color. Zero means no override.
func (c Config) AccentColorHex() (uint32, error) {
	if c.AccentColor == "" {
		return 0, nil
	}
	raw := strings.TrimPrefix(strings.TrimSpace(c.AccentColor), "#")
	if len(raw) != 6 {
		return 0, fmt.Errorf("accent_color %q must be #RRGGBB", c.AccentColor)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("accent_color %q must be #RRGGBB", c.AccentColor)
	}
	return uint32(v), nil
}

// IsCannoli reports whether the Cannoli theme and input layout should be used.
func (c Config) IsCannoli() bool {
	return c.Platform == "" || strings.EqualFold(c.Platform, "cannoli")
}
