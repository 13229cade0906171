// Package shoppy is a small storefront for handheld Linux devices. It shows
// a splash title, a product list that switches between list and grid views,
// and a product detail screen, all drawn with SDL.
//
// This package holds the blocking SDL screens. The state they drive lives in
// package view, the catalog HTTP client in package catalog and the screen
// flow in package app.
package shoppy

import (
	"log/slog"
	"strings"
	"time"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/platform/cannoli"
)

// WindowOptions are the SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures UI initialization.
type Options struct {
	WindowTitle     string        // Window title displayed in windowed mode
	Width, Height   int32         // Window size in dev mode
	Dev             bool          // Windowed development mode (ENVIRONMENT=DEV)
	WindowOptions   WindowOptions // SDL window flags
	AccentColorHex  uint32        // Custom accent color, zero keeps the theme's
	FontPath        string        // TTF font used for all text
	Cannoli         bool          // Cannoli theme; otherwise the dark theme with the NextUI power button
	Platform        string        // NextUI device name such as "tg5040", picks the power button device
	LogPath         string        // Full path for the log file including filename
	FlipFaceButtons bool          // Use direct face button mapping (A=A, B=B)
}

// Init initializes SDL, theming, fonts and input handling.
// Must be called before any screen runs. Close must be called even when Init fails.
func Init(options Options) error {
	internal.SetLogPath(options.LogPath)

	if options.Dev {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	var pbc internal.PowerButtonConfig
	if options.Cannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(options.FontPath))
	} else {
		internal.SetTheme(cannoli.InitDarkTheme(options.FontPath))
		pbc = nextUIPowerButton(options.Platform)
	}

	if options.AccentColorHex != 0 {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
		theme.PriceColor = theme.AccentColor
		internal.SetTheme(theme)
	}

	err := internal.Init(internal.InitOptions{
		Title:           options.WindowTitle,
		Width:           options.Width,
		Height:          options.Height,
		Dev:             options.Dev,
		WindowOptions:   options.WindowOptions,
		FlipFaceButtons: options.FlipFaceButtons,
		PowerButton:     pbc,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// TG5050 exposes the power key on event2, every other supported device on event1.
func nextUIPowerButton(platform string) internal.PowerButtonConfig {
	devicePath := "/dev/input/event1"
	if strings.Contains(strings.ToUpper(platform), "TG5050") {
		devicePath = "/dev/input/event2"
	}

	return internal.PowerButtonConfig{
		ButtonCode:      116,
		DevicePath:      devicePath,
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

// Close releases all SDL resources and shuts down the UI.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the log file path. Call before Init or GetLogger.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}
