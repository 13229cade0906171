package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Both loggers write JSON lines to stdout and, once SetLogPath was called,
// append to the same log file.
var (
	logPath string

	outputOnce sync.Once
	output     io.Writer = os.Stdout
	logFile    *os.File
	outputErr  error // written only inside outputOnce
	warnOnce   sync.Once

	appLogger = &componentLogger{component: "app"}
	uiLogger  = &componentLogger{component: "ui"}
)

type componentLogger struct {
	once      sync.Once
	component string
	level     slog.LevelVar
	logger    *slog.Logger
}

func (c *componentLogger) get() *slog.Logger {
	c.once.Do(func() {
		openOutput()
		c.logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: &c.level})).
			With("component", c.component)
	})
	return c.logger
}

// SetLogPath sets the log file, creating parent directories on first use.
// Empty logs to stdout only. It has no effect once a logger was created.
func SetLogPath(path string) {
	logPath = path
}

func openOutput() {
	outputOnce.Do(func() {
		if logPath == "" {
			return
		}
		if outputErr = os.MkdirAll(filepath.Dir(logPath), 0o755); outputErr != nil {
			return
		}
		logFile, outputErr = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if outputErr != nil {
			return
		}
		output = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the storefront logger.
func GetLogger() *slog.Logger {
	return appLogger.get()
}

// GetInternalLogger returns the logger for SDL and rendering details.
// It reports once if the log file could not be opened.
func GetInternalLogger() *slog.Logger {
	logger := uiLogger.get()
	warnOnce.Do(func() {
		if outputErr != nil {
			logger.Warn("Logging to stdout only", "path", logPath, "error", outputErr)
		}
	})
	return logger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	appLogger.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	uiLogger.level.Set(level)
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
