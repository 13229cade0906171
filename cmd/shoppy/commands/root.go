package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/app"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/config"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/devserver"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/locale"
)

var (
	configPath string
	overrides  config.Overrides
	devCatalog bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "shoppy",
		Short:         "Handheld storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	root.Flags().StringVar(&overrides.BaseURL, "base-url", "", "catalog base URL (default "+catalog.DefaultBaseURL+")")
	root.Flags().StringVar(&overrides.LogLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().StringVar(&overrides.Locale, "locale", "", "UI language tag (e.g. en, de)")
	root.Flags().StringVar(&overrides.OnFetchError, "on-fetch-error", "", "show or stall")
	root.Flags().BoolVar(&devCatalog, "dev-catalog", false, "serve the built-in fixtures on localhost and browse them")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "shoppy:", err)
	}
	return err
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return config.Config{}, err
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	shoppy.SetLogPath(cfg.LogPath)
	shoppy.SetRawLogLevel(cfg.LogLevel)
	logger := shoppy.GetLogger()

	if devCatalog {
		base, shutdown, err := serveFixtures(logger)
		if err != nil {
			return err
		}
		defer shutdown()
		cfg.BaseURL = base
	}

	localizer, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}

	client, err := catalog.NewClient(catalog.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger.With("component", "catalog"),
	})
	if err != nil {
		return err
	}

	accent, _ := cfg.AccentColorHex()

	defer shoppy.Close()
	err = shoppy.Init(shoppy.Options{
		WindowTitle:    localizer.T(locale.SplashTitle),
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		Dev:            cfg.Dev,
		AccentColorHex: accent,
		FontPath:       cfg.FontPath,
		Cannoli:        cfg.IsCannoli(),
		Platform:       cfg.Platform,
		LogPath:        cfg.LogPath,
		WindowOptions: shoppy.WindowOptions{
			Borderless: cfg.Window.Borderless,
			Resizable:  cfg.Window.Resizable,
			Fullscreen: cfg.Window.Fullscreen,
		},
	})
	if err != nil {
		logger.Error("UI initialization failed", "error", err)
		return err
	}

	logger.Info("Starting",
		"base_url", client.BaseURL(),
		"locale", localizer.Tag().String(),
		"on_fetch_error", cfg.FetchErrorPolicy().String(),
		"dev", cfg.Dev)

	screens := shoppy.NewScreens(ctx, shoppy.ScreensOptions{
		Source:         client,
		Labels:         shoppy.LabelsFor(localizer),
		Policy:         cfg.FetchErrorPolicy(),
		SplashDuration: cfg.SplashDuration,
		Logger:         logger,
	})
	defer screens.Close()

	err = app.Run(ctx, screens, logger)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logger.Info("Exiting")
		return nil
	case shoppy.IsInfrastructureError(err):
		logger.Error("UI failure", "error", err)
	default:
		logger.Error("Exited with error", "error", err)
	}
	return err
}

// serveFixtures runs the fixture catalog on a free loopback port.
func serveFixtures(logger *slog.Logger) (string, func(), error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("dev catalog: %w", err)
	}

	server := &http.Server{
		Handler: devserver.New(devserver.Fixtures(), devserver.Options{
			Logger: logger.With("component", "devserver"),
		}).Handler(),
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Dev catalog stopped", "error", err)
		}
	}()

	base := "http://" + listener.Addr().String()
	logger.Info("Serving dev catalog", "base_url", base)
	return base, func() { _ = server.Close() }, nil
}
