// Command catalogd serves the fixture product catalog over HTTP for
// development without network access.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/devserver"
)

var (
	addr           string
	notFoundStatus bool
	logLevel       string
)

func main() {
	root := &cobra.Command{
		Use:          "catalogd",
		Short:        "Serve the fixture product catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.Flags().BoolVar(&notFoundStatus, "not-found-status", false, "answer 404 for unknown ids instead of an empty 200")
	root.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With("component", "catalogd")

	server := &http.Server{
		Addr: addr,
		Handler: devserver.New(devserver.Fixtures(), devserver.Options{
			NotFoundStatus: notFoundStatus,
			Logger:         logger,
		}).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr, "not_found_status", notFoundStatus)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("Shutting down")
	return server.Shutdown(shutdownCtx)
}
