package shoppy

import (
	"context"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/app"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// ScreensOptions configures NewScreens.
type ScreensOptions struct {
	Source         ProductSource
	Labels         Labels
	Policy         view.FetchErrorPolicy
	SplashDuration time.Duration
	Logger         *slog.Logger
}

// Screens runs the SDL screens for app.Run. Closing the window ends the
// current screen with its quit action.
type Screens struct {
	source         ProductSource
	images         *ImageCache
	labels         Labels
	policy         view.FetchErrorPolicy
	splashDuration time.Duration
	logger         *slog.Logger
}

var _ app.Screens = (*Screens)(nil)

// NewScreens creates the screen set. Images downloads are bound to ctx.
// Must be called after Init, and closed before the package level Close.
func NewScreens(ctx context.Context, options ScreensOptions) *Screens {
	logger := options.Logger
	if logger == nil {
		logger = GetLogger()
	}

	return &Screens{
		source:         options.Source,
		images:         NewImageCache(ctx, options.Source),
		labels:         options.Labels.orDefault(),
		policy:         options.Policy,
		splashDuration: options.SplashDuration,
		logger:         logger,
	}
}

// Close releases the shared image cache.
func (s *Screens) Close() {
	s.images.Close()
}

func (s *Screens) Splash(ctx context.Context, _ app.SplashInput) (app.SplashResult, error) {
	_, err := Splash(ctx, SplashOptions{Title: s.labels.SplashTitle, Duration: s.splashDuration})
	switch {
	case IsCancelled(err):
		return app.SplashResult{Action: app.SplashActionQuit}, nil
	case err != nil:
		return app.SplashResult{}, err
	}
	return app.SplashResult{Action: app.SplashActionElapsed}, nil
}

func (s *Screens) ProductList(ctx context.Context, in app.ProductListInput) (app.ProductListResult, error) {
	res, err := ProductList(ctx, ProductListOptions{
		Source: s.source,
		Images: s.images,
		Policy: s.policy,
		Resume: in.Resume,
		Labels: s.labels,
		Logger: s.logger,
	})
	switch {
	case IsCancelled(err):
		return app.ProductListResult{Action: app.ListActionQuit}, nil
	case err != nil:
		return app.ProductListResult{}, err
	}

	if res.Action == ProductListActionBack {
		return app.ProductListResult{Action: app.ListActionBack}, nil
	}
	return app.ProductListResult{
		Action:    app.ListActionSelected,
		ProductID: res.ProductID,
		Resume:    res.Resume,
	}, nil
}

func (s *Screens) ProductDetail(ctx context.Context, in app.ProductDetailInput) (app.ProductDetailResult, error) {
	_, err := ProductDetail(ctx, ProductDetailOptions{
		ProductID: in.ProductID,
		Source:    s.source,
		Images:    s.images,
		Policy:    s.policy,
		Labels:    s.labels,
		Logger:    s.logger,
	})
	switch {
	case IsCancelled(err):
		return app.ProductDetailResult{Action: app.DetailActionQuit}, nil
	case err != nil:
		return app.ProductDetailResult{}, err
	}
	return app.ProductDetailResult{Action: app.DetailActionBack}, nil
}
