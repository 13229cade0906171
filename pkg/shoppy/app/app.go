// Package app wires the storefront screens together: which screen runs
// first, what each screen receives, and where each outcome leads.
//
// The flow is
//
//	Splash --(timer)--> reset history, List
//	List   --(select id)--> push List, Detail(id)
//	Detail --(back)--> List
//	List   --(back)--> exit
//
// The splash screen is never reachable again once the timer has fired.
package app

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/router"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

const (
	ScreenSplash router.Screen = iota
	ScreenProductList
	ScreenProductDetail
)

// ScreenName returns a log friendly name for a screen.
func ScreenName(s router.Screen) string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenProductList:
		return "product_list"
	case ScreenProductDetail:
		return "product_detail"
	case router.ScreenExit:
		return "exit"
	default:
		return "unknown"
	}
}

// SplashInput is the (empty) parameter set of the splash screen.
type SplashInput struct{}

// ProductListInput is the parameter set of the list screen.
// Resume is only set when coming back from a detail screen.
type ProductListInput struct {
	Resume *view.ListResume
}

// ProductDetailInput is the parameter set of the detail screen.
type ProductDetailInput struct {
	ProductID int
}

// Screens runs the three blocking storefront screens.
type Screens interface {
	Splash(ctx context.Context, in SplashInput) (SplashResult, error)
	ProductList(ctx context.Context, in ProductListInput) (ProductListResult, error)
	ProductDetail(ctx context.Context, in ProductDetailInput) (ProductDetailResult, error)
}

// NewRouter registers screens and the storefront transitions on a fresh router.
func NewRouter(screens Screens, logger *slog.Logger) *router.Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := router.New().Names(ScreenName)

	r.Register(ScreenSplash, func(ctx context.Context, input any) (any, error) {
		in, _ := input.(SplashInput)
		return screens.Splash(ctx, in)
	})
	r.Register(ScreenProductList, func(ctx context.Context, input any) (any, error) {
		in, _ := input.(ProductListInput)
		return screens.ProductList(ctx, in)
	})
	r.Register(ScreenProductDetail, func(ctx context.Context, input any) (any, error) {
		in, _ := input.(ProductDetailInput)
		return screens.ProductDetail(ctx, in)
	})

	r.OnEnter(func(screen router.Screen, input any) {
		attrs := []any{"screen", ScreenName(screen), "history", r.Stack().Len()}
		if in, ok := input.(ProductDetailInput); ok {
			attrs = append(attrs, "product_id", in.ProductID)
		}
		logger.Debug("Entering screen", attrs...)
	})

	r.OnTransition(Transition)

	return r
}

// Run starts at the splash screen and returns when history is exhausted,
// the user quits, or ctx ends.
func Run(ctx context.Context, screens Screens, logger *slog.Logger) error {
	return NewRouter(screens, logger).Run(ctx, ScreenSplash, SplashInput{})
}

// Transition is the storefront's router.TransitionFunc.
func Transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenSplash:
		res, _ := result.(SplashResult)
		if res.Action != SplashActionElapsed {
			return router.ScreenExit, nil
		}
		stack.Reset()
		return ScreenProductList, ProductListInput{}

	case ScreenProductList:
		res, _ := result.(ProductListResult)
		switch res.Action {
		case ListActionSelected:
			stack.Push(ScreenProductList, ProductListInput{Resume: res.Resume}, res.Resume)
			return ScreenProductDetail, ProductDetailInput{ProductID: res.ProductID}
		case ListActionBack:
			return back(stack)
		default:
			return router.ScreenExit, nil
		}

	case ScreenProductDetail:
		res, _ := result.(ProductDetailResult)
		if res.Action == DetailActionQuit {
			return router.ScreenExit, nil
		}
		return back(stack)
	}

	return router.ScreenExit, nil
}

func back(stack *router.Stack) (router.Screen, any) {
	entry := stack.Pop()
	if entry == nil {
		return router.ScreenExit, nil
	}
	return entry.Screen, entry.Input
}
