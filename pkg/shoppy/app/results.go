package app

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/view"

// SplashAction is how the splash screen ended.
type SplashAction int

const (
	SplashActionElapsed SplashAction = iota // Timer fired
	SplashActionQuit                        // Window closed before the timer fired
)

// SplashResult is the outcome of the splash screen.
type SplashResult struct {
	Action SplashAction
}

// ListAction is how the product list screen ended.
type ListAction int

const (
	ListActionSelected ListAction = iota // User opened a product
	ListActionBack                       // User pressed back
	ListActionQuit                       // Window closed
)

// ProductListResult is the outcome of the product list screen.
type ProductListResult struct {
	Action    ListAction
	ProductID int
	Resume    *view.ListResume
}

// DetailAction is how the product detail screen ended.
type DetailAction int

const (
	DetailActionBack DetailAction = iota // User pressed back
	DetailActionQuit                     // Window closed
)

// ProductDetailResult is the outcome of the product detail screen.
type ProductDetailResult struct {
	Action DetailAction
}
