package shoppy

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/view"

// ProductListAction represents how the product list screen was left.
type ProductListAction int

const (
	ProductListActionSelected ProductListAction = iota // User opened a product (A button or tap)
	ProductListActionBack                              // User pressed B
)

// ProductListResult is returned by ProductList.
type ProductListResult struct {
	Action    ProductListAction
	ProductID int              // Set for ProductListActionSelected
	Resume    *view.ListResume // Mode, focus and scroll to restore on return
}

// ProductDetailResult is returned by ProductDetail when the user goes back.
type ProductDetailResult struct {
	ProductID int
}

// SplashResult is returned by Splash once its timer fired.
type SplashResult struct {
	Elapsed bool
}
