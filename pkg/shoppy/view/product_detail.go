package view

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"

// ProductDetailState is the state of the product detail screen.
type ProductDetailState struct {
	productID int
	policy    FetchErrorPolicy
	phase     Phase
	product   catalog.Product
	err       error
}

// NewProductDetailState creates detail state for one product identifier.
func NewProductDetailState(productID int, policy FetchErrorPolicy) *ProductDetailState {
	return &ProductDetailState{productID: productID, policy: policy, phase: PhaseLoading}
}

func (s *ProductDetailState) ProductID() int           { return s.productID }
func (s *ProductDetailState) Phase() Phase             { return s.phase }
func (s *ProductDetailState) Err() error               { return s.err }
func (s *ProductDetailState) Policy() FetchErrorPolicy { return s.policy }
func (s *ProductDetailState) ShowsSpinner() bool       { return s.phase == PhaseLoading }
func (s *ProductDetailState) CanRetry() bool           { return s.phase == PhaseFailed }

// Begin marks a (re)issued request.
func (s *ProductDetailState) Begin() {
	s.phase = PhaseLoading
	s.err = nil
}

// Succeed stores the fetched product.
func (s *ProductDetailState) Succeed(p catalog.Product) {
	s.product = p
	s.err = nil
	s.phase = PhaseLoaded
}

// Fail applies the error policy. Under FetchErrorPolicyStall the screen keeps
// loading indefinitely.
func (s *ProductDetailState) Fail(err error) {
	s.err = err
	if s.policy == FetchErrorPolicyStall {
		s.phase = PhaseLoading
		return
	}
	s.phase = PhaseFailed
}

// Product returns the loaded product and whether it is available.
func (s *ProductDetailState) Product() (catalog.Product, bool) {
	return s.product, s.phase == PhaseLoaded
}

// Title is the screen title: the product title once loaded, otherwise fallback.
func (s *ProductDetailState) Title(fallback string) string {
	if s.phase == PhaseLoaded {
		return s.product.Title
	}
	return fallback
}

// PriceText is the formatted price of the loaded product.
func (s *ProductDetailState) PriceText() string {
	if s.phase != PhaseLoaded {
		return ""
	}
	return FormatPrice(s.product.Price)
}
