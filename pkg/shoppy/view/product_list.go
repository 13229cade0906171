package view

import (
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
)

// Phase is the lifecycle stage of a screen's single fetch.
type Phase int

const (
	PhaseLoading Phase = iota // Request in flight, only the progress indicator shows
	PhaseLoaded               // Data available
	PhaseFailed               // Request failed and the error is shown
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// ListResume is the state the list keeps across a visit to the detail screen.
// Products holds the collection already fetched, so coming back does not
// request it again.
type ListResume struct {
	Mode         ViewMode
	FocusedIndex int
	ScrollY      int32
	Products     []catalog.Product
}

// ProductListState is the state of the product list screen.
type ProductListState struct {
	policy   FetchErrorPolicy
	phase    Phase
	products []catalog.Product
	err      error
	grid     *Grid
	resume   *ListResume
}

// NewProductListState creates list state in the loading phase.
// The view mode starts as list. A resume carrying products starts loaded
// with its focus and scroll position restored; otherwise the position is
// applied once the products arrive.
func NewProductListState(policy FetchErrorPolicy, viewport Rect, factor float32, resume *ListResume) *ProductListState {
	s := &ProductListState{
		policy: policy,
		phase:  PhaseLoading,
		grid:   NewGrid(viewport, factor),
		resume: resume,
	}
	if resume != nil {
		s.grid.SetMode(resume.Mode)
		if len(resume.Products) > 0 {
			s.Succeed(resume.Products)
		}
	}
	return s
}

// NeedsFetch reports whether the collection still has to be requested.
func (s *ProductListState) NeedsFetch() bool {
	return s.phase == PhaseLoading
}

// Begin marks a (re)issued request.
func (s *ProductListState) Begin() {
	s.phase = PhaseLoading
	s.err = nil
}

// Succeed stores the collection verbatim.
func (s *ProductListState) Succeed(products []catalog.Product) {
	s.products = products
	s.err = nil
	s.phase = PhaseLoaded
	s.grid.SetCount(len(products))

	if s.resume != nil {
		s.grid.ScrollTo(s.resume.ScrollY)
		s.grid.Focus(s.resume.FocusedIndex)
		s.resume = nil
	}
}

// Fail applies the error policy. Under FetchErrorPolicyStall the list ends up
// loaded and empty for the rest of the screen's life.
func (s *ProductListState) Fail(err error) {
	s.err = err
	if s.policy == FetchErrorPolicyStall {
		s.products = nil
		s.phase = PhaseLoaded
		s.grid.SetCount(0)
		return
	}
	s.phase = PhaseFailed
}

func (s *ProductListState) Phase() Phase                { return s.phase }
func (s *ProductListState) Err() error                  { return s.err }
func (s *ProductListState) Products() []catalog.Product { return s.products }
func (s *ProductListState) Mode() ViewMode              { return s.grid.Mode() }
func (s *ProductListState) Columns() int                { return s.grid.Columns() }
func (s *ProductListState) Grid() *Grid                 { return s.grid }
func (s *ProductListState) Policy() FetchErrorPolicy    { return s.policy }

// ShowsSpinner reports whether only the progress indicator should render.
func (s *ProductListState) ShowsSpinner() bool {
	return s.phase == PhaseLoading
}

// CanRetry reports whether the retry affordance is available.
func (s *ProductListState) CanRetry() bool {
	return s.phase == PhaseFailed
}

// CanToggle reports whether the view mode switch is available. It is not
// while the request is in flight.
func (s *ProductListState) CanToggle() bool {
	return s.phase != PhaseLoading
}

// Toggle flips the view mode and relays out the whole collection.
// While loading it changes nothing and returns the current mode.
func (s *ProductListState) Toggle() ViewMode {
	if !s.CanToggle() {
		return s.grid.Mode()
	}
	s.grid.SetMode(s.grid.Mode().Toggle())
	return s.grid.Mode()
}

// Cards returns the visible card layouts.
func (s *ProductListState) Cards() []CardLayout {
	if s.phase != PhaseLoaded {
		return nil
	}
	return s.grid.Layout(s.products)
}

// Move shifts focus with a directional button.
func (s *ProductListState) Move(m Move) bool {
	if s.phase != PhaseLoaded {
		return false
	}
	return s.grid.Move(m)
}

// Activate returns the navigation intent for the focused card.
func (s *ProductListState) Activate() CardPress {
	if s.phase != PhaseLoaded || len(s.products) == 0 {
		return CardPress{Kind: PressNone}
	}
	return CardPress{Kind: PressNavigate, ProductID: s.products[s.grid.Focused()].ID}
}

// Select focuses card index and returns the navigation intent for it.
// An index outside the collection yields PressNone.
func (s *ProductListState) Select(index int) CardPress {
	if s.phase != PhaseLoaded || index < 0 || index >= len(s.products) {
		return CardPress{Kind: PressNone}
	}
	s.grid.Focus(index)
	return s.Activate()
}

// Press hit tests a touch or click.
func (s *ProductListState) Press(p Point) CardPress {
	if s.phase != PhaseLoaded {
		return CardPress{Kind: PressNone}
	}
	return s.grid.Press(p, s.products)
}

// Resume captures the collection and position to restore after returning
// from a detail screen.
func (s *ProductListState) Resume() *ListResume {
	return &ListResume{
		Mode:         s.grid.Mode(),
		FocusedIndex: s.grid.Focused(),
		ScrollY:      s.grid.ScrollY(),
		Products:     s.products,
	}
}
