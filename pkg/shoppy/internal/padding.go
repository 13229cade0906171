package internal

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/view"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// Horizontal is the sum of the left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Apply shrinks r by the padding.
func (p Padding) Apply(r view.Rect) view.Rect {
	return view.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(r.W-p.Left-p.Right, 0),
		H: max(r.H-p.Top-p.Bottom, 0),
	}
}
