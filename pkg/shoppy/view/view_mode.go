// Package view holds the screen state of the storefront that does not depend
// on SDL: view mode, card layout and hit testing, grid focus, fetch lifetimes,
// the splash timer and the list/detail screen state machines.
package view

// ViewMode selects how the product collection is laid out.
type ViewMode int

const (
	ViewModeList ViewMode = iota // Single column, row-oriented cards
	ViewModeGrid                 // Two columns, centered cards
)

// Toggle returns the other mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewModeGrid {
		return ViewModeList
	}
	return ViewModeGrid
}

// Columns returns the number of cards per row.
func (m ViewMode) Columns() int {
	if m == ViewModeGrid {
		return 2
	}
	return 1
}

func (m ViewMode) String() string {
	if m == ViewModeGrid {
		return "grid"
	}
	return "list"
}

// Style returns the card constant bundle for the mode.
func (m ViewMode) Style() CardStyle {
	if m == ViewModeGrid {
		return gridCardStyle
	}
	return listCardStyle
}

// Direction is the main axis of a card.
type Direction int

const (
	DirectionRow    Direction = iota // Image left, details right
	DirectionColumn                  // Image on top, details below
)

// CardStyle is a bundle of layout constants for one view mode.
// All values are in unscaled logical pixels.
type CardStyle struct {
	Direction             Direction
	Padding               int32
	MarginX               int32
	MarginY               int32
	Centered              bool
	CornerRadius          int32
	ImageSize             int32
	ImageGap              int32
	TitleHeight           int32
	DescriptionLines      int
	DescriptionLineHeight int32
	DescriptionGap        int32
	PriceHeight           int32
}

var listCardStyle = CardStyle{
	Direction:             DirectionRow,
	Padding:               10,
	MarginX:               0,
	MarginY:               10,
	CornerRadius:          8,
	ImageSize:             100,
	ImageGap:              10,
	TitleHeight:           22,
	DescriptionLines:      2,
	DescriptionLineHeight: 16,
	DescriptionGap:        5,
	PriceHeight:           20,
}

var gridCardStyle = CardStyle{
	Direction:             DirectionColumn,
	Padding:               15,
	MarginX:               5,
	MarginY:               5,
	Centered:              true,
	CornerRadius:          8,
	ImageSize:             100,
	ImageGap:              10,
	TitleHeight:           22,
	DescriptionLines:      2,
	DescriptionLineHeight: 16,
	DescriptionGap:        5,
	PriceHeight:           20,
}

// Scaled returns the style with every dimension multiplied by factor.
func (s CardStyle) Scaled(factor float32) CardStyle {
	if factor <= 0 || factor == 1 {
		return s
	}
	scale := func(v int32) int32 { return int32(float32(v) * factor) }

	s.Padding = scale(s.Padding)
	s.MarginX = scale(s.MarginX)
	s.MarginY = scale(s.MarginY)
	s.CornerRadius = scale(s.CornerRadius)
	s.ImageSize = scale(s.ImageSize)
	s.ImageGap = scale(s.ImageGap)
	s.TitleHeight = scale(s.TitleHeight)
	s.DescriptionLineHeight = scale(s.DescriptionLineHeight)
	s.DescriptionGap = scale(s.DescriptionGap)
	s.PriceHeight = scale(s.PriceHeight)
	return s
}

func (s CardStyle) detailsHeight() int32 {
	return s.TitleHeight +
		2*s.DescriptionGap + int32(s.DescriptionLines)*s.DescriptionLineHeight +
		s.PriceHeight
}

// CardHeight is the outer height of a card including its vertical margins.
func (s CardStyle) CardHeight() int32 {
	inner := s.detailsHeight()
	if s.Direction == DirectionColumn {
		inner += s.ImageSize + s.ImageGap
	} else if s.ImageSize > inner {
		inner = s.ImageSize
	}
	return inner + 2*s.Padding + 2*s.MarginY
}
