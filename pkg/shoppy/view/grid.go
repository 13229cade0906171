package view

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"

// Move is a focus movement requested by a directional button.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Grid arranges product cards in rows of mode.Columns() cells inside a
// scrollable viewport and tracks the focused card.
type Grid struct {
	viewport Rect
	factor   float32
	mode     ViewMode
	count    int
	focused  int
	scrollY  int32
}

// NewGrid creates a grid in list mode covering viewport.
func NewGrid(viewport Rect, factor float32) *Grid {
	if factor <= 0 {
		factor = 1
	}
	return &Grid{viewport: viewport, factor: factor, mode: ViewModeList}
}

func (g *Grid) Mode() ViewMode   { return g.mode }
func (g *Grid) Columns() int     { return g.mode.Columns() }
func (g *Grid) Focused() int     { return g.focused }
func (g *Grid) ScrollY() int32   { return g.scrollY }
func (g *Grid) Viewport() Rect   { return g.viewport }
func (g *Grid) Count() int       { return g.count }
func (g *Grid) rowHeight() int32 { return g.mode.Style().Scaled(g.factor).CardHeight() }

// SetCount updates the number of cards, clamping focus and scroll.
func (g *Grid) SetCount(n int) {
	g.count = max(n, 0)
	g.focused = min(g.focused, max(g.count-1, 0))
	g.clampScroll()
	g.ensureVisible()
}

// SetMode switches the layout. The focused card stays focused and visible.
func (g *Grid) SetMode(mode ViewMode) {
	g.mode = mode
	g.clampScroll()
	g.ensureVisible()
}

// Rows returns the number of rows needed for all cards.
func (g *Grid) Rows() int {
	cols := g.Columns()
	return (g.count + cols - 1) / cols
}

// ContentHeight is the total height of all rows.
func (g *Grid) ContentHeight() int32 {
	return int32(g.Rows()) * g.rowHeight()
}

// Cell returns the on-screen rectangle of card i for the current scroll position.
func (g *Grid) Cell(i int) Rect {
	cols := g.Columns()
	row, col := i/cols, i%cols
	w := g.viewport.W / int32(cols)
	h := g.rowHeight()
	return Rect{
		X: g.viewport.X + int32(col)*w,
		Y: g.viewport.Y + int32(row)*h - g.scrollY,
		W: w,
		H: h,
	}
}

// Layout returns the card layouts of every card intersecting the viewport.
func (g *Grid) Layout(products []catalog.Product) []CardLayout {
	cards := make([]CardLayout, 0, 8)
	for i := 0; i < len(products) && i < g.count; i++ {
		cell := g.Cell(i)
		if !cell.Intersects(g.viewport) {
			continue
		}
		cards = append(cards, LayoutCard(products[i], g.mode, cell, g.factor))
	}
	return cards
}

// Press hit tests p against the visible cards.
func (g *Grid) Press(p Point, products []catalog.Product) CardPress {
	if !g.viewport.Contains(p) {
		return CardPress{Kind: PressNone}
	}
	for _, card := range g.Layout(products) {
		if res := card.Press(p); res.Kind != PressNone {
			if res.Kind == PressNavigate {
				g.focusProduct(products, card.ProductID)
			}
			return res
		}
	}
	return CardPress{Kind: PressNone}
}

func (g *Grid) focusProduct(products []catalog.Product, id int) {
	for i := range products {
		if products[i].ID == id {
			g.focused = i
			return
		}
	}
}

// Focus sets the focused card and scrolls it into view.
func (g *Grid) Focus(i int) {
	if g.count == 0 {
		g.focused = 0
		return
	}
	g.focused = min(max(i, 0), g.count-1)
	g.ensureVisible()
}

// Move shifts focus by one cell horizontally or one row vertically.
// It returns false when the focus did not change.
func (g *Grid) Move(m Move) bool {
	if g.count == 0 {
		return false
	}

	cols := g.Columns()
	next := g.focused

	switch m {
	case MoveUp:
		if g.focused-cols >= 0 {
			next = g.focused - cols
		}
	case MoveDown:
		if g.focused+cols < g.count {
			next = g.focused + cols
		} else if (g.count-1)/cols > g.focused/cols {
			next = g.count - 1
		}
	case MoveLeft:
		if g.focused%cols != 0 {
			next = g.focused - 1
		}
	case MoveRight:
		if g.focused%cols != cols-1 && g.focused+1 < g.count {
			next = g.focused + 1
		}
	}

	if next == g.focused {
		return false
	}
	g.focused = next
	g.ensureVisible()
	return true
}

// ScrollBy scrolls the content by dy pixels within bounds.
func (g *Grid) ScrollBy(dy int32) {
	g.scrollY += dy
	g.clampScroll()
}

// ScrollTo restores an absolute scroll offset within bounds.
func (g *Grid) ScrollTo(y int32) {
	g.scrollY = y
	g.clampScroll()
}

func (g *Grid) maxScroll() int32 {
	return max(g.ContentHeight()-g.viewport.H, 0)
}

func (g *Grid) clampScroll() {
	g.scrollY = min(max(g.scrollY, 0), g.maxScroll())
}

func (g *Grid) ensureVisible() {
	if g.count == 0 {
		g.scrollY = 0
		return
	}
	h := g.rowHeight()
	top := int32(g.focused/g.Columns()) * h
	bottom := top + h

	if top < g.scrollY {
		g.scrollY = top
	} else if bottom > g.scrollY+g.viewport.H {
		g.scrollY = bottom - g.viewport.H
	}
	g.clampScroll()
}
