package view

import "github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"

// PressKind is the outcome of pressing a point on a card.
type PressKind int

const (
	PressNone     PressKind = iota // Outside the card
	PressNavigate                  // Primary area, open the product
	PressInert                     // The price element, which has no handler
)

// CardPress is the result of hit testing a card.
type CardPress struct {
	Kind      PressKind
	ProductID int
}

// CardLayout is the rendered geometry of one product card.
// It is a pure function of the product, the view mode and the cell it occupies.
type CardLayout struct {
	ProductID   int
	Mode        ViewMode
	Style       CardStyle
	Card        Rect
	Image       Rect
	Title       Rect
	Description Rect
	Price       Rect
	Centered    bool

	TitleText       string
	DescriptionText string
	PriceText       string
	ImageURL        string
}

// LayoutCard places a product inside cell using the style of mode scaled by factor.
func LayoutCard(product catalog.Product, mode ViewMode, cell Rect, factor float32) CardLayout {
	style := mode.Style().Scaled(factor)
	card := cell.Inset(style.MarginX, style.MarginY)
	content := card.Inset(style.Padding, style.Padding)

	l := CardLayout{
		ProductID:       product.ID,
		Mode:            mode,
		Style:           style,
		Card:            card,
		Centered:        style.Centered,
		TitleText:       product.Title,
		DescriptionText: product.Description,
		PriceText:       FormatPrice(product.Price),
		ImageURL:        product.Image,
	}

	var details Rect
	if style.Direction == DirectionRow {
		l.Image = Rect{X: content.X, Y: content.Y, W: style.ImageSize, H: style.ImageSize}
		offset := style.ImageSize + style.ImageGap
		details = Rect{X: content.X + offset, Y: content.Y, W: max(content.W-offset, 0), H: content.H}
	} else {
		l.Image = Rect{X: content.X + (content.W-style.ImageSize)/2, Y: content.Y, W: style.ImageSize, H: style.ImageSize}
		offset := style.ImageSize + style.ImageGap
		details = Rect{X: content.X, Y: content.Y + offset, W: content.W, H: max(content.H-offset, 0)}
	}

	y := details.Y
	l.Title = Rect{X: details.X, Y: y, W: details.W, H: style.TitleHeight}
	y += style.TitleHeight + style.DescriptionGap
	l.Description = Rect{X: details.X, Y: y, W: details.W, H: int32(style.DescriptionLines) * style.DescriptionLineHeight}
	y = l.Description.Bottom() + style.DescriptionGap
	l.Price = Rect{X: details.X, Y: y, W: details.W, H: style.PriceHeight}

	return l
}

// Press hit tests p against the card. The price element swallows presses
// without navigating, matching the storefront's historical behavior.
func (l CardLayout) Press(p Point) CardPress {
	switch {
	case !l.Card.Contains(p):
		return CardPress{Kind: PressNone}
	case l.Price.Contains(p):
		return CardPress{Kind: PressInert}
	default:
		return CardPress{Kind: PressNavigate, ProductID: l.ProductID}
	}
}

// Activate is the gamepad equivalent of pressing the primary area.
func (l CardLayout) Activate() CardPress {
	return CardPress{Kind: PressNavigate, ProductID: l.ProductID}
}
