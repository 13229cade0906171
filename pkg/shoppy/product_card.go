package shoppy

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// painter bundles what every screen needs to draw a frame.
type painter struct {
	window   *internal.Window
	renderer *sdl.Renderer
	text     *internal.TextRenderer
	images   *ImageCache
	theme    internal.Theme
}

func newPainter(images *ImageCache) *painter {
	window := internal.GetWindow()
	return &painter{
		window:   window,
		renderer: window.Renderer,
		text:     internal.NewTextRenderer(window.Renderer),
		images:   images,
		theme:    internal.GetTheme(),
	}
}

func (p *painter) destroy() {
	p.text.Destroy()
}

func (p *painter) clip(r view.Rect) func() {
	p.renderer.SetClipRect(internal.SDLRect(r))
	return func() { p.renderer.SetClipRect(nil) }
}

func (p *painter) imageTexture(url string) *sdl.Texture {
	if p.images == nil || url == "" {
		return nil
	}
	p.images.loader.Request(url)
	return p.images.loader.Texture(url)
}

func (p *painter) imageFailed(url string) bool {
	return p.images != nil && url != "" && p.images.loader.Failed(url)
}

// drawImage draws url fitted into box, or a placeholder while it loads.
// An image that could not be fetched or decoded gets an error tinted placeholder.
func (p *painter) drawImage(url string, box view.Rect, radius int32) {
	texture := p.imageTexture(url)
	if texture == nil {
		placeholder := p.theme.HintColor
		if p.imageFailed(url) {
			placeholder = p.theme.ErrorColor
		}
		placeholder.A = 40
		internal.FillRoundedRect(p.renderer, box, radius, placeholder)
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	p.renderer.Copy(texture, nil, internal.SDLRect(box.Fit(w, h)))
}

// drawCard renders one product card. The price is drawn like any other
// text; presses on it are filtered out by view.CardLayout.Press.
func (p *painter) drawCard(card view.CardLayout, focused bool) {
	radius := card.Style.CornerRadius

	if focused {
		ring := p.window.Scale(3)
		internal.FillRoundedRect(p.renderer, card.Card.Inset(-ring, -ring), radius+ring, p.theme.AccentColor)
	}
	internal.FillRoundedRect(p.renderer, card.Card, radius, p.theme.CardColor)

	p.drawImage(card.ImageURL, card.Image, radius)

	align := constants.TextAlignLeft
	if card.Centered {
		align = constants.TextAlignCenter
	}

	p.text.Draw(card.TitleText, internal.Fonts.MediumFont, p.theme.TextColor,
		card.Title.X, card.Title.Y, card.Title.W, align)

	lines := internal.WrapText(internal.Fonts.SmallFont, card.DescriptionText, card.Description.W, card.Style.DescriptionLines)
	p.text.DrawLines(lines, internal.Fonts.SmallFont, p.theme.HintColor,
		card.Description.X, card.Description.Y, card.Description.W, align)

	p.text.Draw(card.PriceText, internal.Fonts.MediumFont, p.theme.PriceColor,
		card.Price.X, card.Price.Y, card.Price.W, align)
}

// drawSpinner draws the progress indicator centered in area.
func (p *painter) drawSpinner(area view.Rect) {
	radius := p.window.Scale(28)
	internal.DrawSpinner(p.renderer, area.X+area.W/2, area.Y+area.H/2, radius, p.theme.AccentColor, sdl.GetTicks64())
}

// drawMessage draws one or two centered lines in area.
func (p *painter) drawMessage(area view.Rect, message string, color sdl.Color, hint string) {
	font := internal.Fonts.MediumFont
	lines := internal.WrapText(font, message, area.W-p.window.Scale(80), 3)
	height := int32(len(lines)) * internal.LineHeight(font)
	if hint != "" {
		height += internal.LineHeight(internal.Fonts.SmallFont) + p.window.Scale(12)
	}

	y := area.Y + (area.H-height)/2
	y = p.text.DrawLines(lines, font, color, area.X, y, area.W, constants.TextAlignCenter)
	if hint != "" {
		p.text.Draw(hint, internal.Fonts.SmallFont, p.theme.HintColor,
			area.X, y+p.window.Scale(12), area.W, constants.TextAlignCenter)
	}
}

type footerHint struct {
	button string
	label  string
}

// drawFooter draws button hints along the bottom edge, right aligned.
func (p *painter) drawFooter(area view.Rect, hints []footerHint) {
	internal.FillRect(p.renderer, area, p.theme.HeaderColor)

	font := internal.Fonts.SmallFont
	pad := p.window.Scale(16)
	x := area.X + area.W - pad
	y := area.Y + (area.H-internal.LineHeight(font))/2

	for i := len(hints) - 1; i >= 0; i-- {
		x = p.drawHint(font, hints[i], x, y) - pad
	}
}

func (p *painter) drawHint(font *ttf.Font, hint footerHint, right, y int32) int32 {
	gap := p.window.Scale(6)
	labelWidth := internal.TextWidth(font, hint.label)
	buttonWidth := internal.TextWidth(font, hint.button)
	pill := p.window.Scale(10)

	labelX := right - labelWidth
	p.text.Draw(hint.label, font, p.theme.HeaderTextColor, labelX, y, 0, constants.TextAlignLeft)

	pillRect := view.Rect{
		X: labelX - gap - buttonWidth - pill,
		Y: y,
		W: buttonWidth + pill,
		H: internal.LineHeight(font),
	}
	internal.FillRoundedRect(p.renderer, pillRect, pillRect.H/2, p.theme.AccentColor)
	p.text.Draw(hint.button, font, p.theme.HeaderTextColor, pillRect.X, y, pillRect.W, constants.TextAlignCenter)

	return pillRect.X
}
