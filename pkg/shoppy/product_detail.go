package shoppy

import (
	"context"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// ProductDetailOptions configures the ProductDetail screen.
type ProductDetailOptions struct {
	ProductID int
	Source    ProductSource
	Images    *ImageCache
	Policy    view.FetchErrorPolicy
	Labels    Labels
	Logger    *slog.Logger
}

type productDetailState struct {
	ctx                  context.Context
	painter              *painter
	options              ProductDetailOptions
	labels               Labels
	logger               *slog.Logger
	detail               *view.ProductDetailState
	fetch                *view.Fetch[catalog.Product]
	header               view.Rect
	content              view.Rect
	footer               view.Rect
	margins              internal.Padding
	scrollY              int32
	targetScrollY        int32
	maxScrollY           int32
	scrollSpeed          int32
	scrollAnimationSpeed float32
	titleLines           []string
	descriptionLines     []string
	directional          internal.DirectionalInput
	taps                 internal.TapTracker
	result               *ProductDetailResult
	err                  error
}

// ProductDetail shows one product, fetched when the screen opens.
// The content scrolls with the d-pad, the mouse wheel or a drag.
// B returns to the caller.
//
// Returns ErrCancelled when the window is closed.
func ProductDetail(ctx context.Context, options ProductDetailOptions) (*ProductDetailResult, error) {
	state := newProductDetailState(ctx, options)
	defer state.cleanup()

	state.start()

	for state.result == nil && state.err == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		state.handleEvents()
		state.update()
		state.render()
	}

	if state.err != nil {
		return nil, state.err
	}
	return state.result, nil
}

func newProductDetailState(ctx context.Context, options ProductDetailOptions) *productDetailState {
	logger := options.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	s := &productDetailState{
		ctx:                  ctx,
		painter:              newPainter(options.Images),
		options:              options,
		labels:               options.Labels.orDefault(),
		logger:               logger.With("product_id", options.ProductID),
		detail:               view.NewProductDetailState(options.ProductID, options.Policy),
		fetch:                view.NewFetch[catalog.Product](),
		scrollAnimationSpeed: 0.15,
		directional:          internal.NewDirectionalInput(),
	}

	window := s.painter.window
	headerHeight := window.Scale(constants.HeaderHeight)
	footerHeight := window.Scale(44)
	s.scrollSpeed = window.Scale(constants.ScrollStep)
	s.margins = internal.Padding{
		Top:    window.Scale(20),
		Right:  window.Scale(45),
		Bottom: window.Scale(20),
		Left:   window.Scale(20),
	}
	s.header = view.Rect{W: window.GetWidth(), H: headerHeight}
	s.footer = view.Rect{Y: window.GetHeight() - footerHeight, W: window.GetWidth(), H: footerHeight}
	s.content = view.Rect{Y: headerHeight, W: window.GetWidth(), H: window.GetHeight() - headerHeight - footerHeight}
	return s
}

func (s *productDetailState) start() {
	s.detail.Begin()
	id := s.options.ProductID
	s.fetch.Start(s.ctx, func(ctx context.Context) (catalog.Product, error) {
		return s.options.Source.Product(ctx, id)
	})
	s.logger.Debug("Fetching product")
}

func (s *productDetailState) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(constants.DefaultFrameTimeout); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			s.err = ErrCancelled
			return
		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
			if input := processor.ProcessSDLEvent(event); input != nil {
				s.handleInput(input)
			}
		case *sdl.MouseButtonEvent, *sdl.MouseMotionEvent, *sdl.MouseWheelEvent:
			if pointer := processor.ProcessPointerEvent(event); pointer != nil {
				s.handlePointer(pointer)
			}
		case *sdl.ControllerDeviceEvent:
			processor.ProcessSDLEvent(event)
		}

		if s.result != nil {
			return
		}
	}
}

func (s *productDetailState) handleInput(input *internal.Event) {
	if s.directional.SetHeld(input.Button, input.Pressed) {
		if input.Pressed {
			s.scroll(input.Button)
		}
		return
	}
	if !input.Pressed {
		return
	}

	switch input.Button {
	case constants.VirtualButtonB:
		s.result = &ProductDetailResult{ProductID: s.options.ProductID}
	case constants.VirtualButtonX:
		if s.detail.CanRetry() {
			s.start()
		}
	}
}

func (s *productDetailState) handlePointer(pointer *internal.PointerEvent) {
	if pointer.Kind == internal.PointerWheel {
		s.scrollBy(-pointer.DY * s.scrollSpeed)
		return
	}

	tap, scroll := s.taps.Handle(pointer)
	switch {
	case scroll != 0:
		s.scrollBy(scroll)
		s.scrollY = s.targetScrollY
	case tap != nil && s.detail.CanRetry() && s.content.Contains(*tap):
		s.start()
	}
}

func (s *productDetailState) scroll(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		s.scrollBy(-s.scrollSpeed)
	case constants.VirtualButtonDown:
		s.scrollBy(s.scrollSpeed)
	}
}

func (s *productDetailState) scrollBy(dy int32) {
	s.targetScrollY = min(max(s.targetScrollY+dy, 0), s.maxScrollY)
}

func (s *productDetailState) update() {
	if button := s.directional.Update(); button != constants.VirtualButtonUnassigned {
		s.scroll(button)
	}

	step := int32(float32(s.targetScrollY-s.scrollY) * s.scrollAnimationSpeed)
	if step == 0 {
		s.scrollY = s.targetScrollY
	} else {
		s.scrollY += step
	}

	result, ok := s.fetch.Poll()
	if !ok {
		return
	}
	if result.Err != nil {
		s.logger.Error("Failed to load product",
			"error", result.Err,
			"kind", catalog.KindName(result.Err),
			"request_id", catalog.RequestID(result.Err),
			"policy", s.detail.Policy().String())
		s.detail.Fail(result.Err)
		return
	}

	s.logger.Info("Product loaded", "title", result.Value.Title)
	s.detail.Succeed(result.Value)
	s.wrapText(result.Value)
}

func (s *productDetailState) contentWidth() int32 {
	return s.content.W - s.margins.Horizontal()
}

func (s *productDetailState) wrapText(product catalog.Product) {
	width := s.contentWidth()
	s.titleLines = internal.WrapText(internal.Fonts.LargeFont, product.Title, width, 3)
	s.descriptionLines = internal.WrapText(internal.Fonts.SmallFont, product.Description, width, 0)
}

func (s *productDetailState) render() {
	s.painter.window.Clear()

	switch s.detail.Phase() {
	case view.PhaseLoading:
		s.painter.drawSpinner(s.content)
	case view.PhaseFailed:
		s.painter.drawMessage(s.content, s.labels.FetchError(s.detail.Err()), s.painter.theme.ErrorColor, s.labels.Retry)
	default:
		s.renderProduct()
	}

	s.renderHeader()
	s.painter.drawFooter(s.footer, s.footerHints())
	s.painter.window.Present()
}

func (s *productDetailState) renderHeader() {
	theme := s.painter.theme
	internal.FillRect(s.painter.renderer, s.header, theme.HeaderColor)

	font := internal.Fonts.LargeFont
	pad := s.painter.window.Scale(20)
	y := s.header.Y + (s.header.H-internal.LineHeight(font))/2
	s.painter.text.Draw(s.detail.Title(s.labels.Product), font, theme.HeaderTextColor,
		s.header.X+pad, y, s.header.W-2*pad, constants.TextAlignCenter)
}

func (s *productDetailState) renderProduct() {
	product, ok := s.detail.Product()
	if !ok {
		return
	}

	window := s.painter.window
	theme := s.painter.theme
	x := s.content.X + s.margins.Left
	width := s.contentWidth()
	top := s.content.Y + s.margins.Top - s.scrollY

	restore := s.painter.clip(s.content)

	imageBox := view.Rect{X: x, Y: top, W: width, H: window.Scale(constants.DetailImageMaxHeight)}
	if imageBox.Intersects(s.content) {
		s.painter.drawImage(product.Image, imageBox, 0)
	}
	y := imageBox.Bottom() + window.Scale(20)

	y = s.painter.text.DrawLines(s.titleLines, internal.Fonts.LargeFont, theme.TextColor, x, y, width, constants.TextAlignLeft)
	y += constants.DefaultTitleSpacing

	price := s.painter.text.Draw(s.detail.PriceText(), internal.Fonts.MediumFont, theme.PriceColor, x, y, width, constants.TextAlignLeft)
	y = price.Y + max(price.H, internal.LineHeight(internal.Fonts.MediumFont)) + window.Scale(15)

	y = s.painter.text.DrawLines(s.descriptionLines, internal.Fonts.SmallFont, theme.TextColor, x, y, width, constants.TextAlignLeft)

	restore()

	contentHeight := y + s.scrollY + s.margins.Bottom - s.content.Y
	s.updateScrollLimits(contentHeight)
	s.renderScrollbar(contentHeight)
}

func (s *productDetailState) updateScrollLimits(contentHeight int32) {
	s.maxScrollY = max(contentHeight-s.content.H, 0)
	s.targetScrollY = min(s.targetScrollY, s.maxScrollY)
	s.scrollY = min(s.scrollY, s.maxScrollY)
}

func (s *productDetailState) renderScrollbar(contentHeight int32) {
	window := s.painter.window
	track := view.Rect{
		X: s.content.X + s.content.W - window.Scale(20),
		Y: s.content.Y + window.Scale(5),
		W: window.Scale(8),
		H: s.content.H - window.Scale(10),
	}
	internal.DrawScrollbar(s.painter.renderer, track, contentHeight, s.content.H, s.scrollY, s.painter.theme.ScrollbarColor)
}

func (s *productDetailState) footerHints() []footerHint {
	hints := []footerHint{{button: "B", label: s.labels.Back}}
	if s.detail.CanRetry() {
		hints = append(hints, footerHint{button: "X", label: s.labels.Retry})
	}
	return hints
}

func (s *productDetailState) cleanup() {
	s.fetch.Cancel()
	s.painter.destroy()
}
