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

// ProductListOptions configures the ProductList screen.
type ProductListOptions struct {
	Source ProductSource
	Images *ImageCache           // Shared texture cache, nil draws placeholders only
	Policy view.FetchErrorPolicy // What to show after the fetch fails
	Resume *view.ListResume      // Position to restore, nil for a fresh list
	Labels Labels
	Logger *slog.Logger
}

type productListState struct {
	ctx         context.Context
	painter     *painter
	options     ProductListOptions
	labels      Labels
	logger      *slog.Logger
	list        *view.ProductListState
	fetch       *view.Fetch[[]catalog.Product]
	header      view.Rect
	viewport    view.Rect
	footer      view.Rect
	toggleRect  view.Rect
	toggleIcons map[view.ViewMode]*sdl.Texture
	directional internal.DirectionalInput
	taps        internal.TapTracker
	result      *ProductListResult
	err         error
}

// ProductList shows the product collection, fetched once when the screen
// opens unless options.Resume already carries it. Until it arrives only a
// progress indicator is drawn. Y or a tap on the header toggle switches between list and grid;
// A or a tap on a card opens that product.
//
// Returns ErrCancelled when the window is closed.
func ProductList(ctx context.Context, options ProductListOptions) (*ProductListResult, error) {
	state := newProductListState(ctx, options)
	defer state.cleanup()

	if state.list.NeedsFetch() {
		state.start()
	} else {
		state.logger.Debug("Products restored", "count", len(state.list.Products()))
	}

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

func newProductListState(ctx context.Context, options ProductListOptions) *productListState {
	logger := options.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	s := &productListState{
		ctx:         ctx,
		painter:     newPainter(options.Images),
		options:     options,
		labels:      options.Labels.orDefault(),
		logger:      logger,
		fetch:       view.NewFetch[[]catalog.Product](),
		toggleIcons: make(map[view.ViewMode]*sdl.Texture),
		directional: internal.NewDirectionalInput(),
	}

	s.layout()
	s.list = view.NewProductListState(options.Policy, s.viewport, s.painter.window.ScaleFactor(), options.Resume)
	s.loadIcons()
	return s
}

func (s *productListState) layout() {
	window := s.painter.window
	width, height := window.GetWidth(), window.GetHeight()
	headerHeight := window.Scale(constants.HeaderHeight)
	footerHeight := window.Scale(44)
	margin := internal.Padding{Left: window.Scale(20), Right: window.Scale(30)}

	s.header = view.Rect{W: width, H: headerHeight}
	s.footer = view.Rect{Y: height - footerHeight, W: width, H: footerHeight}
	s.viewport = margin.Apply(view.Rect{Y: headerHeight, W: width, H: height - headerHeight - footerHeight})
}

func (s *productListState) loadIcons() {
	size := s.painter.window.Scale(32)
	icons := map[view.ViewMode]string{
		view.ViewModeList: constants.IconGridOn,
		view.ViewModeGrid: constants.IconViewList,
	}
	for mode, name := range icons {
		texture, err := internal.IconTexture(s.painter.renderer, name, size, s.painter.theme.HeaderTextColor)
		if err != nil {
			internal.GetInternalLogger().Warn("Failed to load icon", "icon", name, "error", err)
			continue
		}
		s.toggleIcons[mode] = texture
	}
}

func (s *productListState) start() {
	s.list.Begin()
	s.fetch.Start(s.ctx, s.options.Source.Products)
	s.logger.Debug("Fetching products", "mode", s.list.Mode().String())
}

func (s *productListState) handleEvents() {
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

func (s *productListState) handleInput(input *internal.Event) {
	if s.directional.SetHeld(input.Button, input.Pressed) {
		if input.Pressed {
			s.move(input.Button)
		}
		return
	}
	if !input.Pressed {
		return
	}

	switch input.Button {
	case constants.VirtualButtonA:
		s.open(s.list.Activate())
	case constants.VirtualButtonY:
		if s.list.CanToggle() {
			s.toggle()
		}
	case constants.VirtualButtonX:
		if s.list.CanRetry() {
			s.start()
		}
	case constants.VirtualButtonB:
		s.result = &ProductListResult{Action: ProductListActionBack}
	}
}

func (s *productListState) handlePointer(pointer *internal.PointerEvent) {
	if pointer.Kind == internal.PointerWheel {
		s.list.Grid().ScrollBy(-pointer.DY * s.painter.window.Scale(constants.ScrollStep))
		return
	}

	tap, scroll := s.taps.Handle(pointer)
	if scroll != 0 {
		s.list.Grid().ScrollBy(scroll)
		return
	}
	if tap == nil {
		return
	}

	switch {
	case s.list.CanToggle() && s.toggleRect.Contains(*tap):
		s.toggle()
	case s.list.CanRetry() && s.viewport.Contains(*tap):
		s.start()
	default:
		s.open(s.list.Press(*tap))
	}
}

func (s *productListState) move(button constants.VirtualButton) {
	if move, ok := internal.MoveFor(button); ok {
		s.list.Move(move)
	}
}

func (s *productListState) toggle() {
	mode := s.list.Toggle()
	s.logger.Debug("View mode toggled", "mode", mode.String())
}

func (s *productListState) open(press view.CardPress) {
	switch press.Kind {
	case view.PressNavigate:
		s.logger.Info("Product selected", "product_id", press.ProductID)
		s.result = &ProductListResult{
			Action:    ProductListActionSelected,
			ProductID: press.ProductID,
			Resume:    s.list.Resume(),
		}
	case view.PressInert:
		s.logger.Debug("Price pressed")
	}
}

func (s *productListState) update() {
	if button := s.directional.Update(); button != constants.VirtualButtonUnassigned {
		s.move(button)
	}

	result, ok := s.fetch.Poll()
	if !ok {
		return
	}
	if result.Err != nil {
		s.logger.Error("Failed to load products",
			"error", result.Err,
			"kind", catalog.KindName(result.Err),
			"request_id", catalog.RequestID(result.Err),
			"policy", s.list.Policy().String())
		s.list.Fail(result.Err)
		return
	}

	s.logger.Info("Products loaded", "count", len(result.Value))
	s.list.Succeed(result.Value)
}

func (s *productListState) render() {
	s.painter.window.Clear()

	if s.list.ShowsSpinner() {
		s.toggleRect = view.Rect{}
		window := s.painter.window
		s.painter.drawSpinner(view.Rect{W: window.GetWidth(), H: window.GetHeight()})
		window.Present()
		return
	}

	switch s.list.Phase() {
	case view.PhaseFailed:
		s.painter.drawMessage(s.viewport, s.labels.FetchError(s.list.Err()), s.painter.theme.ErrorColor, s.labels.Retry)
	default:
		s.renderCards()
	}

	s.renderHeader()
	s.painter.drawFooter(s.footer, s.footerHints())
	s.painter.window.Present()
}

func (s *productListState) renderCards() {
	if len(s.list.Products()) == 0 {
		if s.list.Err() == nil {
			s.painter.drawMessage(s.viewport, s.labels.Empty, s.painter.theme.HintColor, "")
		}
		return
	}

	restore := s.painter.clip(s.viewport)
	focused := s.list.Grid().Focused()
	products := s.list.Products()
	for _, card := range s.list.Cards() {
		s.painter.drawCard(card, products[focused].ID == card.ProductID)
	}
	restore()

	grid := s.list.Grid()
	window := s.painter.window
	track := view.Rect{
		X: s.viewport.X + s.viewport.W + window.Scale(10),
		Y: s.viewport.Y + window.Scale(5),
		W: window.Scale(8),
		H: s.viewport.H - window.Scale(10),
	}
	internal.DrawScrollbar(s.painter.renderer, track, grid.ContentHeight(), s.viewport.H, grid.ScrollY(), s.painter.theme.ScrollbarColor)
}

func (s *productListState) renderHeader() {
	window := s.painter.window
	theme := s.painter.theme
	internal.FillRect(s.painter.renderer, s.header, theme.HeaderColor)

	pad := window.Scale(20)
	font := internal.Fonts.LargeFont
	y := s.header.Y + (s.header.H-internal.LineHeight(font))/2
	s.painter.text.Draw(s.labels.Filter, font, theme.HeaderTextColor, s.header.X+pad, y, 0, constants.TextAlignLeft)

	label := s.labels.GridView
	if s.list.Mode() == view.ViewModeGrid {
		label = s.labels.ListView
	}

	small := internal.Fonts.SmallFont
	labelWidth := internal.TextWidth(small, label)
	iconSize := window.Scale(32)
	gap := window.Scale(8)

	right := s.header.X + s.header.W - pad
	labelX := right - labelWidth
	s.painter.text.Draw(label, small, theme.HeaderTextColor, labelX, s.header.Y+(s.header.H-internal.LineHeight(small))/2, 0, constants.TextAlignLeft)

	iconX := labelX - gap - iconSize
	iconRect := view.Rect{X: iconX, Y: s.header.Y + (s.header.H-iconSize)/2, W: iconSize, H: iconSize}
	if icon := s.toggleIcons[s.list.Mode()]; icon != nil {
		s.painter.renderer.Copy(icon, nil, internal.SDLRect(iconRect))
	}

	s.toggleRect = view.Rect{X: iconX - gap, Y: s.header.Y, W: right - iconX + 2*gap, H: s.header.H}
}

func (s *productListState) footerHints() []footerHint {
	hints := []footerHint{{button: "B", label: s.labels.Back}}
	switch {
	case s.list.CanRetry():
		hints = append(hints, footerHint{button: "X", label: s.labels.Retry})
	case s.list.Phase() == view.PhaseLoaded:
		hints = append(hints, footerHint{button: "Y", label: s.labels.Toggle})
		if len(s.list.Products()) > 0 {
			hints = append(hints, footerHint{button: "A", label: s.labels.Open})
		}
	}
	return hints
}

func (s *productListState) cleanup() {
	s.fetch.Cancel()
	for _, icon := range s.toggleIcons {
		icon.Destroy()
	}
	s.painter.destroy()
}
