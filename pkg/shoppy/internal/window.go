package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// referenceHeight is the window height the layout constants are designed for.
const referenceHeight = 768

// Window wraps SDL window and renderer with additional state for the UI.
type Window struct {
	Window      *sdl.Window
	Renderer    *sdl.Renderer
	Title       string
	Background  *sdl.Texture
	PowerButton *PowerButtonWatcher

	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(opts InitOptions) (*Window, error) {
	width, height := opts.Width, opts.Height
	x, y := int32(0), int32(0)

	if opts.Dev {
		x, y = 50, 50
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.WindowOptions.Flags(opts.Dev))
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    opts.Title,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.PowerButton != nil {
		window.PowerButton.Stop()
	}

	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth is the logical width all layout is done in.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight is the logical height all layout is done in.
func (window *Window) GetHeight() int32 {
	return window.height
}

// ScaleFactor relates the window to the reference layout height.
func (window *Window) ScaleFactor() float32 {
	return float32(window.height) / referenceHeight
}

// Scale applies ScaleFactor to a reference pixel value.
func (window *Window) Scale(v int32) int32 {
	return int32(float32(v) * window.ScaleFactor())
}

// Clear fills the frame with the theme background.
func (window *Window) Clear() {
	c := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.width, H: window.height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
