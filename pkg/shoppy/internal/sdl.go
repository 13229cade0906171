package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitOptions is everything Init needs to bring up SDL.
type InitOptions struct {
	Title           string
	Width, Height   int32 // Window size in dev mode
	Dev             bool
	WindowOptions   WindowOptions
	FlipFaceButtons bool
	PowerButton     PowerButtonConfig // Zero DevicePath disables the watcher
}

var window *Window

// Init brings up SDL, the window, the input processor and the fonts of the
// current theme. On error the caller should still call SDLCleanup.
func Init(opts InitOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor(opts.FlipFaceButtons)

	w, err := initWindow(opts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes, window.ScaleFactor()); err != nil {
		return err
	}

	if !opts.Dev && opts.PowerButton.DevicePath != "" {
		watcher, err := StartPowerButtonWatcher(opts.PowerButton)
		if err != nil {
			GetInternalLogger().Warn("Power button unavailable", "device", opts.PowerButton.DevicePath, "error", err)
		} else {
			window.PowerButton = watcher
		}
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
