package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions are the SDL window flags. The zero value picks a sensible
// default for the mode the storefront runs in.
type WindowOptions struct {
	Borderless bool // No decorations, ignored in dev mode
	Resizable  bool
	Fullscreen bool // Desktop resolution fullscreen
	Hidden     bool
}

// resolve fills in defaults: a resizable window on the desktop and a
// borderless one on the device. Dev windows always keep their decorations.
func (wo WindowOptions) resolve(dev bool) WindowOptions {
	if wo == (WindowOptions{}) {
		if dev {
			wo.Resizable = true
		} else {
			wo.Borderless = true
		}
	}
	if dev {
		wo.Borderless = false
	}
	return wo
}

// Flags converts the resolved options to SDL_CreateWindow flags.
func (wo WindowOptions) Flags(dev bool) uint32 {
	wo = wo.resolve(dev)

	flags := uint32(sdl.WINDOW_SHOWN)
	if wo.Hidden {
		flags = sdl.WINDOW_HIDDEN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}
