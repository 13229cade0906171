package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the storefront.
type Theme struct {
	AccentColor         sdl.Color // Focus ring, spinner, toggle icon
	BackgroundColor     sdl.Color // Screen background
	HeaderColor         sdl.Color // List header bar
	HeaderTextColor     sdl.Color // Text and icons on the header bar
	CardColor           sdl.Color // Card background
	TextColor           sdl.Color // Titles
	HintColor           sdl.Color // Descriptions, footer hints
	PriceColor          sdl.Color // Prices
	ErrorColor          sdl.Color // Error panel text
	ScrollbarColor      sdl.Color // Scrollbar handle
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Optional full screen background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
