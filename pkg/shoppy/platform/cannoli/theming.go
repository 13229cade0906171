// Package cannoli provides the storefront theme for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
)

// DefaultFontPath is where Cannoli ships its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return internal.Theme{
		AccentColor:     internal.HexToColor(0x008080),
		BackgroundColor: internal.HexToColor(0xF4F4F4),
		HeaderColor:     internal.HexToColor(constants.HeaderColor),
		HeaderTextColor: internal.HexToColor(0xFFFFFF),
		CardColor:       internal.HexToColor(0xFFFFFF),
		TextColor:       internal.HexToColor(0x1E1E1E),
		HintColor:       internal.HexToColor(0x6B6B6B),
		PriceColor:      internal.HexToColor(0x008080),
		ErrorColor:      internal.HexToColor(0xB3261E),
		ScrollbarColor:  internal.HexToColor(0x9E9E9E),
		FontPath:        fontPath,
	}
}

// InitDarkTheme is the palette used on other firmwares, which run dark system themes.
func InitDarkTheme(fontPath string) internal.Theme {
	theme := InitCannoliTheme(fontPath)
	theme.BackgroundColor = internal.HexToColor(0x121212)
	theme.CardColor = internal.HexToColor(0x242424)
	theme.TextColor = internal.HexToColor(0xF0F0F0)
	theme.HintColor = internal.HexToColor(0xA8A8A8)
	theme.PriceColor = internal.HexToColor(0x4DB6AC)
	return theme
}
