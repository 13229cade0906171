package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes at a 768 pixel tall window. They are scaled to
// the actual window height.
type FontSizes struct {
	Splash int
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Splash: 96,
	Large:  34,
	Medium: 26,
	Small:  20,
}

type fontsHolder struct {
	SplashFont *ttf.Font // Italic, splash title only
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

var Fonts fontsHolder

func initFonts(path string, sizes FontSizes, scale float32) error {
	open := func(size int) (*ttf.Font, error) {
		scaled := max(int(float32(size)*scale), 8)
		font, err := ttf.OpenFont(path, scaled)
		if err != nil {
			return nil, fmt.Errorf("open font %s at %dpt: %w", path, scaled, err)
		}
		return font, nil
	}

	var err error
	if Fonts.SplashFont, err = open(sizes.Splash); err != nil {
		return err
	}
	Fonts.SplashFont.SetStyle(ttf.STYLE_ITALIC | ttf.STYLE_BOLD)

	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	Fonts.LargeFont.SetStyle(ttf.STYLE_BOLD)

	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SplashFont, Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = fontsHolder{}
}
