package internal

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
)

const ellipsis = "…"

// RenderText renders one line of text to a new texture owned by the caller.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// TextWidth measures text, returning 0 when it cannot be measured.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// LineHeight is the font's recommended line height.
func LineHeight(font *ttf.Font) int32 {
	if font == nil {
		return 0
	}
	return int32(font.Height())
}

// Ellipsize shortens text with a trailing ellipsis until it fits maxWidth.
func Ellipsize(font *ttf.Font, text string, maxWidth int32) string {
	if TextWidth(font, text) <= maxWidth {
		return text
	}
	return ellipsizeRunes(font, text, maxWidth)
}

func ellipsizeRunes(font *ttf.Font, text string, maxWidth int32) string {
	runes := []rune(strings.TrimRight(text, " "))
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if TextWidth(font, string(runes[:mid])+ellipsis) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimRight(string(runes[:lo]), " ") + ellipsis
}

// WrapText breaks text into lines no wider than maxWidth. When maxLines is
// positive the output is cut to that many lines and the last one ends with
// an ellipsis.
func WrapText(font *ttf.Font, text string, maxWidth int32, maxLines int) []string {
	var lines []string

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	for _, paragraph := range strings.Split(normalized, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if TextWidth(font, candidate) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			current = Ellipsize(font, word, maxWidth)
		}
		lines = append(lines, current)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if TextWidth(font, last+ellipsis) <= maxWidth {
			lines[maxLines-1] = last + ellipsis
		} else {
			lines[maxLines-1] = ellipsizeRunes(font, last, maxWidth)
		}
	}

	return lines
}

// TextRenderer draws text through a cache of line textures.
type TextRenderer struct {
	renderer *sdl.Renderer
	cache    *TextureCache
}

func NewTextRenderer(renderer *sdl.Renderer) *TextRenderer {
	return &TextRenderer{renderer: renderer, cache: NewTextureCache(256)}
}

func (t *TextRenderer) texture(text string, font *ttf.Font, color sdl.Color) (*sdl.Texture, int32, int32) {
	if text == "" || font == nil {
		return nil, 0, 0
	}

	key := fmt.Sprintf("%p|%d.%d.%d.%d|%s", font, color.R, color.G, color.B, color.A, text)
	texture := t.cache.Get(key)
	if texture == nil {
		texture = RenderText(t.renderer, text, font, color)
		if texture == nil {
			return nil, 0, 0
		}
		t.cache.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return nil, 0, 0
	}
	return texture, w, h
}

// Draw renders one line at (x, y), ellipsized to maxWidth and aligned within it.
// It returns the rectangle actually drawn.
func (t *TextRenderer) Draw(text string, font *ttf.Font, color sdl.Color, x, y, maxWidth int32, align constants.TextAlign) sdl.Rect {
	if maxWidth > 0 {
		text = Ellipsize(font, text, maxWidth)
	}

	texture, w, h := t.texture(text, font, color)
	if texture == nil {
		return sdl.Rect{X: x, Y: y}
	}

	switch align {
	case constants.TextAlignCenter:
		x += (maxWidth - w) / 2
	case constants.TextAlignRight:
		x += maxWidth - w
	}

	dst := sdl.Rect{X: x, Y: y, W: w, H: h}
	t.renderer.Copy(texture, nil, &dst)
	return dst
}

// DrawLines renders lines top to bottom and returns the y below the last one.
func (t *TextRenderer) DrawLines(lines []string, font *ttf.Font, color sdl.Color, x, y, maxWidth int32, align constants.TextAlign) int32 {
	lineHeight := LineHeight(font)
	for _, line := range lines {
		if line != "" {
			t.Draw(line, font, color, x, y, maxWidth, align)
		}
		y += lineHeight
	}
	return y
}

func (t *TextRenderer) Destroy() {
	t.cache.Destroy()
}
